package routes

import (
	"github.com/gin-gonic/gin"

	adminController "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/admin"
	cartControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/cart"
	couponControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/coupon"
	productcontroller "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/product"
	userControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/user"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. Requires API‐Key middleware.
func SetupAdminRoutes(r *gin.RouterGroup, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", adminController.GetAllAdmins(deps.DB))
		adminGroup.GET("/users", userControllers.GetAllUsers(deps.DB))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(deps.DB))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(deps.DB))
			productAdmin.GET("", productcontroller.GetProducts(deps.DB))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(deps.DB))
			productAdmin.POST("/import-excel", productcontroller.ImportProductsFromExcel(deps.DB))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(deps.DB))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(deps.DB))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(deps.DB))
			categoryAdmin.GET("", productcontroller.GetAllCategories(deps.DB))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(deps.DB))
		}

		// ─────────── Coupon Management ───────────
		couponAdmin := adminGroup.Group("/coupons")
		{
			couponAdmin.POST("", couponControllers.CreateCoupon(deps.DB))
			couponAdmin.GET("", couponControllers.GetAllCoupons(deps.DB))
			couponAdmin.PUT("/:code", couponControllers.UpdateCoupon(deps.DB))
			couponAdmin.DELETE("/:code", couponControllers.DeleteCoupon(deps.DB))
		}

		// ─────────── Admin Approval Workflow ───────────
		adminMgmt := adminGroup.Group("/admin-management")
		{
			adminMgmt.GET("/pending", adminController.ListPendingAdmins(deps.DB))
			adminMgmt.POST("/approve", adminController.ApproveAdmin(deps.DB))
			adminMgmt.POST("/reject", adminController.RejectAdmin(deps.DB))
		}

		bannerMgmt := adminGroup.Group("/banner")
		{
			bannerMgmt.POST("/upload", adminController.UploadBanner(deps.DB))
			bannerMgmt.GET("", adminController.GetBanners(deps.DB))
			bannerMgmt.DELETE("/:id", adminController.DeleteBanner(deps.DB))
		}

		cartMgmt := adminGroup.Group("/user-cart")
		{
			cartMgmt.GET("/:user_id", cartControllers.GetAdminUserCart(deps.Remote))
		}
	}
}
