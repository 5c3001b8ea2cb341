package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/cart"
	couponControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/coupon"
	productControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/product"
	userControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/user"
	wishlistControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/wishlist"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/middleware"
)

// SetupUserRoutes registers all “/user/*” endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.RouterGroup, deps Deps) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("", userControllers.GetUser(deps.DB))
		userGroup.PUT("", userControllers.UpdateUser(deps.DB))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(deps.Sessions))
			cartGroup.POST("", cartControllers.AddUserCartItem(deps.DB, deps.Sessions))
			cartGroup.PUT("", cartControllers.SetUserCartQuantity(deps.Sessions))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteUserCartItem(deps.Sessions))
			cartGroup.DELETE("", cartControllers.ClearUserCart(deps.Sessions))
			cartGroup.POST("/toggle", cartControllers.ToggleUserCart(deps.Sessions))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetUserWishlist(deps.Sessions))
			wishlistGroup.POST("", wishlistControllers.AddUserWishlistEntry(deps.DB, deps.Sessions))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveUserWishlistEntry(deps.Sessions))
			wishlistGroup.DELETE("", wishlistControllers.ClearUserWishlist(deps.Sessions))
		}

		// ──────────────── Coupons ────────────────
		userGroup.GET("/coupons/:code", couponControllers.ValidateCoupon(deps.DB))
	}

	// ──────────────── Public catalog ────────────────
	r.GET("/products", productControllers.GetProducts(deps.DB))
	r.GET("/products/:id", productControllers.GetProductByID(deps.DB))
	r.GET("/categories", productControllers.GetAllCategoriesWithProducts(deps.DB))
	r.GET("/categories/:id", productControllers.GetCategoryByID(deps.DB))
}
