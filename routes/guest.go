package routes

import (
	"github.com/gin-gonic/gin"

	cartControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/cart"
	wishlistControllers "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/controllers/wishlist"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/middleware"
)

// SetupGuestRoutes registers all “/guest/*” endpoints. Guests carry their own
// short-lived JWT issued by POST /auth/guest; their shopping state lives in
// the local snapshot store.
func SetupGuestRoutes(r *gin.RouterGroup, deps Deps) {
	guestGroup := r.Group("/guest")
	guestGroup.Use(middleware.ValidateToken, middleware.RequireRole("guest"))
	{
		// ──────────────── Shopping Cart ────────────────
		cartGroup := guestGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetGuestCart(deps.Sessions))
			cartGroup.POST("", cartControllers.AddGuestCartItem(deps.DB, deps.Sessions))
			cartGroup.PUT("", cartControllers.SetGuestCartQuantity(deps.Sessions))
			cartGroup.DELETE("/:product_id", cartControllers.DeleteGuestCartItem(deps.Sessions))
			cartGroup.DELETE("", cartControllers.ClearGuestCart(deps.Sessions))
			cartGroup.POST("/toggle", cartControllers.ToggleGuestCart(deps.Sessions))
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := guestGroup.Group("/wishlist")
		{
			wishlistGroup.GET("", wishlistControllers.GetGuestWishlist(deps.Sessions))
			wishlistGroup.POST("", wishlistControllers.AddGuestWishlistEntry(deps.DB, deps.Sessions))
			wishlistGroup.DELETE("/:product_id", wishlistControllers.RemoveGuestWishlistEntry(deps.Sessions))
			wishlistGroup.DELETE("", wishlistControllers.ClearGuestWishlist(deps.Sessions))
		}
	}
}
