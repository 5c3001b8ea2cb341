package cartControllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

// Guest carts live in the local snapshot store until login merges them into
// the account. Routes are the same shapes as the user cart, under /guest.

func guestSessions(m *state.Manager) sessionFunc {
	return func(c *gin.Context, owner string) *state.Session {
		return m.Guest(c.Request.Context(), owner)
	}
}

// GET /api/v1/guest/cart
func GetGuestCart(sessions *state.Manager) gin.HandlerFunc {
	return getCart(guestSessions(sessions))
}

// POST /api/v1/guest/cart
func AddGuestCartItem(db *gorm.DB, sessions *state.Manager) gin.HandlerFunc {
	return addCartItem(db, guestSessions(sessions))
}

// PUT /api/v1/guest/cart
func SetGuestCartQuantity(sessions *state.Manager) gin.HandlerFunc {
	return setCartQuantity(guestSessions(sessions))
}

// DELETE /api/v1/guest/cart/:product_id
func DeleteGuestCartItem(sessions *state.Manager) gin.HandlerFunc {
	return deleteCartItem(guestSessions(sessions))
}

// DELETE /api/v1/guest/cart
func ClearGuestCart(sessions *state.Manager) gin.HandlerFunc {
	return clearCart(guestSessions(sessions))
}

// POST /api/v1/guest/cart/toggle
func ToggleGuestCart(sessions *state.Manager) gin.HandlerFunc {
	return toggleCart(guestSessions(sessions))
}
