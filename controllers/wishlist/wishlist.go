package wishlistControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

type WishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

type sessionFunc func(c *gin.Context, owner string) *state.Session

func getWishlist(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, sessions(c, owner).WishlistView())
	}
}

func addWishlistEntry(db *gorm.DB, sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input WishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.AddWishlistEntry(models.WishlistEntry{
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.SalePrice,
			Image:     product.Image,
			OnSale:    product.OnSale(),
		}))
		c.JSON(http.StatusOK, session.WishlistView())
	}
}

func removeWishlistEntry(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id"})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.RemoveWishlistEntry(uint(productID)))
		c.JSON(http.StatusOK, session.WishlistView())
	}
}

func clearWishlist(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.ClearWishlist())
		c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared"})
	}
}

// -------- User wishlist --------

func userSessions(m *state.Manager) sessionFunc {
	return func(c *gin.Context, owner string) *state.Session {
		return m.User(c.Request.Context(), owner)
	}
}

// GET /api/v1/user/wishlist
func GetUserWishlist(sessions *state.Manager) gin.HandlerFunc {
	return getWishlist(userSessions(sessions))
}

// POST /api/v1/user/wishlist
func AddUserWishlistEntry(db *gorm.DB, sessions *state.Manager) gin.HandlerFunc {
	return addWishlistEntry(db, userSessions(sessions))
}

// DELETE /api/v1/user/wishlist/:product_id
func RemoveUserWishlistEntry(sessions *state.Manager) gin.HandlerFunc {
	return removeWishlistEntry(userSessions(sessions))
}

// DELETE /api/v1/user/wishlist
func ClearUserWishlist(sessions *state.Manager) gin.HandlerFunc {
	return clearWishlist(userSessions(sessions))
}

// -------- Guest wishlist --------

func guestSessions(m *state.Manager) sessionFunc {
	return func(c *gin.Context, owner string) *state.Session {
		return m.Guest(c.Request.Context(), owner)
	}
}

// GET /api/v1/guest/wishlist
func GetGuestWishlist(sessions *state.Manager) gin.HandlerFunc {
	return getWishlist(guestSessions(sessions))
}

// POST /api/v1/guest/wishlist
func AddGuestWishlistEntry(db *gorm.DB, sessions *state.Manager) gin.HandlerFunc {
	return addWishlistEntry(db, guestSessions(sessions))
}

// DELETE /api/v1/guest/wishlist/:product_id
func RemoveGuestWishlistEntry(sessions *state.Manager) gin.HandlerFunc {
	return removeWishlistEntry(guestSessions(sessions))
}

// DELETE /api/v1/guest/wishlist
func ClearGuestWishlist(sessions *state.Manager) gin.HandlerFunc {
	return clearWishlist(guestSessions(sessions))
}
