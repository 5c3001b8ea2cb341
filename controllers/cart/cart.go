package cartControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

type CartItemInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type SetQuantityInput struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}

// ownerID pulls the token subject loaded by the auth middleware.
func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// sessionFunc resolves the shopping session for the request owner. User
// routes bind it to Manager.User, guest routes to Manager.Guest.
type sessionFunc func(c *gin.Context, owner string) *state.Session

// lineItemFromProduct validates the requested variant against the catalog
// row and denormalizes it into a cart line.
func lineItemFromProduct(db *gorm.DB, input CartItemInput) (models.CartLineItem, int, string) {
	var product models.Product
	if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return models.CartLineItem{}, http.StatusBadRequest, "Product does not exist"
		}
		return models.CartLineItem{}, http.StatusInternalServerError, "Failed to validate product"
	}
	if !product.HasSize(input.Size) {
		return models.CartLineItem{}, http.StatusBadRequest, "Product is not available in that size"
	}
	if !product.HasColor(input.Color) {
		return models.CartLineItem{}, http.StatusBadRequest, "Product is not available in that color"
	}

	return models.CartLineItem{
		ProductID: product.ID,
		Size:      input.Size,
		Color:     input.Color,
		Name:      product.Name,
		UnitPrice: product.SalePrice,
		Image:     product.Image,
		Quantity:  input.Quantity,
	}, 0, ""
}

func getCart(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, sessions(c, owner).CartView())
	}
}

func addCartItem(db *gorm.DB, sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input CartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		item, status, errMsg := lineItemFromProduct(db, input)
		if errMsg != "" {
			c.JSON(status, gin.H{"error": errMsg})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.AddCartItem(item))
		c.JSON(http.StatusOK, session.CartView())
	}
}

func setCartQuantity(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input SetQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.SetCartQuantity(input.ProductID, input.Size, input.Color, input.Quantity))
		c.JSON(http.StatusOK, session.CartView())
	}
}

func deleteCartItem(sessions sessionFunc) gin.HandlerFunc {
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
		session.Dispatch(state.RemoveCartItem(uint(productID), c.Query("size"), c.Query("color")))
		c.JSON(http.StatusOK, session.CartView())
	}
}

func clearCart(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.ClearCart())
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}

func toggleCart(sessions sessionFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session := sessions(c, owner)
		session.Dispatch(state.ToggleCart())
		c.JSON(http.StatusOK, gin.H{"open": session.CartView().Open})
	}
}

// -------- User cart (authenticated, remote-mirrored) --------

func userSessions(m *state.Manager) sessionFunc {
	return func(c *gin.Context, owner string) *state.Session {
		return m.User(c.Request.Context(), owner)
	}
}

// GET /api/v1/user/cart
func GetUserCart(sessions *state.Manager) gin.HandlerFunc {
	return getCart(userSessions(sessions))
}

// POST /api/v1/user/cart
func AddUserCartItem(db *gorm.DB, sessions *state.Manager) gin.HandlerFunc {
	return addCartItem(db, userSessions(sessions))
}

// PUT /api/v1/user/cart
func SetUserCartQuantity(sessions *state.Manager) gin.HandlerFunc {
	return setCartQuantity(userSessions(sessions))
}

// DELETE /api/v1/user/cart/:product_id
func DeleteUserCartItem(sessions *state.Manager) gin.HandlerFunc {
	return deleteCartItem(userSessions(sessions))
}

// DELETE /api/v1/user/cart
func ClearUserCart(sessions *state.Manager) gin.HandlerFunc {
	return clearCart(userSessions(sessions))
}

// POST /api/v1/user/cart/toggle
func ToggleUserCart(sessions *state.Manager) gin.HandlerFunc {
	return toggleCart(userSessions(sessions))
}

// -------- Admin inspection --------

// GET /api/v1/admin/user-cart/:user_id
//
// Reads the remote snapshot directly rather than the live session: the
// back-office wants what is durably mirrored, not a session it would
// otherwise spuriously create.
func GetAdminUserCart(remote persistence.Adapter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		if userID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id is required"})
			return
		}
		c.JSON(http.StatusOK, remote.ReadCart(c.Request.Context(), userID))
	}
}
