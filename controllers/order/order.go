package orderControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/mail"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

// -------- Request Structs --------

// CheckoutAddress carries the shipping address with the field requirements
// the storefront enforces; State stays optional for countries without one.
type CheckoutAddress struct {
	Country    string `json:"country" binding:"required"`
	State      string `json:"state"`
	City       string `json:"city" binding:"required"`
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
}

type CheckoutRequest struct {
	Email         string          `json:"email" binding:"required,email"`
	Phone         string          `json:"phone" binding:"required,e164"`
	Address       CheckoutAddress `json:"address" binding:"required"`
	PaymentMethod string          `json:"payment_method" binding:"required,oneof=card cod"`
	CouponCode    string          `json:"coupon_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusConfirmed):
		return models.OrderStatusConfirmed, nil
	case string(models.OrderStatusReadyToShip):
		return models.OrderStatusReadyToShip, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusReturned):
		return models.OrderStatusReturned, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Map string to PaymentStatus
func mapPaymentStatus(status string) (models.PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(models.PaymentStatusPending):
		return models.PaymentStatusPending, nil
	case string(models.PaymentStatusPaid):
		return models.PaymentStatusPaid, nil
	case string(models.PaymentStatusFailed):
		return models.PaymentStatusFailed, nil
	case string(models.PaymentStatusRefunded):
		return models.PaymentStatusRefunded, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	// Example: 20250908130500-<uuid4>
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

// -------- Core Logic --------

// checkout turns the live session cart into a persisted order. Stock rows are
// locked for the duration of the transaction; the session cart is cleared
// only after the order commits.
func checkout(db *gorm.DB, session *state.Session, userID string, req CheckoutRequest) (models.Order, error) {
	cart := session.CartView()
	if len(cart.Items) == 0 {
		return models.Order{}, errors.New("cart is empty")
	}

	var order models.Order

	err := db.Transaction(func(tx *gorm.DB) error {
		var total, totalWeight float64
		var orderItems []models.OrderItem

		// 1️⃣ Lock and deduct stock per cart line
		for _, item := range cart.Items {
			var product models.Product
			if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				First(&product, "id = ?", item.ProductID).Error; err != nil {
				return errors.New("product no longer exists: " + item.Name)
			}

			if product.Stock < item.Quantity {
				return errors.New("insufficient stock for product: " + item.Name)
			}

			product.Stock -= item.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return err
			}

			total += item.UnitPrice * float64(item.Quantity)
			totalWeight += product.Weight * float64(item.Quantity)

			orderItems = append(orderItems, models.OrderItem{
				ProductID: item.ProductID,
				Name:      item.Name,
				Size:      item.Size,
				Color:     item.Color,
				Image:     item.Image,
				UnitPrice: item.UnitPrice,
				Weight:    product.Weight,
				Quantity:  item.Quantity,
			})
		}

		// 2️⃣ Shipping calculation (per started 30kg block)
		shippingCost := 0.0
		if totalWeight > 0 {
			shippingCost = float64(int(math.Ceil((totalWeight-1)/30.0))) * 30.0
		}

		// 3️⃣ Coupon discount
		discount := 0.0
		couponCode := ""
		if req.CouponCode != "" {
			var coupon models.Coupon
			if err := tx.Where("code = ?", req.CouponCode).First(&coupon).Error; err != nil {
				return errors.New("invalid coupon code")
			}
			if !coupon.Usable(time.Now()) {
				return errors.New("coupon is expired or inactive")
			}
			discount = total * coupon.PercentOff / 100.0
			couponCode = coupon.Code
		}

		// 4️⃣ Create order
		order = models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         orderItems,
			Email:         req.Email,
			Phone:         req.Phone,
			Address: models.Address{
				Country:    req.Address.Country,
				State:      req.Address.State,
				City:       req.Address.City,
				Street:     req.Address.Street,
				PostalCode: req.Address.PostalCode,
			},
			ShippingCost:  shippingCost,
			Discount:      discount,
			CouponCode:    couponCode,
			TotalAmount:   total - discount + shippingCost,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: req.PaymentMethod,
			CreatedAt:     time.Now(),
		}

		return tx.Create(&order).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	// Cart clears only after the order committed; the mirror write is the
	// session's usual fire-and-forget hook.
	session.Dispatch(state.ClearCart())

	return order, nil
}

// -------- Handlers --------

// POST /api/v1/user/checkout
func CheckoutHandler(db *gorm.DB, sessions *state.Manager, mailer *mail.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		session := sessions.User(c.Request.Context(), userID)
		order, err := checkout(db, session, userID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		go func(order models.Order) {
			if err := mailer.SendOrderConfirmation(order.Email, order); err != nil {
				log.Printf("⚠️ Order confirmation mail failed for %s: %v", order.OrderRef, err)
			}
		}(order)

		broadcastNewOrder(order)

		c.JSON(http.StatusCreated, gin.H{
			"message": "Order placed successfully",
			"order":   order,
		})
	}
}

func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

func GetUserOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := ownerID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// Get single order by ID or order_ref
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("orderID")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Where("id = ? OR order_ref = ?", id, id).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// Update order status
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}

// Update payment status
func UpdatePaymentStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdatePaymentStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapPaymentStatus(req.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Where("id = ?", orderID).
			Update("payment_status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update payment status"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Payment status updated successfully"})
	}
}

// Delete order
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error; err != nil {
				return err
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete order"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
	}
}
