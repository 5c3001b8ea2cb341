package orderControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/mail"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

func setupCheckoutRouter(t *testing.T, userID string) (*gin.Engine, *gorm.DB, *state.Manager) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Product{}, &models.Category{},
		&models.Order{}, &models.OrderItem{}, &models.Coupon{},
		&models.LocalSnapshot{},
	))
	require.NoError(t, db.Create(&models.User{ID: userID, Email: userID + "@example.com"}).Error)

	local := persistence.NewLocalStore(db)
	sessions := state.NewManager(local, local)

	r := gin.New()
	// Stand-in for the JWT middleware.
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("role", "user")
	})
	r.POST("/checkout", CheckoutHandler(db, sessions, mail.NewClient("", "shop@example.com")))

	return r, db, sessions
}

func seedCheckoutProduct(t *testing.T, db *gorm.DB, stock int, weight float64) models.Product {
	t.Helper()
	p := models.Product{
		Name:      "Graphic Tee",
		SalePrice: 25,
		Stock:     stock,
		Weight:    weight,
		Sizes:     models.StringList{"M"},
		Colors:    models.StringList{"black"},
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func fillCart(sessions *state.Manager, userID string, p models.Product, qty int) {
	sessions.User(context.Background(), userID).Dispatch(state.AddCartItem(models.CartLineItem{
		ProductID: p.ID,
		Size:      "M",
		Color:     "black",
		Name:      p.Name,
		UnitPrice: p.SalePrice,
		Quantity:  qty,
	}))
}

func checkoutBody(overrides map[string]interface{}) gin.H {
	body := gin.H{
		"email":          "buyer@example.com",
		"phone":          "+971501234567",
		"payment_method": "cod",
		"address": gin.H{
			"country":     "AE",
			"city":        "Dubai",
			"street":      "12 Marina Walk",
			"postal_code": "00000",
		},
	}
	for k, v := range overrides {
		body[k] = v
	}
	return body
}

func postCheckout(r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(body)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/checkout", &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCheckoutRejectsEmptyAddress(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 10, 0)
	fillCart(sessions, "u1", p, 1)

	w := postCheckout(r, checkoutBody(map[string]interface{}{"address": gin.H{}}))

	require.Equal(t, http.StatusBadRequest, w.Code)
	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestCheckoutRejectsMalformedPhone(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 10, 0)
	fillCart(sessions, "u1", p, 1)

	for _, phone := range []string{"", "###", "not a number", "0501234567"} {
		w := postCheckout(r, checkoutBody(map[string]interface{}{"phone": phone}))
		require.Equal(t, http.StatusBadRequest, w.Code, "phone %q", phone)
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	r, db, _ := setupCheckoutRouter(t, "u1")
	seedCheckoutProduct(t, db, 10, 0)

	w := postCheckout(r, checkoutBody(nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "cart is empty")
}

func TestCheckoutInsufficientStockRollsBack(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 1, 0)
	fillCart(sessions, "u1", p, 2)

	w := postCheckout(r, checkoutBody(nil))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "insufficient stock")

	// Stock untouched and the cart survives the failed attempt.
	var fresh models.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 1, fresh.Stock)
	require.Len(t, sessions.User(context.Background(), "u1").CartView().Items, 1)
}

func TestCheckoutAppliesCouponDiscount(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 10, 0)
	fillCart(sessions, "u1", p, 2)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "WELCOME10", PercentOff: 10, Active: true,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}).Error)

	w := postCheckout(r, checkoutBody(map[string]interface{}{"coupon_code": "WELCOME10"}))

	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order).Error)
	require.NotEmpty(t, order.OrderRef)
	require.Equal(t, 5.0, order.Discount)
	require.Equal(t, "WELCOME10", order.CouponCode)
	require.Equal(t, 45.0, order.TotalAmount) // 2 x 25 - 10%
	require.Len(t, order.Items, 1)
	require.Equal(t, 2, order.Items[0].Quantity)

	// Stock deducted, cart cleared only after the commit.
	var fresh models.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 8, fresh.Stock)
	require.Empty(t, sessions.User(context.Background(), "u1").CartView().Items)
}

func TestCheckoutRejectsExpiredCoupon(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 10, 0)
	fillCart(sessions, "u1", p, 2)
	require.NoError(t, db.Create(&models.Coupon{
		Code: "OLD", PercentOff: 10, Active: true,
		ExpiresAt: time.Now().Add(-time.Hour),
	}).Error)

	w := postCheckout(r, checkoutBody(map[string]interface{}{"coupon_code": "OLD"}))

	require.Equal(t, http.StatusBadRequest, w.Code)

	// The transaction rolled back the stock deduction.
	var fresh models.Product
	require.NoError(t, db.First(&fresh, p.ID).Error)
	require.Equal(t, 10, fresh.Stock)
}

func TestCheckoutChargesWeightShipping(t *testing.T) {
	r, db, sessions := setupCheckoutRouter(t, "u1")
	p := seedCheckoutProduct(t, db, 10, 2.0)
	fillCart(sessions, "u1", p, 2)

	w := postCheckout(r, checkoutBody(nil))

	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.First(&order).Error)
	require.Equal(t, 30.0, order.ShippingCost) // 4kg -> first 30kg block
	require.Equal(t, 80.0, order.TotalAmount)  // 2 x 25 + shipping
}
