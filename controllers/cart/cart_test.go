package cartControllers

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

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/state"
)

func setupCartRouter(t *testing.T, owner string) (*gin.Engine, *gorm.DB, persistence.Adapter) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Category{}, &models.LocalSnapshot{}))

	local := persistence.NewLocalStore(db)
	sessions := state.NewManager(local, local)

	r := gin.New()
	// Stand-in for the JWT middleware.
	r.Use(func(c *gin.Context) {
		c.Set("user_id", owner)
		c.Set("role", "guest")
	})

	cart := r.Group("/guest/cart")
	{
		cart.GET("", GetGuestCart(sessions))
		cart.POST("", AddGuestCartItem(db, sessions))
		cart.PUT("", SetGuestCartQuantity(sessions))
		cart.DELETE("/:product_id", DeleteGuestCartItem(sessions))
		cart.DELETE("", ClearGuestCart(sessions))
		cart.POST("/toggle", ToggleGuestCart(sessions))
	}

	return r, db, local
}

func seedProduct(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()
	p := models.Product{
		Name:      "Graphic Tee",
		SalePrice: 25,
		Stock:     10,
		Sizes:     models.StringList{"S", "M", "L"},
		Colors:    models.StringList{"black", "white"},
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func postJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestAddCartItemHappyPath(t *testing.T) {
	r, db, _ := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	w := postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID,
		"size":       "M",
		"color":      "black",
		"quantity":   2,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var view state.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	require.Equal(t, 2, view.ItemCount)
	require.Equal(t, 50.0, view.TotalAmount)
	require.Equal(t, "Graphic Tee", view.Items[0].Name)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	r, _, _ := setupCartRouter(t, "guest_1")

	w := postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": 999,
		"quantity":   1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemUnavailableSize(t *testing.T) {
	r, db, _ := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	w := postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID,
		"size":       "XXL",
		"quantity":   1,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddCartItemRejectsZeroQuantity(t *testing.T) {
	r, db, _ := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	w := postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID,
		"size":       "M",
		"quantity":   0,
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetQuantityZeroRemovesLine(t *testing.T) {
	r, db, _ := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID, "size": "M", "color": "black", "quantity": 3,
	})
	w := postJSON(r, http.MethodPut, "/guest/cart", gin.H{
		"product_id": p.ID, "size": "M", "color": "black", "quantity": 0,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var view state.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Empty(t, view.Items)
}

func TestDeleteCartItemByVariant(t *testing.T) {
	r, db, _ := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID, "size": "M", "color": "black", "quantity": 1,
	})
	postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID, "size": "L", "color": "black", "quantity": 1,
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/guest/cart/1?size=M&color=black", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var view state.CartView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Items, 1)
	require.Equal(t, "L", view.Items[0].Size)
}

func TestCartMirrorsToLocalStore(t *testing.T) {
	r, db, local := setupCartRouter(t, "guest_1")
	p := seedProduct(t, db)

	postJSON(r, http.MethodPost, "/guest/cart", gin.H{
		"product_id": p.ID, "size": "S", "color": "white", "quantity": 1,
	})

	require.Eventually(t, func() bool {
		return len(local.ReadCart(context.Background(), "guest_1").Items) == 1
	}, time.Second, 5*time.Millisecond)
}
