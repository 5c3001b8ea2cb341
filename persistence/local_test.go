package persistence

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.LocalSnapshot{}))
	return db
}

func TestLocalStoreRoundtrip(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(testDB(t))

	cart := models.CartSnapshot{Items: []models.CartLineItem{
		{ProductID: 1, Size: "M", Color: "black", Name: "Graphic Tee", UnitPrice: 25, Quantity: 2},
	}}
	wishlist := models.WishlistSnapshot{Items: []models.WishlistEntry{
		{ProductID: 7, Name: "Hoodie", Price: 60},
	}}

	store.WriteCart(ctx, "guest_1", cart)
	store.WriteWishlist(ctx, "guest_1", wishlist)

	require.Equal(t, cart, store.ReadCart(ctx, "guest_1"))
	require.Equal(t, wishlist, store.ReadWishlist(ctx, "guest_1"))
}

func TestLocalStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(testDB(t))

	store.WriteCart(ctx, "guest_1", models.CartSnapshot{Items: []models.CartLineItem{
		{ProductID: 1, Quantity: 1},
	}})
	store.WriteCart(ctx, "guest_1", models.CartSnapshot{Items: []models.CartLineItem{
		{ProductID: 2, Quantity: 5},
	}})

	got := store.ReadCart(ctx, "guest_1")
	require.Len(t, got.Items, 1)
	require.Equal(t, uint(2), got.Items[0].ProductID)
}

func TestLocalStoreMissingOwnerReadsEmpty(t *testing.T) {
	store := NewLocalStore(testDB(t))

	require.True(t, store.ReadCart(context.Background(), "nobody").Empty())
	require.True(t, store.ReadWishlist(context.Background(), "nobody").Empty())
}

func TestLocalStoreMalformedBlobReadsEmpty(t *testing.T) {
	db := testDB(t)
	store := NewLocalStore(db)

	row := models.LocalSnapshot{OwnerID: "guest_1", Key: KeyCart, Data: "{not json"}
	require.NoError(t, db.Create(&row).Error)

	require.True(t, store.ReadCart(context.Background(), "guest_1").Empty())
}

func TestLocalStoreClearDropsBothDomains(t *testing.T) {
	ctx := context.Background()
	store := NewLocalStore(testDB(t))

	store.WriteCart(ctx, "guest_1", models.CartSnapshot{Items: []models.CartLineItem{{ProductID: 1, Quantity: 1}}})
	store.WriteWishlist(ctx, "guest_1", models.WishlistSnapshot{Items: []models.WishlistEntry{{ProductID: 2}}})
	store.WriteCart(ctx, "guest_2", models.CartSnapshot{Items: []models.CartLineItem{{ProductID: 3, Quantity: 1}}})

	store.Clear(ctx, "guest_1")

	require.True(t, store.ReadCart(ctx, "guest_1").Empty())
	require.True(t, store.ReadWishlist(ctx, "guest_1").Empty())
	// Other owners are untouched.
	require.Len(t, store.ReadCart(ctx, "guest_2").Items, 1)
}
