package persistence

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

type fakeStore struct {
	mu        sync.Mutex
	carts     map[string]models.CartSnapshot
	wishlists map[string]models.WishlistSnapshot
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		carts:     make(map[string]models.CartSnapshot),
		wishlists: make(map[string]models.WishlistSnapshot),
	}
}

func (f *fakeStore) ReadCart(_ context.Context, ownerID string) models.CartSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.carts[ownerID]
}

func (f *fakeStore) WriteCart(_ context.Context, ownerID string, snap models.CartSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[ownerID] = snap
}

func (f *fakeStore) ReadWishlist(_ context.Context, ownerID string) models.WishlistSnapshot {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wishlists[ownerID]
}

func (f *fakeStore) WriteWishlist(_ context.Context, ownerID string, snap models.WishlistSnapshot) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wishlists[ownerID] = snap
}

func (f *fakeStore) Clear(_ context.Context, ownerID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, ownerID)
	delete(f.wishlists, ownerID)
}

func line(productID uint, size string, qty int) models.CartLineItem {
	return models.CartLineItem{ProductID: productID, Size: size, Color: "white", Quantity: qty}
}

func TestMergeCartSnapshotsStacksSameIdentity(t *testing.T) {
	local := models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 2)}}
	remote := models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 3)}}

	merged := MergeCartSnapshots(local, remote)

	require.Len(t, merged.Items, 1)
	require.Equal(t, 5, merged.Items[0].Quantity)
}

func TestMergeCartSnapshotsKeepsDistinctVariants(t *testing.T) {
	local := models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 1), line(2, "S", 1)}}
	remote := models.CartSnapshot{Items: []models.CartLineItem{line(1, "L", 1)}}

	merged := MergeCartSnapshots(local, remote)

	// Remote lines first, then guest lines that found no match.
	require.Len(t, merged.Items, 3)
	require.Equal(t, uint(1), merged.Items[0].ProductID)
	require.Equal(t, "L", merged.Items[0].Size)
}

func TestMergeCartSnapshotsDoesNotMutateInputs(t *testing.T) {
	local := models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 2)}}
	remote := models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 3)}}

	_ = MergeCartSnapshots(local, remote)

	require.Equal(t, 2, local.Items[0].Quantity)
	require.Equal(t, 3, remote.Items[0].Quantity)
}

func TestMergeWishlistSnapshotsDedupesByProduct(t *testing.T) {
	local := models.WishlistSnapshot{Items: []models.WishlistEntry{{ProductID: 1}, {ProductID: 2}}}
	remote := models.WishlistSnapshot{Items: []models.WishlistEntry{{ProductID: 2}, {ProductID: 3}}}

	merged := MergeWishlistSnapshots(local, remote)

	require.Len(t, merged.Items, 3)
}

func TestMergeOnLoginWithoutGuestID(t *testing.T) {
	guest := newFakeStore()
	account := newFakeStore()

	status := MergeOnLogin(context.Background(), guest, account, "", "u1", "user")

	require.Equal(t, MergeStatusNone, status)
}

func TestMergeOnLoginWithEmptyGuestState(t *testing.T) {
	guest := newFakeStore()
	account := newFakeStore()
	account.WriteCart(context.Background(), "u1", models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 1)}})

	status := MergeOnLogin(context.Background(), guest, account, "guest_1", "u1", "user")

	require.Equal(t, MergeStatusNone, status)
	// The account snapshot is untouched.
	require.Len(t, account.ReadCart(context.Background(), "u1").Items, 1)
}

func TestMergeOnLoginMergesAndDeletesGuestCopy(t *testing.T) {
	ctx := context.Background()
	guest := newFakeStore()
	account := newFakeStore()

	guest.WriteCart(ctx, "guest_1", models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 2)}})
	guest.WriteWishlist(ctx, "guest_1", models.WishlistSnapshot{Items: []models.WishlistEntry{{ProductID: 5}}})
	account.WriteCart(ctx, "u1", models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 1)}})

	status := MergeOnLogin(ctx, guest, account, "guest_1", "u1", "user")

	require.Equal(t, MergeStatusMerged, status)

	merged := account.ReadCart(ctx, "u1")
	require.Len(t, merged.Items, 1)
	require.Equal(t, 3, merged.Items[0].Quantity)
	require.Len(t, account.ReadWishlist(ctx, "u1").Items, 1)

	// Guest snapshot is gone after the merge.
	require.True(t, guest.ReadCart(ctx, "guest_1").Empty())
	require.True(t, guest.ReadWishlist(ctx, "guest_1").Empty())
}

func TestMergeOnLoginAdminResetsBothSides(t *testing.T) {
	ctx := context.Background()
	guest := newFakeStore()
	account := newFakeStore()

	guest.WriteCart(ctx, "guest_1", models.CartSnapshot{Items: []models.CartLineItem{line(1, "M", 2)}})
	account.WriteCart(ctx, "a1", models.CartSnapshot{Items: []models.CartLineItem{line(2, "S", 1)}})

	status := MergeOnLogin(ctx, guest, account, "guest_1", "a1", "admin")

	require.Equal(t, MergeStatusAdminReset, status)
	require.True(t, guest.ReadCart(ctx, "guest_1").Empty())
	require.True(t, account.ReadCart(ctx, "a1").Empty())
}
