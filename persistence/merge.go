package persistence

import (
	"context"
	"log"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// Merge statuses reported back to the login response.
const (
	MergeStatusNone       = "no-guest-data"
	MergeStatusMerged     = "merged-success"
	MergeStatusAdminReset = "admin-reset"
)

// MergeCartSnapshots folds the guest cart into the account cart. The account
// list is the base; each guest line either stacks onto an existing line with
// the same (product, size, color) identity or is appended. Quantities are
// additive: a product in both carts ends up with the sum.
func MergeCartSnapshots(local, remote models.CartSnapshot) models.CartSnapshot {
	merged := models.CartSnapshot{Items: make([]models.CartLineItem, len(remote.Items))}
	copy(merged.Items, remote.Items)

	for _, guest := range local.Items {
		found := false
		for i := range merged.Items {
			if merged.Items[i].SameIdentity(guest) {
				merged.Items[i].Quantity += guest.Quantity
				found = true
				break
			}
		}
		if !found {
			merged.Items = append(merged.Items, guest)
		}
	}
	return merged
}

// MergeWishlistSnapshots folds the guest wishlist into the account wishlist,
// de-duplicating on product ID.
func MergeWishlistSnapshots(local, remote models.WishlistSnapshot) models.WishlistSnapshot {
	merged := models.WishlistSnapshot{Items: make([]models.WishlistEntry, len(remote.Items))}
	copy(merged.Items, remote.Items)

	for _, guest := range local.Items {
		found := false
		for i := range merged.Items {
			if merged.Items[i].ProductID == guest.ProductID {
				found = true
				break
			}
		}
		if !found {
			merged.Items = append(merged.Items, guest)
		}
	}
	return merged
}

// MergeOnLogin reconciles guest-session state with account state, once, at
// login. The merged result becomes the new account snapshot and the guest
// copy is deleted. Admin accounts carry no shopping state: their login skips
// the merge and resets both sides to empty.
func MergeOnLogin(ctx context.Context, guest, account Adapter, guestID, userID, role string) string {
	if role == "admin" {
		if guestID != "" {
			guest.Clear(ctx, guestID)
		}
		account.Clear(ctx, userID)
		return MergeStatusAdminReset
	}

	if guestID == "" {
		return MergeStatusNone
	}

	localCart := guest.ReadCart(ctx, guestID)
	localWishlist := guest.ReadWishlist(ctx, guestID)
	if localCart.Empty() && localWishlist.Empty() {
		return MergeStatusNone
	}

	if !localCart.Empty() {
		remoteCart := account.ReadCart(ctx, userID)
		account.WriteCart(ctx, userID, MergeCartSnapshots(localCart, remoteCart))
	}
	if !localWishlist.Empty() {
		remoteWishlist := account.ReadWishlist(ctx, userID)
		account.WriteWishlist(ctx, userID, MergeWishlistSnapshots(localWishlist, remoteWishlist))
	}

	guest.Clear(ctx, guestID)
	log.Printf("✅ Merged guest %s shopping state into user %s", guestID, userID)
	return MergeStatusMerged
}
