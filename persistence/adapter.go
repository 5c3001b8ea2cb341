// Package persistence mirrors live cart/wishlist session state into durable
// storage. Two adapters share one interface: LocalStore keeps guest-session
// snapshots as JSON blobs in Postgres, RemoteStore keeps per-user documents
// in Firestore.
//
// Adapters are passive mirrors, not sources of truth: writes are best-effort,
// errors are logged and swallowed, and concurrent writers (multiple tabs or
// devices on one account) resolve by last-write-wins. The in-memory session
// is authoritative while it lives; adapters only seed it back on the next
// hydration.
package persistence

import (
	"context"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// Adapter reads and writes whole snapshots for one owner. Read never fails:
// absent or malformed state comes back as an empty snapshot. Write never
// reports to the caller; failures are the adapter's problem.
type Adapter interface {
	ReadCart(ctx context.Context, ownerID string) models.CartSnapshot
	WriteCart(ctx context.Context, ownerID string, snap models.CartSnapshot)
	ReadWishlist(ctx context.Context, ownerID string) models.WishlistSnapshot
	WriteWishlist(ctx context.Context, ownerID string, snap models.WishlistSnapshot)

	// Clear removes both the cart and wishlist snapshots for the owner.
	Clear(ctx context.Context, ownerID string)
}

// Snapshot keys shared by both adapters: LocalStore row keys and RemoteStore
// document field names.
const (
	KeyCart     = "cart"
	KeyWishlist = "wishlist"
)
