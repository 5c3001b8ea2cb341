// Package state holds the live cart/wishlist state of one shopping session
// and mirrors every mutation to a persistence adapter.
//
// Mutations funnel through Dispatch: a synchronous reducer step under the
// session lock, then one asynchronous fire-and-forget snapshot write through
// the adapter for allow-listed actions. That post-dispatch hook is the only
// persistence path; reducers never touch storage. There is no write
// sequencing and no cancellation of in-flight writes. Contradicting writes
// race and the last one to land wins, which matches the adapters'
// last-write-wins contract.
package state

import (
	"context"
	"sync"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/persistence"
)

// Session is the in-memory source of truth for one owner (guest or user).
type Session struct {
	owner   string
	adapter persistence.Adapter

	mu       sync.Mutex
	cart     []models.CartLineItem
	wishlist []models.WishlistEntry
	cartOpen bool

	// Derived aggregates, recomputed from the full item list on every cart
	// mutation. O(n) per mutation; carts are single/double digit sized.
	itemCount   int
	totalAmount float64
}

// CartView is what cart endpoints return: items plus derived aggregates.
type CartView struct {
	Items       []models.CartLineItem `json:"items"`
	ItemCount   int                   `json:"item_count"`
	TotalAmount float64               `json:"total_amount"`
	Open        bool                  `json:"open"`
}

type WishlistView struct {
	Items []models.WishlistEntry `json:"items"`
}

func newSession(ctx context.Context, owner string, adapter persistence.Adapter) *Session {
	s := &Session{owner: owner, adapter: adapter}
	s.cart = adapter.ReadCart(ctx, owner).Items
	s.wishlist = adapter.ReadWishlist(ctx, owner).Items
	s.recompute()
	return s
}

func (s *Session) Owner() string { return s.owner }

// Dispatch applies one action to the session. The reducer step is
// synchronous; the snapshot mirror write is a goroutine the caller never
// waits on.
func (s *Session) Dispatch(a Action) {
	s.mu.Lock()
	s.reduce(a)

	var cartSnap models.CartSnapshot
	var wishSnap models.WishlistSnapshot
	mirror := mirrorDomain(a.Type)
	switch mirror {
	case mirrorCart:
		cartSnap = models.CartSnapshot{Items: append([]models.CartLineItem(nil), s.cart...)}
	case mirrorWishlist:
		wishSnap = models.WishlistSnapshot{Items: append([]models.WishlistEntry(nil), s.wishlist...)}
	}
	s.mu.Unlock()

	switch mirror {
	case mirrorCart:
		go s.adapter.WriteCart(context.Background(), s.owner, cartSnap)
	case mirrorWishlist:
		go s.adapter.WriteWishlist(context.Background(), s.owner, wishSnap)
	}
}

// reduce is the pure transition step. Callers hold s.mu.
func (s *Session) reduce(a Action) {
	switch a.Type {
	case CartAdd:
		for i := range s.cart {
			if s.cart[i].SameIdentity(a.Item) {
				s.cart[i].Quantity += a.Item.Quantity
				s.recompute()
				return
			}
		}
		s.cart = append(s.cart, a.Item)
		s.recompute()

	case CartRemove:
		s.removeCartLine(a.ProductID, a.Size, a.Color)

	case CartSetQuantity:
		// Quantity zero (or below) routes to removal.
		if a.Quantity <= 0 {
			s.removeCartLine(a.ProductID, a.Size, a.Color)
			return
		}
		for i := range s.cart {
			if s.cart[i].ProductID == a.ProductID && s.cart[i].Size == a.Size && s.cart[i].Color == a.Color {
				s.cart[i].Quantity = a.Quantity
				s.recompute()
				return
			}
		}
		// Absent identity: no-op.

	case CartClear:
		s.cart = nil
		s.recompute()

	case CartToggleVisibility:
		s.cartOpen = !s.cartOpen

	case WishlistAdd:
		for i := range s.wishlist {
			if s.wishlist[i].ProductID == a.Entry.ProductID {
				return // at most one entry per product
			}
		}
		s.wishlist = append(s.wishlist, a.Entry)

	case WishlistRemove:
		for i := range s.wishlist {
			if s.wishlist[i].ProductID == a.ProductID {
				s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
				return
			}
		}

	case WishlistClear:
		s.wishlist = nil
	}
}

// removeCartLine drops the line with the given identity. Absent identity is
// a no-op.
func (s *Session) removeCartLine(productID uint, size, color string) {
	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].Size == size && s.cart[i].Color == color {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			s.recompute()
			return
		}
	}
}

func (s *Session) recompute() {
	count := 0
	total := 0.0
	for _, item := range s.cart {
		count += item.Quantity
		total += item.UnitPrice * float64(item.Quantity)
	}
	s.itemCount = count
	s.totalAmount = total
}

func (s *Session) CartView() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{
		Items:       append([]models.CartLineItem(nil), s.cart...),
		ItemCount:   s.itemCount,
		TotalAmount: s.totalAmount,
		Open:        s.cartOpen,
	}
}

func (s *Session) WishlistView() WishlistView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WishlistView{Items: append([]models.WishlistEntry(nil), s.wishlist...)}
}
