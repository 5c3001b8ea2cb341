package models

// CartLineItem is one line of a cart snapshot. Its identity is the
// (ProductID, Size, Color) tuple: a cart holds at most one line per tuple,
// and adding an existing tuple increments Quantity instead of duplicating.
type CartLineItem struct {
	ProductID uint    `json:"product_id" firestore:"product_id"`
	Size      string  `json:"size" firestore:"size"`
	Color     string  `json:"color" firestore:"color"`
	Name      string  `json:"name" firestore:"name"`
	UnitPrice float64 `json:"unit_price" firestore:"unit_price"`
	Image     string  `json:"image" firestore:"image"`
	Quantity  int     `json:"quantity" firestore:"quantity"`
}

// SameIdentity reports whether two lines refer to the same sellable variant.
func (i CartLineItem) SameIdentity(o CartLineItem) bool {
	return i.ProductID == o.ProductID && i.Size == o.Size && i.Color == o.Color
}

// WishlistEntry is a denormalized product snapshot keyed by ProductID.
// A wishlist holds at most one entry per product.
type WishlistEntry struct {
	ProductID uint    `json:"product_id" firestore:"product_id"`
	Name      string  `json:"name" firestore:"name"`
	Price     float64 `json:"price" firestore:"price"`
	Image     string  `json:"image" firestore:"image"`
	OnSale    bool    `json:"on_sale" firestore:"on_sale"`
}

// CartSnapshot is the persisted form of a cart: {"items": [...]}.
// Snapshots are best-effort mirrors of live session state. There is no
// versioning and no conflict timestamp; the last write to an adapter wins.
type CartSnapshot struct {
	Items []CartLineItem `json:"items" firestore:"items"`
}

// WishlistSnapshot is the persisted form of a wishlist: {"items": [...]}.
type WishlistSnapshot struct {
	Items []WishlistEntry `json:"items" firestore:"items"`
}

func (s CartSnapshot) Empty() bool     { return len(s.Items) == 0 }
func (s WishlistSnapshot) Empty() bool { return len(s.Items) == 0 }
