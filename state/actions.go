package state

import "github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"

// ActionType names a state transition. The sync hook's allow-list is derived
// from these same constants (see mirrorDomain), so the reducer vocabulary and
// the persistence filter cannot drift apart.
type ActionType string

const (
	CartAdd              ActionType = "cart/add"
	CartRemove           ActionType = "cart/remove"
	CartSetQuantity      ActionType = "cart/setQuantity"
	CartClear            ActionType = "cart/clear"
	CartToggleVisibility ActionType = "cart/toggleVisibility"

	WishlistAdd    ActionType = "wishlist/add"
	WishlistRemove ActionType = "wishlist/remove"
	WishlistClear  ActionType = "wishlist/clear"
)

type Action struct {
	Type      ActionType
	Item      models.CartLineItem  // CartAdd
	Entry     models.WishlistEntry // WishlistAdd
	ProductID uint                 // remove / setQuantity targets
	Size      string
	Color     string
	Quantity  int // CartSetQuantity
}

func AddCartItem(item models.CartLineItem) Action {
	return Action{Type: CartAdd, Item: item}
}

func RemoveCartItem(productID uint, size, color string) Action {
	return Action{Type: CartRemove, ProductID: productID, Size: size, Color: color}
}

func SetCartQuantity(productID uint, size, color string, quantity int) Action {
	return Action{Type: CartSetQuantity, ProductID: productID, Size: size, Color: color, Quantity: quantity}
}

func ClearCart() Action { return Action{Type: CartClear} }

func ToggleCart() Action { return Action{Type: CartToggleVisibility} }

func AddWishlistEntry(entry models.WishlistEntry) Action {
	return Action{Type: WishlistAdd, Entry: entry}
}

func RemoveWishlistEntry(productID uint) Action {
	return Action{Type: WishlistRemove, ProductID: productID}
}

func ClearWishlist() Action { return Action{Type: WishlistClear} }

// mirrorDomain is the sync hook's allow-list: which persisted domain, if any,
// an action dirties. Visibility toggles are UI state and are not mirrored.
type domain int

const (
	mirrorNone domain = iota
	mirrorCart
	mirrorWishlist
)

func mirrorDomain(t ActionType) domain {
	switch t {
	case CartAdd, CartRemove, CartSetQuantity, CartClear:
		return mirrorCart
	case WishlistAdd, WishlistRemove, WishlistClear:
		return mirrorWishlist
	default:
		return mirrorNone
	}
}
