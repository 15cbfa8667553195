package cart

import "go-storefront-api/internal/catalog"

// CartItem pairs a product snapshot (taken at add time) with a quantity.
// Quantity is >= 1 for as long as the item exists; zero means removal.
type CartItem struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds line items in insertion order plus totals derived from them.
// Totals are never mutated independently: every transition recomputes
// them from the items.
type Cart struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	TotalPrice float64    `json:"totalPrice"`
}

func emptyCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Action is the closed set of cart transitions.
type Action interface {
	isCartAction()
}

type AddItem struct {
	Product  catalog.Product
	Quantity int
}

type RemoveItem struct {
	ProductID int
}

type SetQuantity struct {
	ProductID int
	Quantity  int
}

type Clear struct{}

func (AddItem) isCartAction()     {}
func (RemoveItem) isCartAction()  {}
func (SetQuantity) isCartAction() {}
func (Clear) isCartAction()       {}

// Reduce is the pure transition function (state, action) -> state. The
// input cart is never mutated.
func Reduce(state Cart, action Action) Cart {
	switch a := action.(type) {
	case AddItem:
		qty := a.Quantity
		if qty <= 0 {
			qty = 1
		}

		items := make([]CartItem, 0, len(state.Items)+1)
		found := false
		for _, item := range state.Items {
			if item.Product.ID == a.Product.ID {
				item.Quantity += qty
				found = true
			}
			items = append(items, item)
		}
		if !found {
			items = append(items, CartItem{Product: a.Product, Quantity: qty})
		}
		return withTotals(items)

	case RemoveItem:
		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID != a.ProductID {
				items = append(items, item)
			}
		}
		return withTotals(items)

	case SetQuantity:
		if a.Quantity <= 0 {
			return Reduce(state, RemoveItem{ProductID: a.ProductID})
		}

		items := make([]CartItem, 0, len(state.Items))
		for _, item := range state.Items {
			if item.Product.ID == a.ProductID {
				item.Quantity = a.Quantity
			}
			items = append(items, item)
		}
		return withTotals(items)

	case Clear:
		return emptyCart()

	default:
		return state
	}
}

func withTotals(items []CartItem) Cart {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range items {
		totalItems += item.Quantity
		totalPrice += item.Product.Price * float64(item.Quantity)
	}
	return Cart{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}
