package favorites

import "go-storefront-api/internal/catalog"

// Favorites is a set of saved products, unique by product id. Insertion
// order is kept for display only.
type Favorites []catalog.Product

// Action is the closed set of favorites transitions.
type Action interface {
	isFavoritesAction()
}

type Add struct {
	Product catalog.Product
}

type Remove struct {
	ProductID int
}

type Clear struct{}

func (Add) isFavoritesAction()    {}
func (Remove) isFavoritesAction() {}
func (Clear) isFavoritesAction()  {}

// Reduce is the pure transition function (state, action) -> state.
func Reduce(state Favorites, action Action) Favorites {
	switch a := action.(type) {
	case Add:
		for _, p := range state {
			if p.ID == a.Product.ID {
				// Already a favorite; adding again is a no-op.
				return state
			}
		}
		next := make(Favorites, 0, len(state)+1)
		next = append(next, state...)
		return append(next, a.Product)

	case Remove:
		next := make(Favorites, 0, len(state))
		for _, p := range state {
			if p.ID != a.ProductID {
				next = append(next, p)
			}
		}
		return next

	case Clear:
		return Favorites{}

	default:
		return state
	}
}
