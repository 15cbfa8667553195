package cart

import (
	"context"
	"encoding/json"
	"sync"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/kvstore"
	"go-storefront-api/internal/pkg/persist"

	"go.uber.org/zap"
)

const storageKey = "user_cart"

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddItem(product catalog.Product, quantity int)
	RemoveItem(productID int)
	SetQuantity(productID, quantity int)
	Clear()

	Cart() Cart
	QuantityOf(productID int) int

	// Flush waits for pending snapshot writes. Shutdown and tests only.
	Flush()
}

// service owns the in-memory cart, which is the source of truth for the
// session. Each dispatch runs to completion under the mutex; the new
// snapshot is then handed to the coalescing writer, so durable state
// trails memory but never reorders.
type service struct {
	mu     sync.Mutex
	cart   Cart
	writer *persist.Writer
	logger *zap.Logger
}

// NewService restores the persisted snapshot, if any; a missing or
// malformed snapshot silently leaves the empty default.
func NewService(ctx context.Context, store kvstore.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		cart:   emptyCart(),
		writer: persist.NewWriter(store, storageKey, logger),
		logger: logger,
	}

	raw, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		logger.Warn("cart restore failed", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}

	var restored Cart
	if err := json.Unmarshal([]byte(raw), &restored); err != nil {
		logger.Warn("cart snapshot malformed, starting empty", zap.Error(err))
		return s
	}
	if restored.Items == nil {
		restored.Items = []CartItem{}
	}
	s.cart = restored
	return s
}

func (s *service) dispatch(action Action) {
	s.mu.Lock()
	s.cart = Reduce(s.cart, action)
	snapshot, err := json.Marshal(s.cart)
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("cart snapshot marshal failed", zap.Error(err))
		return
	}
	s.writer.Enqueue(string(snapshot))
}

func (s *service) AddItem(product catalog.Product, quantity int) {
	s.dispatch(AddItem{Product: product, Quantity: quantity})
}

func (s *service) RemoveItem(productID int) {
	s.dispatch(RemoveItem{ProductID: productID})
}

func (s *service) SetQuantity(productID, quantity int) {
	s.dispatch(SetQuantity{ProductID: productID, Quantity: quantity})
}

func (s *service) Clear() {
	s.dispatch(Clear{})
}

// Cart returns a copy; callers cannot reach the internal slice.
func (s *service) Cart() Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)
	return Cart{
		Items:      items,
		TotalItems: s.cart.TotalItems,
		TotalPrice: s.cart.TotalPrice,
	}
}

func (s *service) QuantityOf(productID int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.cart.Items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

func (s *service) Flush() {
	s.writer.Flush()
}
