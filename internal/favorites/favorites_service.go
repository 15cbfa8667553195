package favorites

import (
	"context"
	"encoding/json"
	"sync"

	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/kvstore"
	"go-storefront-api/internal/pkg/persist"

	"go.uber.org/zap"
)

const storageKey = "user_favorites"

//go:generate mockgen -source=favorites_service.go -destination=../mock/favorites/favorites_service_mock.go -package=mock
type Service interface {
	Add(product catalog.Product)
	Remove(productID int)
	Clear()

	List() Favorites
	IsFavorite(productID int) bool

	// Flush waits for pending snapshot writes. Shutdown and tests only.
	Flush()
}

// service mirrors the cart's persistence discipline: in-memory state is
// authoritative, snapshots trail through the coalescing writer.
type service struct {
	mu        sync.Mutex
	favorites Favorites
	writer    *persist.Writer
	logger    *zap.Logger
}

func NewService(ctx context.Context, store kvstore.Store, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &service{
		favorites: Favorites{},
		writer:    persist.NewWriter(store, storageKey, logger),
		logger:    logger,
	}

	raw, ok, err := store.Get(ctx, storageKey)
	if err != nil {
		logger.Warn("favorites restore failed", zap.Error(err))
		return s
	}
	if !ok {
		return s
	}

	var restored Favorites
	if err := json.Unmarshal([]byte(raw), &restored); err != nil {
		logger.Warn("favorites snapshot malformed, starting empty", zap.Error(err))
		return s
	}
	if restored == nil {
		restored = Favorites{}
	}
	s.favorites = restored
	return s
}

func (s *service) dispatch(action Action) {
	s.mu.Lock()
	s.favorites = Reduce(s.favorites, action)
	snapshot, err := json.Marshal(s.favorites)
	s.mu.Unlock()

	if err != nil {
		s.logger.Warn("favorites snapshot marshal failed", zap.Error(err))
		return
	}
	s.writer.Enqueue(string(snapshot))
}

func (s *service) Add(product catalog.Product) {
	s.dispatch(Add{Product: product})
}

func (s *service) Remove(productID int) {
	s.dispatch(Remove{ProductID: productID})
}

func (s *service) Clear() {
	s.dispatch(Clear{})
}

func (s *service) List() Favorites {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(Favorites, len(s.favorites))
	copy(out, s.favorites)
	return out
}

func (s *service) IsFavorite(productID int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.favorites {
		if p.ID == productID {
			return true
		}
	}
	return false
}

func (s *service) Flush() {
	s.writer.Flush()
}
