package catalog

import (
	"context"
	"fmt"
	"time"

	"go-storefront-api/internal/cache"

	"go.uber.org/zap"
)

const (
	listingKeyPrefix = "products_"
	productKeyPrefix = "product_"
	categoriesKey    = "categories"
)

// TTLConfig tunes freshness per resource type. Listings change most
// often, the category list barely ever.
type TTLConfig struct {
	Listing    time.Duration
	Product    time.Duration
	Categories time.Duration
}

func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		Listing:    5 * time.Minute,
		Product:    10 * time.Minute,
		Categories: 30 * time.Minute,
	}
}

// Service is the read-through layer between callers and the catalog:
// cache hit short-circuits, miss queries the client and fills the cache.
// Client failures propagate and never populate the cache.
type Service struct {
	client Client
	cache  *cache.Cache
	ttl    TTLConfig
	logger *zap.Logger
}

func NewService(client Client, c *cache.Cache, ttl TTLConfig, logger *zap.Logger) *Service {
	if ttl.Listing <= 0 {
		ttl.Listing = DefaultTTLConfig().Listing
	}
	if ttl.Product <= 0 {
		ttl.Product = DefaultTTLConfig().Product
	}
	if ttl.Categories <= 0 {
		ttl.Categories = DefaultTTLConfig().Categories
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

// listingKey renders the query tuple deterministically: identical
// parameters must collide, any difference must not.
func listingKey(req ListProductsRequest) string {
	search := req.Search
	if search == "" {
		search = "all"
	}
	category := req.Category
	if category == "" {
		category = "all"
	}
	return fmt.Sprintf("%s%d_%d_%s_%s", listingKeyPrefix, req.Limit, req.Skip, search, category)
}

func productKey(id int) string {
	return fmt.Sprintf("%s%d", productKeyPrefix, id)
}

func (s *Service) GetProducts(ctx context.Context, req ListProductsRequest) (ProductsResponse, error) {
	key := listingKey(req)

	if !req.BypassCache {
		var cached ProductsResponse
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	res, err := s.fetchListing(ctx, req)
	if err != nil {
		return ProductsResponse{}, err
	}

	if !req.BypassCache {
		s.cache.Set(ctx, key, res, s.ttl.Listing)
	}
	return res, nil
}

// fetchListing routes to the right endpoint: search wins over category.
func (s *Service) fetchListing(ctx context.Context, req ListProductsRequest) (ProductsResponse, error) {
	switch {
	case req.Search != "":
		return s.client.SearchProducts(ctx, req.Search, req.Limit, req.Skip)
	case req.Category != "":
		return s.client.ListProductsByCategory(ctx, req.Category, req.Limit, req.Skip)
	default:
		return s.client.ListProducts(ctx, req.Limit, req.Skip)
	}
}

func (s *Service) GetProduct(ctx context.Context, id int, bypassCache bool) (Product, error) {
	key := productKey(id)

	if !bypassCache {
		var cached Product
		if s.cache.Get(ctx, key, &cached) {
			return cached, nil
		}
	}

	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return Product{}, err
	}

	if !bypassCache {
		s.cache.Set(ctx, key, product, s.ttl.Product)
	}
	return product, nil
}

func (s *Service) GetCategories(ctx context.Context, bypassCache bool) ([]string, error) {
	if !bypassCache {
		var cached []string
		if s.cache.Get(ctx, categoriesKey, &cached) {
			return cached, nil
		}
	}

	categories, err := s.client.ListCategories(ctx)
	if err != nil {
		return nil, err
	}

	if !bypassCache {
		s.cache.Set(ctx, categoriesKey, categories, s.ttl.Categories)
	}
	return categories, nil
}

// ClearCache drops the whole cache namespace.
func (s *Service) ClearCache(ctx context.Context) {
	s.cache.Clear(ctx)
}

// InvalidateProduct removes a single product's cache entry.
func (s *Service) InvalidateProduct(ctx context.Context, id int) {
	s.cache.Remove(ctx, productKey(id))
}

// InvalidateAll removes the three catalog namespaces: listings, single
// products and the category list.
func (s *Service) InvalidateAll(ctx context.Context) {
	s.cache.RemoveByPrefix(ctx, listingKeyPrefix)
	s.cache.RemoveByPrefix(ctx, productKeyPrefix)
	s.cache.Remove(ctx, categoriesKey)
}
