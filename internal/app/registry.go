package app

import (
	"context"
	"net/http"
	"os"
	"time"

	"go-storefront-api/internal/cache"
	"go-storefront-api/internal/cart"
	"go-storefront-api/internal/catalog"
	"go-storefront-api/internal/checkout"
	"go-storefront-api/internal/favorites"
	"go-storefront-api/internal/kvstore"
	"go-storefront-api/internal/messaging/kafka/producer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Deps struct {
	Store      kvstore.Store
	Publisher  producer.Publisher
	HTTPClient *http.Client
	Logger     *zap.Logger
}

func registerModules(router *gin.Engine, deps Deps) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// --- Core ---
	expCache := cache.New(deps.Store, deps.Logger)
	client := catalog.NewClient(os.Getenv("CATALOG_BASE_URL"), deps.HTTPClient)
	catalogService := catalog.NewService(client, expCache, catalog.DefaultTTLConfig(), deps.Logger)

	cartService := cart.NewService(ctx, deps.Store, deps.Logger)
	favoritesService := favorites.NewService(ctx, deps.Store, deps.Logger)
	checkoutService := checkout.NewService(checkout.Deps{
		CartSvc:   cartService,
		Publisher: deps.Publisher,
		Logger:    deps.Logger,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService, catalogService)
	favoritesHandler := favorites.NewHandler(favoritesService, catalogService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		favorites.RegisterRoutes(api, favoritesHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
