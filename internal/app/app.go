package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"go-storefront-api/internal/kvstore"
	"go-storefront-api/internal/messaging/kafka/producer"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the configured backends and registers every module
// on the router. STORE_BACKEND selects the durable store: redis
// (default), postgres, or memory.
func BuildApp(router *gin.Engine) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	store, err := buildStore()
	if err != nil {
		return err
	}

	// Kafka is optional: without a broker, order events are skipped.
	var publisher producer.Publisher
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		topic := os.Getenv("KAFKA_ORDER_TOPIC")
		if topic == "" {
			topic = "orders"
		}
		writer, err := ConnectKafkaWithRetry(broker, topic, 5)
		if err != nil {
			return err
		}
		publisher = producer.NewKafkaPublisher(writer)
	}

	httpClient := &http.Client{Timeout: httpClientTimeout()}

	registerModules(router, Deps{
		Store:      store,
		Publisher:  publisher,
		HTTPClient: httpClient,
		Logger:     logger,
	})

	return nil
}

func buildStore() (kvstore.Store, error) {
	switch os.Getenv("STORE_BACKEND") {
	case "postgres":
		db, err := ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
		if err != nil {
			return nil, err
		}
		store := kvstore.NewPostgresStore(db)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case "memory":
		log.Println("using in-memory store; state will not survive restarts")
		return kvstore.NewMemoryStore(), nil

	default:
		client, err := ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
		if err != nil {
			return nil, err
		}
		return kvstore.NewRedisStore(client), nil
	}
}

func httpClientTimeout() time.Duration {
	if raw := os.Getenv("CATALOG_TIMEOUT_SECONDS"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return 15 * time.Second
}
