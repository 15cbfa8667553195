package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const retryInterval = 5 * time.Second

func ConnectDBWithRetry(dsn string, maxRetries int) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 1; i <= maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err == nil {
			err = db.Ping()
			if err == nil {
				log.Println("connected to database")
				return db, nil
			}
		}

		log.Printf("db retry %d/%d failed: %v", i, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return nil, err
}

func ConnectRedisWithRetry(addr string, maxRetries int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	for i := 1; i <= maxRetries; i++ {
		ctx := context.Background()
		if err := rdb.Ping(ctx).Err(); err == nil {
			log.Println("connected to redis")
			return rdb, nil
		}

		log.Printf("redis retry %d/%d failed", i, maxRetries)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect redis")
}

func ConnectKafkaWithRetry(broker, topic string, maxRetries int) (*kafka.Writer, error) {
	for i := 1; i <= maxRetries; i++ {
		writer := &kafka.Writer{
			Addr:  kafka.TCP(broker),
			Topic: topic,
		}

		conn, err := kafka.Dial("tcp", broker)
		if err == nil {
			conn.Close()
			log.Println("connected to kafka")
			return writer, nil
		}

		log.Printf("kafka retry %d/%d failed", i, maxRetries)
		time.Sleep(retryInterval)
	}

	return nil, fmt.Errorf("failed to connect kafka")
}
