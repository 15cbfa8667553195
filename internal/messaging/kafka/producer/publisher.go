package producer

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
)

const eventTypeOrderPlaced = "order.placed"

type OrderPlacedEvent struct {
	OrderNumber string    `json:"orderNumber"`
	Email       string    `json:"email"`
	TotalItems  int       `json:"totalItems"`
	Total       float64   `json:"total"`
	PlacedAt    time.Time `json:"placedAt"`
}

//go:generate mockgen -source=publisher.go -destination=../../../mock/producer/publisher_mock.go -package=mock
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
}

type kafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(writer *kafka.Writer) Publisher {
	return &kafkaPublisher{writer: writer}
}

func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderNumber),
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(eventTypeOrderPlaced)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}
