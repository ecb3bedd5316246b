package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

const (
	FavoriteAdded   = "favorite.added"
	FavoriteRemoved = "favorite.removed"
)

// FavoriteEvent is published whenever a favorite is toggled.
type FavoriteEvent struct {
	Type       string    `json:"type"`
	ID         string    `json:"id"`
	City       string    `json:"city"`
	Lat        *float64  `json:"lat,omitempty"`
	Lon        *float64  `json:"lon,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Publisher delivers favorite events to interested consumers.
type Publisher interface {
	PublishFavorite(ctx context.Context, event FavoriteEvent) error
	Close() error
}

// NopPublisher drops every event. Used when no brokers are configured.
type NopPublisher struct{}

func (NopPublisher) PublishFavorite(context.Context, FavoriteEvent) error { return nil }
func (NopPublisher) Close() error                                         { return nil }

// KafkaPublisher produces favorite events to a Kafka topic, keyed by the
// favorite id so every change to one favorite lands on the same partition.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

func NewKafkaPublisher(brokers []string, topic string, logger *slog.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			RequiredAcks: kafkago.RequireOne,
		},
		logger: logger.With("component", "kafka-publisher"),
	}
}

func (p *KafkaPublisher) PublishFavorite(ctx context.Context, event FavoriteEvent) error {
	msg, err := serializeToMessage(event)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("failed to publish favorite event", "type", event.Type, "id", event.ID, "error", err)
		return fmt.Errorf("failed to write message: %w", err)
	}
	p.logger.Debug("published favorite event", "type", event.Type, "id", event.ID)
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func serializeToMessage(event FavoriteEvent) (kafkago.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize favorite event: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(event.ID),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(event.Type)},
			{Key: "occurred_at", Value: []byte(event.OccurredAt.Format(time.RFC3339))},
		},
	}, nil
}
