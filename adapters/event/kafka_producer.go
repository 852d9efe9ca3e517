package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/opabeer/portfolio-api/internal/config"
)

const (
	TopicContentEvents = "portfolio.events"

	EventContentUpdated = "content.updated"
)

type ContentEventPayload struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

type KafkaProducerClient struct {
	ContentEventsWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	contentWriter := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContentEvents,
		Balancer: &kafka.LeastBytes{},
	}

	return &KafkaProducerClient{
		ContentEventsWriter: contentWriter,
	}, nil
}

// PublishContentUpdated emits one event per document replace. The worker
// uses these to trigger snapshot backups.
func (c *KafkaProducerClient) PublishContentUpdated(ctx context.Context) error {
	payload := ContentEventPayload{
		EventID:    uuid.NewString(),
		EventType:  EventContentUpdated,
		OccurredAt: time.Now().UTC(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal content event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(payload.EventType),
		Value: value,
	}
	if err := c.ContentEventsWriter.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish content event: %w", err)
	}
	return nil
}

func (c *KafkaProducerClient) Close() {
	if c.ContentEventsWriter != nil {
		c.ContentEventsWriter.Close()
	}
}
