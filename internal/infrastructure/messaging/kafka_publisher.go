package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
	"github.com/vishxesh10/InsureMate-LIve/pkg/kafka"
)

// Header keys set on every published message.
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// MessageWriter is the part of *kafka.Producer the publisher needs.
type MessageWriter interface {
	Publish(ctx context.Context, topic string, messages ...kafka.Message) error
}

// KafkaEventPublisher implements port.EventPublisher by writing event
// envelopes to a Kafka topic, keyed by aggregate id.
type KafkaEventPublisher struct {
	writer MessageWriter
	topic  string
	logger *slog.Logger
}

// NewKafkaEventPublisher creates a publisher targeting the given topic.
func NewKafkaEventPublisher(writer MessageWriter, topic string, logger *slog.Logger) *KafkaEventPublisher {
	return &KafkaEventPublisher{
		writer: writer,
		topic:  topic,
		logger: logger,
	}
}

// Publish serialises and sends domain events in a single batch.
func (p *KafkaEventPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	if len(evts) == 0 {
		return nil
	}

	messages := make([]kafka.Message, 0, len(evts))
	for _, evt := range evts {
		env, err := events.NewEnvelope(evt)
		if err != nil {
			return err
		}
		value, err := json.Marshal(env)
		if err != nil {
			return fmt.Errorf("marshal envelope %s: %w", evt.EventType(), err)
		}
		messages = append(messages, kafka.Message{
			Key:   []byte(env.AggregateID),
			Value: value,
			Headers: map[string]string{
				HeaderEventType: env.EventType,
				HeaderEventID:   env.EventID.String(),
			},
			Time: env.OccurredAt,
		})
	}

	if err := p.writer.Publish(ctx, p.topic, messages...); err != nil {
		return fmt.Errorf("failed to publish %d events to %s: %w", len(messages), p.topic, err)
	}

	p.logger.Debug("published domain events",
		"topic", p.topic,
		"count", len(messages),
	)
	return nil
}
