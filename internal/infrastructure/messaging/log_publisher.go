package messaging

import (
	"context"
	"log/slog"

	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
)

// LogEventPublisher records events in the log instead of a broker. It is
// used when no Kafka brokers are configured.
type LogEventPublisher struct {
	logger *slog.Logger
}

// NewLogEventPublisher creates a log-only publisher.
func NewLogEventPublisher(logger *slog.Logger) *LogEventPublisher {
	return &LogEventPublisher{logger: logger}
}

// Publish logs each event and never fails.
func (p *LogEventPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	for _, evt := range evts {
		p.logger.InfoContext(ctx, "domain event",
			"event_type", evt.EventType(),
			"aggregate_id", evt.AggregateID(),
			"occurred_at", evt.OccurredAt(),
		)
	}
	return nil
}
