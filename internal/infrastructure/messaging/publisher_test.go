package messaging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/event"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
	"github.com/vishxesh10/InsureMate-LIve/pkg/kafka"
)

type fakeWriter struct {
	topic    string
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) Publish(_ context.Context, topic string, messages ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.topic = topic
	w.messages = append(w.messages, messages...)
	return nil
}

func completed() event.PredictionCompleted {
	return event.PredictionCompleted{
		ResultID:          42,
		PredictedCategory: "High",
		CityTier:          1,
		LifestyleRisk:     "high",
		AgeGroup:          "senior",
		Warnings:          []string{},
		CompletedAt:       time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestKafkaEventPublisher_Publish(t *testing.T) {
	t.Run("writes one keyed envelope per event", func(t *testing.T) {
		w := &fakeWriter{}
		p := NewKafkaEventPublisher(w, "premium.predictions", slog.New(slog.DiscardHandler))

		flagged := event.PredictionFlagged{ResultID: 42, Warnings: []string{"check"}, FlaggedAt: time.Now()}
		require.NoError(t, p.Publish(context.Background(), completed(), flagged))

		assert.Equal(t, "premium.predictions", w.topic)
		require.Len(t, w.messages, 2)

		msg := w.messages[0]
		assert.Equal(t, []byte("42"), msg.Key)
		assert.Equal(t, event.EventTypePredictionCompleted, msg.Headers[HeaderEventType])
		assert.NotEmpty(t, msg.Headers[HeaderEventID])

		env, err := events.DecodeEnvelope(msg.Value)
		require.NoError(t, err)
		assert.Equal(t, msg.Headers[HeaderEventID], env.EventID.String())

		var payload event.PredictionCompleted
		require.NoError(t, env.Decode(&payload))
		assert.Equal(t, "High", payload.PredictedCategory)
		assert.Equal(t, 1, payload.CityTier)

		assert.Equal(t, event.EventTypePredictionFlagged, w.messages[1].Headers[HeaderEventType])
	})

	t.Run("nothing to publish", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("must not be called")}
		p := NewKafkaEventPublisher(w, "t", slog.New(slog.DiscardHandler))
		assert.NoError(t, p.Publish(context.Background()))
	})

	t.Run("wraps writer failures", func(t *testing.T) {
		w := &fakeWriter{err: errors.New("broker unavailable")}
		p := NewKafkaEventPublisher(w, "premium.predictions", slog.New(slog.DiscardHandler))

		err := p.Publish(context.Background(), completed())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to publish 1 events to premium.predictions")
		assert.Contains(t, err.Error(), "broker unavailable")
	})
}

func TestLogEventPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	p := NewLogEventPublisher(slog.New(slog.NewJSONHandler(&buf, nil)))

	require.NoError(t, p.Publish(context.Background(), completed()))
	assert.Contains(t, buf.String(), `"event_type":"premium.prediction.completed"`)
	assert.Contains(t, buf.String(), `"aggregate_id":"42"`)
}
