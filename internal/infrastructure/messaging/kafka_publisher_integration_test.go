//go:build integration

package messaging_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/event"
	"github.com/vishxesh10/InsureMate-LIve/internal/infrastructure/messaging"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
	"github.com/vishxesh10/InsureMate-LIve/pkg/kafka"
	"github.com/vishxesh10/InsureMate-LIve/pkg/testutil"
)

func TestKafkaEventPublisher_RoundTrip(t *testing.T) {
	broker := testutil.StartKafka(t)
	logger := slog.New(slog.DiscardHandler)
	cfg := kafka.Config{Brokers: broker.Brokers, ClientID: "premium-it", ConsumerGroup: "premium-it"}

	producer, err := kafka.NewProducer(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = producer.Close() })

	publisher := messaging.NewKafkaEventPublisher(producer, "premium.predictions.it", logger)
	evt := event.PredictionCompleted{
		ResultID:          7,
		PredictedCategory: "Medium",
		CityTier:          2,
		LifestyleRisk:     "medium",
		AgeGroup:          "adult",
		Warnings:          []string{},
		CompletedAt:       time.Now().UTC(),
	}
	require.NoError(t, publisher.Publish(context.Background(), evt))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	received := make(chan events.Envelope, 1)
	consumer, err := kafka.NewConsumer(cfg, "premium.predictions.it", kafka.ConsumerOptions{FromBeginning: true},
		func(_ context.Context, msg kafka.Message) error {
			env, err := events.DecodeEnvelope(msg.Value)
			if err != nil {
				return err
			}
			received <- env
			cancel()
			return nil
		}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = consumer.Close() })

	require.NoError(t, consumer.Start(ctx))

	select {
	case env := <-received:
		assert.Equal(t, event.EventTypePredictionCompleted, env.EventType)
		assert.Equal(t, "7", env.AggregateID)
	default:
		t.Fatal("no event consumed")
	}
}
