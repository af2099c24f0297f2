// Package telemetry records prediction metrics through OpenTelemetry.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MeterName is the instrumentation scope of the prediction instruments.
const MeterName = "github.com/vishxesh10/InsureMate-LIve/prediction"

// PredictionMetrics implements port.PredictionMetrics.
type PredictionMetrics struct {
	predictions metric.Int64Counter
	failures    metric.Int64Counter
	latency     metric.Float64Histogram
}

// NewPredictionMetrics creates the prediction instruments on provider.
func NewPredictionMetrics(provider metric.MeterProvider) (*PredictionMetrics, error) {
	meter := provider.Meter(MeterName)

	predictions, err := meter.Int64Counter("premium_predictions",
		metric.WithDescription("Stored predictions by premium category."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create predictions counter: %w", err)
	}

	failures, err := meter.Int64Counter("premium_prediction_failures",
		metric.WithDescription("Failed prediction requests by failure kind."),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create failures counter: %w", err)
	}

	latency, err := meter.Float64Histogram("premium_prediction_duration",
		metric.WithDescription("End-to-end prediction latency."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create latency histogram: %w", err)
	}

	return &PredictionMetrics{
		predictions: predictions,
		failures:    failures,
		latency:     latency,
	}, nil
}

// RecordPrediction counts a stored prediction and its latency.
func (m *PredictionMetrics) RecordPrediction(ctx context.Context, category string, elapsed time.Duration) {
	attrs := metric.WithAttributes(attribute.String("category", category))
	m.predictions.Add(ctx, 1, attrs)
	m.latency.Record(ctx, elapsed.Seconds(), attrs)
}

// RecordFailure counts a failed prediction.
func (m *PredictionMetrics) RecordFailure(ctx context.Context, kind string) {
	m.failures.Add(ctx, 1, metric.WithAttributes(attribute.String("kind", kind)))
}
