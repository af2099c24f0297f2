package telemetry

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/pkg/observability"
)

func TestPredictionMetrics_Exported(t *testing.T) {
	provider, handler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: "premium-test"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m, err := NewPredictionMetrics(provider)
	require.NoError(t, err)

	ctx := context.Background()
	m.RecordPrediction(ctx, "High", 30*time.Millisecond)
	m.RecordPrediction(ctx, "High", 10*time.Millisecond)
	m.RecordPrediction(ctx, "Low", 5*time.Millisecond)
	m.RecordFailure(ctx, "storage")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)

	assert.Contains(t, text, `premium_predictions_total{category="High"`)
	assert.Contains(t, text, `premium_prediction_failures_total{kind="storage"`)
	assert.Contains(t, text, "premium_prediction_duration_seconds_bucket")
}
