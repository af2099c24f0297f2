package port

import (
	"context"
	"time"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
)

// ResultRepository defines the persistence port for prediction records.
// Failures are reported as *model.StorageError.
type ResultRepository interface {
	// Save inserts record and returns it with id and created_at assigned.
	Save(ctx context.Context, record model.PredictionRecord) (model.PredictionRecord, error)

	// ListAll returns every record ordered by id.
	ListAll(ctx context.Context) ([]model.PredictionRecord, error)

	// ListByCity returns records whose city matches exactly.
	ListByCity(ctx context.Context, city string) ([]model.PredictionRecord, error)

	// ListByCategory returns records whose predicted category matches exactly.
	ListByCategory(ctx context.Context, category string) ([]model.PredictionRecord, error)

	// Statistics summarises the stored records.
	Statistics(ctx context.Context) (model.Statistics, error)

	// Ping is a trivial connectivity probe.
	Ping(ctx context.Context) error
}

// Classifier wraps the pre-trained premium model.
type Classifier interface {
	Classify(ctx context.Context, input model.ModelInput) (string, error)
}

// RecentPredictions is the bounded in-memory log of the latest predictions.
type RecentPredictions interface {
	Push(entry model.RecentPrediction)
	List() []model.RecentPrediction
}

// EventPublisher defines the port for publishing domain events.
type EventPublisher interface {
	Publish(ctx context.Context, evts ...events.Event) error
}

// PredictionMetrics records per-prediction telemetry.
type PredictionMetrics interface {
	RecordPrediction(ctx context.Context, category string, elapsed time.Duration)
	RecordFailure(ctx context.Context, kind string)
}
