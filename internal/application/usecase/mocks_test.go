package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
)

// --- Mock implementations ---

// mockResultRepository keeps records in memory and assigns ids like a
// BIGSERIAL column would.
type mockResultRepository struct {
	mu      sync.Mutex
	records []model.PredictionRecord
	nextID  int64

	saveFunc       func(ctx context.Context, record model.PredictionRecord) (model.PredictionRecord, error)
	statisticsFunc func(ctx context.Context) (model.Statistics, error)
	listErr        error
}

func (m *mockResultRepository) Save(ctx context.Context, record model.PredictionRecord) (model.PredictionRecord, error) {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	record.ID = m.nextID
	record.CreatedAt = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(m.nextID) * time.Second)
	m.records = append(m.records, record)
	return record, nil
}

func (m *mockResultRepository) ListAll(_ context.Context) ([]model.PredictionRecord, error) {
	return m.filter(func(model.PredictionRecord) bool { return true })
}

func (m *mockResultRepository) ListByCity(_ context.Context, city string) ([]model.PredictionRecord, error) {
	return m.filter(func(r model.PredictionRecord) bool { return r.Input.City == city })
}

func (m *mockResultRepository) ListByCategory(_ context.Context, category string) ([]model.PredictionRecord, error) {
	return m.filter(func(r model.PredictionRecord) bool { return r.PredictedCategory == category })
}

func (m *mockResultRepository) Statistics(ctx context.Context) (model.Statistics, error) {
	if m.statisticsFunc != nil {
		return m.statisticsFunc(ctx)
	}
	return model.Statistics{}, nil
}

func (m *mockResultRepository) Ping(context.Context) error { return nil }

func (m *mockResultRepository) filter(keep func(model.PredictionRecord) bool) ([]model.PredictionRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.PredictionRecord
	for _, r := range m.records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockClassifier struct {
	label        string
	err          error
	classifyFunc func(ctx context.Context, input model.ModelInput) (string, error)
	calls        int
}

func (m *mockClassifier) Classify(ctx context.Context, input model.ModelInput) (string, error) {
	m.calls++
	if m.classifyFunc != nil {
		return m.classifyFunc(ctx, input)
	}
	return m.label, m.err
}

type mockEventPublisher struct {
	published   []events.Event
	publishFunc func(ctx context.Context, evts ...events.Event) error
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...events.Event) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.published = append(m.published, evts...)
	return nil
}

type mockMetrics struct {
	predictions []string
	failures    []string
}

func (m *mockMetrics) RecordPrediction(_ context.Context, category string, _ time.Duration) {
	m.predictions = append(m.predictions, category)
}

func (m *mockMetrics) RecordFailure(_ context.Context, kind string) {
	m.failures = append(m.failures, kind)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
