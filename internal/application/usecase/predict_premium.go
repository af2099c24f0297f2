package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/event"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/port"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/service"
	"github.com/vishxesh10/InsureMate-LIve/pkg/events"
)

const tracerName = "github.com/vishxesh10/InsureMate-LIve/internal/application/usecase"

// Failure kinds passed to port.PredictionMetrics.RecordFailure.
const (
	FailureValidation = "validation"
	FailureModel      = "model"
	FailureStorage    = "storage"
)

// DefaultPublishTimeout bounds how long Execute waits on the event publisher.
const DefaultPublishTimeout = 2 * time.Second

// PredictPremiumDeps are the collaborators of PredictPremium. Publisher and
// Metrics may be nil. A zero PublishTimeout means DefaultPublishTimeout.
type PredictPremiumDeps struct {
	Repo       port.ResultRepository
	Classifier port.Classifier
	Recent     port.RecentPredictions
	Publisher  port.EventPublisher
	Metrics    port.PredictionMetrics
	Deriver    *service.FeatureDeriver
	Checker    *service.PlausibilityChecker
	Validator  *dto.RequestValidator
	Logger     *slog.Logger

	PublishTimeout time.Duration
}

// PredictPremium validates a request, classifies it, stores the result and
// reports the outcome.
type PredictPremium struct {
	repo       port.ResultRepository
	classifier port.Classifier
	recent     port.RecentPredictions
	publisher  port.EventPublisher
	metrics    port.PredictionMetrics
	deriver    *service.FeatureDeriver
	checker    *service.PlausibilityChecker
	validator  *dto.RequestValidator
	logger     *slog.Logger
	tracer     trace.Tracer

	publishTimeout time.Duration
}

// NewPredictPremium creates a new PredictPremium use case.
func NewPredictPremium(deps PredictPremiumDeps) *PredictPremium {
	uc := &PredictPremium{
		repo:       deps.Repo,
		classifier: deps.Classifier,
		recent:     deps.Recent,
		publisher:  deps.Publisher,
		metrics:    deps.Metrics,
		deriver:    deps.Deriver,
		checker:    deps.Checker,
		validator:  deps.Validator,
		logger:     deps.Logger,
		tracer:     otel.Tracer(tracerName),

		publishTimeout: deps.PublishTimeout,
	}
	if uc.publishTimeout <= 0 {
		uc.publishTimeout = DefaultPublishTimeout
	}
	if uc.deriver == nil {
		uc.deriver = service.NewFeatureDeriver()
	}
	if uc.checker == nil {
		uc.checker = service.NewPlausibilityChecker()
	}
	if uc.validator == nil {
		uc.validator = dto.NewRequestValidator()
	}
	if uc.logger == nil {
		uc.logger = slog.Default()
	}
	return uc
}

// Execute runs one prediction. It returns *model.ValidationError,
// *model.ModelError or *model.StorageError (possibly wrapped) on failure.
// Nothing is returned to the caller unless the record has been stored.
func (uc *PredictPremium) Execute(ctx context.Context, req dto.PredictRequest) (dto.PredictResponse, error) {
	ctx, span := uc.tracer.Start(ctx, "PredictPremium")
	defer span.End()
	start := time.Now()

	// 1. Validate.
	input, err := uc.validator.ToUserInput(req)
	if err != nil {
		return dto.PredictResponse{}, uc.fail(ctx, span, FailureValidation, err)
	}

	// 2. Derive features.
	features := uc.deriver.Derive(input)
	span.SetAttributes(
		attribute.Int("premium.city_tier", features.CityTier.Int()),
		attribute.String("premium.lifestyle_risk", features.LifestyleRisk.String()),
		attribute.String("premium.age_group", features.AgeGroup.String()),
	)

	// 3. Classify.
	label, err := uc.classifier.Classify(ctx, model.NewModelInput(input, features))
	if err == nil && label == "" {
		err = errors.New("classifier returned an empty label")
	}
	if err != nil {
		var me *model.ModelError
		if !errors.As(err, &me) {
			err = &model.ModelError{Err: err}
		}
		return dto.PredictResponse{}, uc.fail(ctx, span, FailureModel, fmt.Errorf("failed to classify input: %w", err))
	}

	// Explanation and warnings depend only on the input and label.
	explainText, _ := service.Explain(label, input, features)
	warnings := uc.checker.Check(input, features)

	// 4. Persist.
	record, err := model.NewPredictionRecord(input, features, label)
	if err != nil {
		return dto.PredictResponse{}, uc.fail(ctx, span, FailureModel, &model.ModelError{Err: err})
	}
	saved, err := uc.repo.Save(ctx, record)
	if err != nil {
		var se *model.StorageError
		if !errors.As(err, &se) {
			err = &model.StorageError{Op: "save", Err: err}
		}
		return dto.PredictResponse{}, uc.fail(ctx, span, FailureStorage, fmt.Errorf("failed to save prediction: %w", err))
	}
	span.SetAttributes(
		attribute.Int64("premium.result_id", saved.ID),
		attribute.String("premium.category", label),
	)

	// 5. Remember it in the recent log.
	uc.recent.Push(model.RecentPrediction{
		ResultID:          saved.ID,
		PredictedCategory: label,
		Timestamp:         saved.CreatedAt,
		ExplainText:       explainText,
	})

	// 6. Publish events. The record is already durable, so a broker outage
	// only costs the notification and never holds the response past
	// publishTimeout.
	uc.publish(ctx, saved, warnings)

	if uc.metrics != nil {
		uc.metrics.RecordPrediction(ctx, label, time.Since(start))
	}

	uc.logger.InfoContext(ctx, "prediction stored",
		slog.Int64("result_id", saved.ID),
		slog.String("predicted_category", label),
		slog.Int("warnings", len(warnings)),
	)

	return dto.PredictResponse{
		PredictedCategory: label,
		ResultID:          saved.ID,
		ExplainText:       explainText,
		Warnings:          warnings,
		Message:           dto.PredictionSavedMessage,
	}, nil
}

func (uc *PredictPremium) publish(ctx context.Context, saved model.PredictionRecord, warnings []string) {
	if uc.publisher == nil {
		return
	}

	var collector events.Collector
	collector.Record(event.PredictionCompleted{
		ResultID:          saved.ID,
		PredictedCategory: saved.PredictedCategory,
		CityTier:          saved.Features.CityTier.Int(),
		LifestyleRisk:     saved.Features.LifestyleRisk.String(),
		AgeGroup:          saved.Features.AgeGroup.String(),
		Warnings:          warnings,
		CompletedAt:       saved.CreatedAt,
	})
	if len(warnings) > 0 {
		collector.Record(event.PredictionFlagged{
			ResultID:  saved.ID,
			Warnings:  warnings,
			FlaggedAt: saved.CreatedAt,
		})
	}

	// Cancelling the request does not abort the publish, the deadline does.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.publishTimeout)
	defer cancel()

	evts := collector.Drain()
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := uc.publisher.Publish(pubCtx, evts...); err != nil {
			uc.logger.WarnContext(pubCtx, "failed to publish prediction events",
				slog.Int64("result_id", saved.ID),
				"error", err,
			)
		}
	}()

	select {
	case <-done:
	case <-pubCtx.Done():
		uc.logger.WarnContext(ctx, "event publish timed out",
			slog.Int64("result_id", saved.ID),
			slog.Duration("timeout", uc.publishTimeout),
		)
	}
}

func (uc *PredictPremium) fail(ctx context.Context, span trace.Span, kind string, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, kind)
	if uc.metrics != nil {
		uc.metrics.RecordFailure(ctx, kind)
	}
	if kind != FailureValidation {
		uc.logger.ErrorContext(ctx, "prediction failed", slog.String("kind", kind), "error", err)
	}
	return err
}
