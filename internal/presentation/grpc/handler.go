package grpc

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/vishxesh10/InsureMate-LIve/internal/application/dto"
	"github.com/vishxesh10/InsureMate-LIve/internal/application/usecase"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

// Compile-time assertion that PremiumServiceHandler implements PremiumServiceServer.
var _ PremiumServiceServer = (*PremiumServiceHandler)(nil)

// PremiumServiceHandler implements the gRPC PremiumServiceServer interface.
type PremiumServiceHandler struct {
	UnimplementedPremiumServiceServer
	predict     *usecase.PredictPremium
	listResults *usecase.ListResults
	statistics  *usecase.GetStatistics
	logger      *slog.Logger
}

// NewPremiumServiceHandler creates a new gRPC handler.
func NewPremiumServiceHandler(
	predict *usecase.PredictPremium,
	listResults *usecase.ListResults,
	statistics *usecase.GetStatistics,
	logger *slog.Logger,
) *PremiumServiceHandler {
	return &PremiumServiceHandler{
		predict:     predict,
		listResults: listResults,
		statistics:  statistics,
		logger:      logger,
	}
}

// Proto-aligned request/response message types.

// PredictRequest represents the proto PredictRequest message. Unset optional
// fields stay nil so that missing values are reported as such.
type PredictRequest struct {
	Age        *int32   `json:"age,omitempty"`
	Weight     *float64 `json:"weight,omitempty"`
	Height     *float64 `json:"height,omitempty"`
	IncomeLPA  *float64 `json:"income_lpa,omitempty"`
	Smoker     *bool    `json:"smoker,omitempty"`
	City       string   `json:"city"`
	Occupation string   `json:"occupation"`
}

// PredictResponse represents the proto PredictResponse message.
type PredictResponse struct {
	PredictedCategory string   `json:"predicted_category"`
	ResultID          int64    `json:"result_id"`
	ExplainText       string   `json:"explain_text,omitempty"`
	Warnings          []string `json:"warnings"`
	Message           string   `json:"message"`
}

// ListResultsRequest represents the proto ListResultsRequest message. Both
// filters are optional.
type ListResultsRequest struct {
	City     string `json:"city,omitempty"`
	Category string `json:"category,omitempty"`
}

// ListResultsResponse represents the proto ListResultsResponse message.
type ListResultsResponse struct {
	TotalResults int32       `json:"total_results"`
	Results      []ResultMsg `json:"results"`
}

// ResultMsg represents the proto PredictionResult message.
type ResultMsg struct {
	ID                int64   `json:"id"`
	Age               int32   `json:"age"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	IncomeLPA         float64 `json:"income_lpa"`
	Smoker            bool    `json:"smoker"`
	City              string  `json:"city"`
	Occupation        string  `json:"occupation"`
	BMI               float64 `json:"bmi"`
	LifestyleRisk     string  `json:"lifestyle_risk"`
	AgeGroup          string  `json:"age_group"`
	CityTier          int32   `json:"city_tier"`
	PredictedCategory string  `json:"predicted_category"`
	CreatedAt         string  `json:"created_at"`
}

// GetStatisticsRequest represents the proto GetStatisticsRequest message.
type GetStatisticsRequest struct{}

// GetStatisticsResponse represents the proto GetStatisticsResponse message.
type GetStatisticsResponse struct {
	TotalPredictions int64    `json:"total_predictions"`
	UniqueCategories int64    `json:"unique_categories"`
	AverageBMI       *float64 `json:"average_bmi"`
}

// Predict classifies and stores one prediction.
func (h *PremiumServiceHandler) Predict(ctx context.Context, req *PredictRequest) (*PredictResponse, error) {
	in := dto.PredictRequest{
		Weight:     req.Weight,
		Height:     req.Height,
		IncomeLPA:  req.IncomeLPA,
		Smoker:     req.Smoker,
		City:       req.City,
		Occupation: req.Occupation,
	}
	if req.Age != nil {
		age := int(*req.Age)
		in.Age = &age
	}

	resp, err := h.predict.Execute(ctx, in)
	if err != nil {
		return nil, h.toStatus(err)
	}

	return &PredictResponse{
		PredictedCategory: resp.PredictedCategory,
		ResultID:          resp.ResultID,
		ExplainText:       resp.ExplainText,
		Warnings:          resp.Warnings,
		Message:           resp.Message,
	}, nil
}

// ListResults returns stored predictions, optionally filtered.
func (h *PremiumServiceHandler) ListResults(ctx context.Context, req *ListResultsRequest) (*ListResultsResponse, error) {
	resp, err := h.listResults.Execute(ctx, dto.ResultFilter{City: req.City, Category: req.Category})
	if err != nil {
		return nil, h.toStatus(err)
	}

	results := make([]ResultMsg, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, toResultMsg(r))
	}
	return &ListResultsResponse{
		TotalResults: int32(resp.TotalResults),
		Results:      results,
	}, nil
}

// GetStatistics summarises stored predictions.
func (h *PremiumServiceHandler) GetStatistics(ctx context.Context, _ *GetStatisticsRequest) (*GetStatisticsResponse, error) {
	resp, err := h.statistics.Execute(ctx)
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &GetStatisticsResponse{
		TotalPredictions: resp.TotalPredictions,
		UniqueCategories: resp.UniqueCategories,
		AverageBMI:       resp.AverageBMI,
	}, nil
}

func toResultMsg(r dto.ResultResponse) ResultMsg {
	return ResultMsg{
		ID:                r.ID,
		Age:               int32(r.Age),
		Weight:            r.Weight,
		Height:            r.Height,
		IncomeLPA:         r.IncomeLPA,
		Smoker:            r.Smoker,
		City:              r.City,
		Occupation:        r.Occupation,
		BMI:               r.BMI,
		LifestyleRisk:     r.LifestyleRisk,
		AgeGroup:          r.AgeGroup,
		CityTier:          int32(r.CityTier),
		PredictedCategory: r.PredictedCategory,
		CreatedAt:         r.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// toStatus maps domain error kinds onto gRPC codes.
func (h *PremiumServiceHandler) toStatus(err error) error {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		parts := make([]string, len(validationErr.Violations))
		for i, v := range validationErr.Violations {
			parts[i] = v.Field + ": " + v.Message
		}
		return status.Error(codes.InvalidArgument, "validation failed: "+strings.Join(parts, "; "))
	}
	if errors.Is(err, context.Canceled) {
		return status.Error(codes.Canceled, "request canceled")
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return status.Error(codes.DeadlineExceeded, "deadline exceeded")
	}

	var modelErr *model.ModelError
	if errors.As(err, &modelErr) {
		h.logger.Error("prediction failed", "error", err)
		return status.Error(codes.Internal, "prediction failed")
	}
	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		h.logger.Error("storage failure", "op", storageErr.Op, "error", err)
		return status.Error(codes.Internal, "storage unavailable")
	}

	h.logger.Error("unexpected error", "error", err)
	return status.Error(codes.Internal, "internal error")
}
