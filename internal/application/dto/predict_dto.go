package dto

import (
	"time"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

// PredictRequest is the client payload for a premium prediction. Pointer
// fields let validation tell a missing value apart from a zero value.
type PredictRequest struct {
	Age        *int     `json:"age" validate:"required,gte=18,lt=120"`
	Weight     *float64 `json:"weight" validate:"required,gt=0"`
	Height     *float64 `json:"height" validate:"required,gt=0"`
	IncomeLPA  *float64 `json:"income_lpa" validate:"required,gt=0"`
	Smoker     *bool    `json:"smoker" validate:"required"`
	City       string   `json:"city" validate:"required"`
	Occupation string   `json:"occupation" validate:"required,oneof=retired freelancer student government_job business_owner unemployed private_job"`
}

// PredictResponse is returned for a stored prediction.
type PredictResponse struct {
	PredictedCategory string   `json:"predicted_category"`
	ResultID          int64    `json:"result_id"`
	ExplainText       string   `json:"explain_text,omitempty"`
	Warnings          []string `json:"warnings"`
	Message           string   `json:"message"`
}

// PredictionSavedMessage is the fixed confirmation text of PredictResponse.
const PredictionSavedMessage = "Prediction saved successfully"

// ResultResponse is the wire form of a stored PredictionRecord.
type ResultResponse struct {
	ID                int64     `json:"id"`
	Age               int       `json:"age"`
	Weight            float64   `json:"weight"`
	Height            float64   `json:"height"`
	IncomeLPA         float64   `json:"income_lpa"`
	Smoker            bool      `json:"smoker"`
	City              string    `json:"city"`
	Occupation        string    `json:"occupation"`
	BMI               float64   `json:"bmi"`
	LifestyleRisk     string    `json:"lifestyle_risk"`
	AgeGroup          string    `json:"age_group"`
	CityTier          int       `json:"city_tier"`
	PredictedCategory string    `json:"predicted_category"`
	CreatedAt         time.Time `json:"created_at"`
}

// FromRecord converts a domain record to its response form.
func FromRecord(r model.PredictionRecord) ResultResponse {
	return ResultResponse{
		ID:                r.ID,
		Age:               r.Input.Age,
		Weight:            r.Input.Weight,
		Height:            r.Input.Height,
		IncomeLPA:         r.Input.IncomeLPA,
		Smoker:            r.Input.Smoker,
		City:              r.Input.City,
		Occupation:        r.Input.Occupation.String(),
		BMI:               r.Features.BMI,
		LifestyleRisk:     r.Features.LifestyleRisk.String(),
		AgeGroup:          r.Features.AgeGroup.String(),
		CityTier:          r.Features.CityTier.Int(),
		PredictedCategory: r.PredictedCategory,
		CreatedAt:         r.CreatedAt.UTC(),
	}
}

// FromRecords converts a slice of records; the result is never nil.
func FromRecords(records []model.PredictionRecord) []ResultResponse {
	out := make([]ResultResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromRecord(r))
	}
	return out
}

// RecentPredictionResponse is one entry of the recent log.
type RecentPredictionResponse struct {
	ResultID          int64     `json:"result_id"`
	PredictedCategory string    `json:"predicted_category"`
	Timestamp         time.Time `json:"timestamp"`
	ExplainText       string    `json:"explain_text,omitempty"`
}

// FromRecent converts recent entries, preserving order.
func FromRecent(entries []model.RecentPrediction) []RecentPredictionResponse {
	out := make([]RecentPredictionResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, RecentPredictionResponse{
			ResultID:          e.ResultID,
			PredictedCategory: e.PredictedCategory,
			Timestamp:         e.Timestamp.UTC(),
			ExplainText:       e.ExplainText,
		})
	}
	return out
}

// StatisticsResponse summarises the store. AverageBMI is null when empty.
type StatisticsResponse struct {
	TotalPredictions int64    `json:"total_predictions"`
	UniqueCategories int64    `json:"unique_categories"`
	AverageBMI       *float64 `json:"average_bmi"`
}

// FromStatistics converts domain statistics.
func FromStatistics(s model.Statistics) StatisticsResponse {
	return StatisticsResponse{
		TotalPredictions: s.TotalPredictions,
		UniqueCategories: s.UniqueCategories,
		AverageBMI:       s.AverageBMI,
	}
}
