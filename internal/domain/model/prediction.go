package model

import (
	"fmt"
	"time"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

// UserInput is the validated applicant data for a single prediction.
type UserInput struct {
	Age        int
	Weight     float64 // kilograms
	Height     float64 // centimetres
	IncomeLPA  float64 // lakhs per annum
	Smoker     bool
	City       string
	Occupation valueobject.Occupation
}

// DerivedFeatures are computed from a UserInput and never stored on their own.
type DerivedFeatures struct {
	BMI           float64
	LifestyleRisk valueobject.LifestyleRisk
	AgeGroup      valueobject.AgeGroup
	CityTier      valueobject.CityTier
}

// ModelInput is the feature row handed to the classifier.
type ModelInput struct {
	BMI           float64
	LifestyleRisk valueobject.LifestyleRisk
	AgeGroup      valueobject.AgeGroup
	CityTier      valueobject.CityTier
	Occupation    valueobject.Occupation
	IncomeLPA     float64
}

// NewModelInput assembles the classifier row.
func NewModelInput(input UserInput, features DerivedFeatures) ModelInput {
	return ModelInput{
		BMI:           features.BMI,
		LifestyleRisk: features.LifestyleRisk,
		AgeGroup:      features.AgeGroup,
		CityTier:      features.CityTier,
		Occupation:    input.Occupation,
		IncomeLPA:     input.IncomeLPA,
	}
}

// PredictionRecord is one persisted prediction. ID and CreatedAt are zero
// until the store assigns them.
type PredictionRecord struct {
	ID                int64
	Input             UserInput
	Features          DerivedFeatures
	PredictedCategory string
	CreatedAt         time.Time
}

// NewPredictionRecord builds an unsaved record.
func NewPredictionRecord(input UserInput, features DerivedFeatures, category string) (PredictionRecord, error) {
	if category == "" {
		return PredictionRecord{}, fmt.Errorf("predicted category is required")
	}
	return PredictionRecord{
		Input:             input,
		Features:          features,
		PredictedCategory: category,
	}, nil
}

// IsPersisted reports whether the store has assigned an id.
func (r PredictionRecord) IsPersisted() bool {
	return r.ID > 0
}

// RecentPrediction is an entry of the in-memory recent buffer.
type RecentPrediction struct {
	ResultID          int64
	PredictedCategory string
	Timestamp         time.Time
	ExplainText       string
}

// Statistics summarises the stored predictions. AverageBMI is nil when
// nothing has been stored.
type Statistics struct {
	TotalPredictions int64
	UniqueCategories int64
	AverageBMI       *float64
}
