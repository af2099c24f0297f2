package service

import (
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

// FeatureDeriver computes the model features from validated user input.
// It holds no state and is safe for concurrent use.
type FeatureDeriver struct{}

// NewFeatureDeriver creates a new FeatureDeriver.
func NewFeatureDeriver() *FeatureDeriver {
	return &FeatureDeriver{}
}

// Derive maps input to its derived features. It assumes height > 0.
func (d *FeatureDeriver) Derive(input model.UserInput) model.DerivedFeatures {
	bmi := BMI(input.Weight, input.Height)
	return model.DerivedFeatures{
		BMI:           bmi,
		LifestyleRisk: valueobject.LifestyleRiskFor(input.Smoker, bmi),
		AgeGroup:      valueobject.AgeGroupFor(input.Age),
		CityTier:      valueobject.CityTierOf(input.City),
	}
}

// BMI returns weight (kg) over height (cm, converted to metres) squared.
func BMI(weightKg, heightCm float64) float64 {
	heightM := heightCm / 100
	return weightKg / (heightM * heightM)
}
