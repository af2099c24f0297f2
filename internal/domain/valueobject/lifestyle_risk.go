package valueobject

import "fmt"

// LifestyleRisk buckets smoking status combined with BMI.
type LifestyleRisk struct {
	value string
}

var (
	LifestyleRiskLow    = LifestyleRisk{value: "low"}
	LifestyleRiskMedium = LifestyleRisk{value: "medium"}
	LifestyleRiskHigh   = LifestyleRisk{value: "high"}
)

// LifestyleRiskFor derives the bucket. Both thresholds are strict, so a
// smoker with a BMI of exactly 27 is still low risk.
func LifestyleRiskFor(smoker bool, bmi float64) LifestyleRisk {
	switch {
	case smoker && bmi > 30:
		return LifestyleRiskHigh
	case smoker && bmi > 27:
		return LifestyleRiskMedium
	default:
		return LifestyleRiskLow
	}
}

// LifestyleRiskFromString reconstructs a LifestyleRisk from storage.
func LifestyleRiskFromString(s string) (LifestyleRisk, error) {
	switch s {
	case "low":
		return LifestyleRiskLow, nil
	case "medium":
		return LifestyleRiskMedium, nil
	case "high":
		return LifestyleRiskHigh, nil
	default:
		return LifestyleRisk{}, fmt.Errorf("invalid lifestyle risk: %q", s)
	}
}

// String returns the string representation.
func (r LifestyleRisk) String() string {
	return r.value
}
