package service

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

// Explain builds the human readable rationale shown next to a prediction,
// e.g. "Medium premium because BMI is normal, non-smoker, age is under 40".
// ok is false when no reason applies.
func Explain(label string, input model.UserInput, features model.DerivedFeatures) (text string, ok bool) {
	reasons := explanationReasons(input, features)
	if len(reasons) == 0 {
		return "", false
	}
	return capitalize(label) + " premium because " + strings.Join(reasons, ", "), true
}

func explanationReasons(input model.UserInput, features model.DerivedFeatures) []string {
	reasons := make([]string, 0, 3)

	switch bmi := features.BMI; {
	case bmi >= 18.5 && bmi < 25:
		reasons = append(reasons, "BMI is normal")
	case bmi >= 30:
		reasons = append(reasons, "high BMI")
	case bmi >= 25:
		reasons = append(reasons, "slightly elevated BMI")
	}

	if input.Smoker {
		reasons = append(reasons, "smoker")
	} else {
		reasons = append(reasons, "non-smoker")
	}

	switch {
	case input.Age < 40:
		reasons = append(reasons, "age is under 40")
	case input.Age < 60:
		reasons = append(reasons, "age is between 40 and 59")
	default:
		reasons = append(reasons, "age is 60 or above")
	}

	return reasons
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
