package service

import (
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

// RetiredUnder40Warning is raised for retirees younger than 40.
const RetiredUnder40Warning = "Occupation is 'retired' but age is under 40 - verify input."

// PlausibilityRule inspects a request and returns a warning when the input
// combination looks unrealistic.
type PlausibilityRule func(input model.UserInput, features model.DerivedFeatures) (warning string, triggered bool)

// PlausibilityChecker runs an ordered list of independent rules. Warnings are
// advisory and never change the prediction.
type PlausibilityChecker struct {
	rules []PlausibilityRule
}

// NewPlausibilityChecker creates a checker. With no rules it uses
// DefaultPlausibilityRules.
func NewPlausibilityChecker(rules ...PlausibilityRule) *PlausibilityChecker {
	if len(rules) == 0 {
		rules = DefaultPlausibilityRules()
	}
	return &PlausibilityChecker{rules: rules}
}

// DefaultPlausibilityRules returns the production rule set.
func DefaultPlausibilityRules() []PlausibilityRule {
	return []PlausibilityRule{
		RetiredUnder40,
	}
}

// Check returns the triggered warnings in rule order. The result is never nil.
func (c *PlausibilityChecker) Check(input model.UserInput, features model.DerivedFeatures) []string {
	warnings := make([]string, 0, len(c.rules))
	for _, rule := range c.rules {
		if w, ok := rule(input, features); ok {
			warnings = append(warnings, w)
		}
	}
	return warnings
}

// RetiredUnder40 flags retirees younger than 40.
func RetiredUnder40(input model.UserInput, _ model.DerivedFeatures) (string, bool) {
	if input.Occupation == valueobject.OccupationRetired && input.Age < 40 {
		return RetiredUnder40Warning, true
	}
	return "", false
}
