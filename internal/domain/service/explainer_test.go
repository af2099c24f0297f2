package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		age    int
		smoker bool
		bmi    float64
		want   string
	}{
		{
			name:  "normal bmi young non-smoker",
			label: "medium", age: 30, bmi: 22.9,
			want: "Medium premium because BMI is normal, non-smoker, age is under 40",
		},
		{
			name:  "high bmi smoker senior",
			label: "HIGH", age: 65, smoker: true, bmi: 31,
			want: "High premium because high BMI, smoker, age is 60 or above",
		},
		{
			name:  "elevated bmi middle age",
			label: "low", age: 45, bmi: 25,
			want: "Low premium because slightly elevated BMI, non-smoker, age is between 40 and 59",
		},
		{
			name:  "underweight has no bmi reason",
			label: "low", age: 40, bmi: 17,
			want: "Low premium because non-smoker, age is between 40 and 59",
		},
		{
			name:  "bmi 30 counts as high",
			label: "high", age: 59, smoker: true, bmi: 30,
			want: "High premium because high BMI, smoker, age is between 40 and 59",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := model.UserInput{Age: tt.age, Smoker: tt.smoker}
			text, ok := Explain(tt.label, in, model.DerivedFeatures{BMI: tt.bmi})
			assert.True(t, ok)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Medium", capitalize("mEDIUM"))
	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Élite", capitalize("éLITE"))
}

func TestPlausibilityChecker(t *testing.T) {
	checker := NewPlausibilityChecker()

	t.Run("retired at 30 warns", func(t *testing.T) {
		in := model.UserInput{Age: 30, Occupation: valueobject.OccupationRetired}
		assert.Equal(t, []string{RetiredUnder40Warning}, checker.Check(in, model.DerivedFeatures{}))
	})

	t.Run("retired at 65 is fine", func(t *testing.T) {
		in := model.UserInput{Age: 65, Occupation: valueobject.OccupationRetired}
		got := checker.Check(in, model.DerivedFeatures{})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("student at 30 is fine", func(t *testing.T) {
		in := model.UserInput{Age: 30, Occupation: valueobject.OccupationStudent}
		assert.Empty(t, checker.Check(in, model.DerivedFeatures{}))
	})

	t.Run("custom rules run in order", func(t *testing.T) {
		always := func(msg string) PlausibilityRule {
			return func(model.UserInput, model.DerivedFeatures) (string, bool) { return msg, true }
		}
		never := func(model.UserInput, model.DerivedFeatures) (string, bool) { return "unused", false }

		c := NewPlausibilityChecker(always("first"), never, always("second"))
		assert.Equal(t, []string{"first", "second"}, c.Check(model.UserInput{}, model.DerivedFeatures{}))
	})
}
