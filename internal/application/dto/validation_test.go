package dto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

func ptr[T any](v T) *T { return &v }

func validRequest() PredictRequest {
	return PredictRequest{
		Age:        ptr(30),
		Weight:     ptr(70.0),
		Height:     ptr(175.0),
		IncomeLPA:  ptr(12.5),
		Smoker:     ptr(false),
		City:       "Mumbai",
		Occupation: "private_job",
	}
}

func violationFields(t *testing.T, err error) map[string]string {
	t.Helper()
	var ve *model.ValidationError
	require.True(t, errors.As(err, &ve), "expected *model.ValidationError, got %v", err)
	fields := make(map[string]string, len(ve.Violations))
	for _, v := range ve.Violations {
		fields[v.Field] = v.Message
	}
	return fields
}

func TestRequestValidator_Valid(t *testing.T) {
	rv := NewRequestValidator()

	in, err := rv.ToUserInput(validRequest())
	require.NoError(t, err)
	assert.Equal(t, 30, in.Age)
	assert.Equal(t, 175.0, in.Height)
	assert.False(t, in.Smoker)
	assert.Equal(t, valueobject.OccupationPrivateJob, in.Occupation)
	assert.Equal(t, "Mumbai", in.City)
}

func TestRequestValidator_Bounds(t *testing.T) {
	rv := NewRequestValidator()

	tests := []struct {
		name    string
		mutate  func(*PredictRequest)
		field   string
		message string
	}{
		{"age below 18", func(r *PredictRequest) { r.Age = ptr(17) }, "age", "must be at least 18"},
		{"age 120", func(r *PredictRequest) { r.Age = ptr(120) }, "age", "must be less than 120"},
		{"zero weight", func(r *PredictRequest) { r.Weight = ptr(0.0) }, "weight", "must be greater than 0"},
		{"negative height", func(r *PredictRequest) { r.Height = ptr(-1.0) }, "height", "must be greater than 0"},
		{"zero income", func(r *PredictRequest) { r.IncomeLPA = ptr(0.0) }, "income_lpa", "must be greater than 0"},
		{"missing smoker", func(r *PredictRequest) { r.Smoker = nil }, "smoker", "is required"},
		{"missing age", func(r *PredictRequest) { r.Age = nil }, "age", "is required"},
		{"empty city", func(r *PredictRequest) { r.City = "" }, "city", "is required"},
		{"unknown occupation", func(r *PredictRequest) { r.Occupation = "astronaut" }, "occupation",
			"must be one of: retired, freelancer, student, government_job, business_owner, unemployed, private_job"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			_, err := rv.ToUserInput(req)
			fields := violationFields(t, err)
			assert.Equal(t, tt.message, fields[tt.field])
		})
	}
}

func TestRequestValidator_BoundaryAges(t *testing.T) {
	rv := NewRequestValidator()
	for _, age := range []int{18, 119} {
		req := validRequest()
		req.Age = ptr(age)
		_, err := rv.ToUserInput(req)
		assert.NoError(t, err, "age %d", age)
	}
}

func TestRequestValidator_ReportsEveryField(t *testing.T) {
	_, err := NewRequestValidator().ToUserInput(PredictRequest{})
	fields := violationFields(t, err)
	assert.Len(t, fields, 7)
}

func TestOccupationTagMatchesDomain(t *testing.T) {
	rv := NewRequestValidator()
	for _, occ := range valueobject.OccupationValues() {
		req := validRequest()
		req.Occupation = occ
		_, err := rv.ToUserInput(req)
		assert.NoError(t, err, occ)
	}
}

func TestRequestValidator_RejectsOverflowingBMI(t *testing.T) {
	rv := NewRequestValidator()
	req := validRequest()
	req.Weight = ptr(1e308)
	req.Height = ptr(1e-200)

	_, err := rv.ToUserInput(req)
	fields := violationFields(t, err)
	assert.Equal(t, "is too small for the given weight", fields["height"])

	req = validRequest()
	req.Weight = ptr(1e308)
	_, err = rv.ToUserInput(req)
	require.NoError(t, err)
}
