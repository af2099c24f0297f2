package dto

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/service"
	"github.com/vishxesh10/InsureMate-LIve/internal/domain/valueobject"
)

// RequestValidator checks PredictRequest payloads and converts them into
// domain input.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports fields by their JSON
// names.
func NewRequestValidator() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &RequestValidator{validate: v}
}

// ToUserInput validates req. Every violated field is reported in a single
// *model.ValidationError.
func (rv *RequestValidator) ToUserInput(req PredictRequest) (model.UserInput, error) {
	if err := rv.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return model.UserInput{}, fmt.Errorf("failed to validate request: %w", err)
		}
		violations := make([]model.FieldViolation, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			violations = append(violations, model.FieldViolation{
				Field:   fe.Field(),
				Message: violationMessage(fe),
			})
		}
		return model.UserInput{}, &model.ValidationError{Violations: violations}
	}

	occupation, err := valueobject.OccupationFromString(req.Occupation)
	if err != nil {
		return model.UserInput{}, &model.ValidationError{Violations: []model.FieldViolation{
			{Field: "occupation", Message: err.Error()},
		}}
	}

	// Each value can be positive on its own and still overflow the BMI.
	if bmi := service.BMI(*req.Weight, *req.Height); math.IsInf(bmi, 0) || math.IsNaN(bmi) {
		return model.UserInput{}, &model.ValidationError{Violations: []model.FieldViolation{
			{Field: "height", Message: "is too small for the given weight"},
		}}
	}

	return model.UserInput{
		Age:        *req.Age,
		Weight:     *req.Weight,
		Height:     *req.Height,
		IncomeLPA:  *req.IncomeLPA,
		Smoker:     *req.Smoker,
		City:       req.City,
		Occupation: occupation,
	}, nil
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gte":
		return "must be at least " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return "failed " + fe.Tag() + " check"
	}
}
