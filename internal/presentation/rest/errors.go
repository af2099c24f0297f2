package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"

	"github.com/vishxesh10/InsureMate-LIve/internal/domain/model"
)

type errorResponse struct {
	Error   string        `json:"error"`
	Details []fieldDetail `json:"details,omitempty"`
}

type fieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// typeMismatch reports a JSON value of the wrong type as a field violation.
func typeMismatch(err *json.UnmarshalTypeError) *model.ValidationError {
	var msg string
	switch err.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		msg = "must be an integer"
	case reflect.Float32, reflect.Float64:
		msg = "must be a number"
	case reflect.String:
		msg = "must be a string"
	case reflect.Bool:
		msg = "must be a boolean"
	default:
		msg = "must be a " + err.Type.String()
	}
	return &model.ValidationError{Violations: []model.FieldViolation{{Field: err.Field, Message: msg}}}
}

// writeError maps domain error kinds to status codes. Internal failures are
// logged here and reported without their cause.
func (h *PredictionHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var validationErr *model.ValidationError
	if errors.As(err, &validationErr) {
		details := make([]fieldDetail, len(validationErr.Violations))
		for i, v := range validationErr.Violations {
			details[i] = fieldDetail{Field: v.Field, Message: v.Message}
		}
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "validation failed", Details: details})
		return
	}

	var modelErr *model.ModelError
	if errors.As(err, &modelErr) {
		h.logger.ErrorContext(r.Context(), "prediction failed", "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "prediction failed"})
		return
	}

	var storageErr *model.StorageError
	if errors.As(err, &storageErr) {
		h.logger.ErrorContext(r.Context(), "storage failure", "op", storageErr.Op, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "storage unavailable"})
		return
	}

	h.logger.ErrorContext(r.Context(), "unexpected error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
