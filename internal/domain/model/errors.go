package model

import (
	"fmt"
	"strings"
)

// FieldViolation describes one rejected input field.
type FieldViolation struct {
	Field   string
	Message string
}

// ValidationError is returned when a request fails input validation.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		parts[i] = v.Field + ": " + v.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ModelError is returned when the classifier cannot produce a label.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("classification failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error {
	return e.Err
}

// StorageError is returned when the result store fails. Op names the store
// operation, e.g. "save" or "list_by_city".
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
