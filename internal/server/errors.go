// Package server provides the HTTP REST API for the resume screener.
package server

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// ErrMissingField indicates a required request field was absent
type ErrMissingField struct {
	Field string
}

func (e *ErrMissingField) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// ErrInvalidField indicates a request field that was present but unusable
type ErrInvalidField struct {
	Field  string
	Reason string
}

func (e *ErrInvalidField) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ErrUnsupportedFormat indicates an upload with a disallowed file extension
type ErrUnsupportedFormat struct {
	Extension string
}

func (e *ErrUnsupportedFormat) Error() string {
	return fmt.Sprintf("unsupported file format: %s (allowed: .pdf, .txt)", e.Extension)
}

// ErrScreeningNotFound indicates the requested screening does not exist
type ErrScreeningNotFound struct {
	ID uuid.UUID
}

func (e *ErrScreeningNotFound) Error() string {
	return fmt.Sprintf("screening not found: %s", e.ID)
}

// ErrPersistenceDisabled indicates a history request without a configured database
type ErrPersistenceDisabled struct{}

func (e *ErrPersistenceDisabled) Error() string {
	return "screening history requires a configured database"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrMissingField, *ErrInvalidField, *ErrUnsupportedFormat:
		return http.StatusBadRequest
	case *ErrScreeningNotFound:
		return http.StatusNotFound
	case *ErrPersistenceDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
