// Package server provides the HTTP REST API for the job tracker.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jordan/job-tracker/internal/document"
	"github.com/jordan/job-tracker/internal/extract"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
// Bad input (empty content, unsupported upload types, failed validation)
// maps to 400; everything else, including missing credentials and upstream
// provider failures, stays 500.
func HTTPStatus(err error) int {
	var (
		validationErr *ErrValidation
		emptyErr      *document.EmptyContentError
		formatErr     *document.UnsupportedFormatError
		parseErr      *extract.ParseError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &emptyErr),
		errors.As(err, &formatErr):
		return http.StatusBadRequest
	case errors.As(err, &parseErr):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
