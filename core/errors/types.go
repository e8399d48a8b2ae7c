// ABOUTME: Custom error types for the core presentation helpers
// ABOUTME: Provides structured errors so handlers can map failures to HTTP responses

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ViewNotFoundError is returned when no template matches a view name
type ViewNotFoundError struct {
	View              string
	SearchedLocations []string
}

// Error implements the error interface. Every searched location is listed
// on its own line.
func (e *ViewNotFoundError) Error() string {
	lines := append([]string{fmt.Sprintf("unable to find view '%s'. The following locations were searched:", e.View)}, e.SearchedLocations...)
	return strings.Join(lines, "\n")
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsViewNotFound checks if an error is a ViewNotFoundError
func IsViewNotFound(err error) bool {
	var viewErr *ViewNotFoundError
	return errors.As(err, &viewErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
