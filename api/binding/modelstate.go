// ABOUTME: Model state collects field validation errors while binding a request
// ABOUTME: Flattens them to one message per field for views and JSON responses

package binding

import (
	"errors"

	coreerrors "realtorist-web/core/errors"
)

// ModelState maps field names to their error messages
type ModelState struct {
	errors map[string][]string
}

// NewModelState creates an empty, valid model state
func NewModelState() *ModelState {
	return &ModelState{errors: make(map[string][]string)}
}

// AddError records message against field
func (m *ModelState) AddError(field, message string) {
	m.errors[field] = append(m.errors[field], message)
}

// AddValidationError records err against its field when it is a
// ValidationError, or against the empty model-level field otherwise
func (m *ModelState) AddValidationError(err error) {
	var validationErr *coreerrors.ValidationError
	if errors.As(err, &validationErr) {
		m.AddError(validationErr.Field, validationErr.Message)
		return
	}
	m.AddError("", err.Error())
}

// IsValid reports whether no errors were recorded
func (m *ModelState) IsValid() bool {
	return len(m.errors) == 0
}

// Errors returns every message recorded for field
func (m *ModelState) Errors(field string) []string {
	return m.errors[field]
}

// ValidationErrors returns the first error message of every field
func (m *ModelState) ValidationErrors() map[string]string {
	out := make(map[string]string, len(m.errors))
	for field, messages := range m.errors {
		out[field] = messages[0]
	}
	return out
}
