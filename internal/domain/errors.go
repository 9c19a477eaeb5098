package domain

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a request field the engine refuses to work
// with. Always surfaced to the caller, never silently corrected.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

// NewInvalidInput creates an InvalidInputError for a field
func NewInvalidInput(field, reason string) *InvalidInputError {
	return &InvalidInputError{Field: field, Reason: reason}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// CatalogIntegrityError reports a name referenced by business rules that
// is missing from the loaded catalog. Fatal at startup: the configuration
// is broken and the process must not serve recommendations.
type CatalogIntegrityError struct {
	Kind string // "strategy", "asset", "benchmark"
	Name string
}

func (e *CatalogIntegrityError) Error() string {
	return fmt.Sprintf("catalog integrity: %s %q referenced by rules but not in catalog", e.Kind, e.Name)
}

// ErrMacroUnavailable signals the macro-data provider could not deliver a
// snapshot. Recoverable: callers fall back to baseline-only mode and
// report a warning on the Recommendation.
var ErrMacroUnavailable = errors.New("macro data unavailable")
