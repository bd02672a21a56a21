package validation

import (
	"fmt"
	"strings"
)

// Violation codes. Handlers and clients switch on these, never on the
// human-readable message.
const (
	CodeRequired      = "required"
	CodeTooLong       = "too_long"
	CodeTooMany       = "too_many"
	CodeInvalidFormat = "invalid_format"
	CodeInvalidEnum   = "invalid_enum"
)

// Violation is a single failed rule, addressed by a JSON path such as
// "data.experience[4].company".
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Errors aggregates every violation found in one validation pass. It is
// returned as an error so callers can pick it out with errors.As.
type Errors struct {
	Violations []Violation `json:"violations"`
}

func (e *Errors) Error() string {
	if len(e.Violations) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", v.Field, v.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *Errors) add(field, code, message string) {
	e.Violations = append(e.Violations, Violation{Field: field, Code: code, Message: message})
}

// orNil folds an empty collector back to a nil error.
func (e *Errors) orNil() error {
	if len(e.Violations) == 0 {
		return nil
	}
	return e
}
