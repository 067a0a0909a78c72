package usecase

import (
	"fmt"
	"strings"
)

const (
	ReasonMissing   = "missing"
	ReasonMalformed = "malformed"
)


// FieldError describes one required-field failure. Reason distinguishes a
// field that is absent/empty from one that is present but malformed.
type FieldError struct {
	Field  string
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}


// ValidationFailure aggregates the field errors of one rejected submission.
type ValidationFailure struct {
	Errors []FieldError
}

func (e *ValidationFailure) Error() string {
	return e.Message()
}


// Fields returns the offending field names, in validation order.
func (e *ValidationFailure) Fields() []string {
	out := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		out = append(out, fe.Field)
	}
	return out
}


// Message builds the human-readable rejection string, keeping missing and
// malformed fields distinguishable.
func (e *ValidationFailure) Message() string {
	var missing, malformed []string
	for _, fe := range e.Errors {
		switch fe.Reason {
		case ReasonMalformed:
			malformed = append(malformed, fe.Field)
		default:
			missing = append(missing, fe.Field)
		}
	}

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Missing required fields: "+strings.Join(missing, ", "))
	}
	if len(malformed) > 0 {
		parts = append(parts, "Invalid value for: "+strings.Join(malformed, ", "))
	}
	if len(parts) == 0 {
		return "Validation failed"
	}
	return strings.Join(parts, "; ")
}


// ConfigError reports deployment configuration that is absent at request
// time. It is a server fault, not a client one.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "Server missing " + strings.Join(e.Missing, ", ")
}
