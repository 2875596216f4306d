package extract

import "fmt"

// ParseError indicates the model returned output that could not be turned
// into a structured job. It is only surfaced in strict mode; otherwise the
// pipeline falls back to a degenerate result carrying the raw output.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to parse extraction output: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to parse extraction output: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
