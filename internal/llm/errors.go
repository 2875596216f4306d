package llm

import "fmt"

// MissingCredentialError indicates a required API credential is not configured.
// It is detected before any network call is attempted.
type MissingCredentialError struct {
	Name string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("missing credential: %s is not configured", e.Name)
}

// UpstreamError indicates the provider returned a non-success HTTP status.
// Status 429 is only surfaced here after the retry budget is exhausted.
type UpstreamError struct {
	Status int
	Cause  error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("upstream error: status %d: %v", e.Status, e.Cause)
	}
	return fmt.Sprintf("upstream error: status %d", e.Status)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// GatewayError wraps transport-level failures (DNS, timeout, connection reset)
type GatewayError struct {
	Cause error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error: %v", e.Cause)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}

// NoCandidateError indicates the provider response carried no usable text
type NoCandidateError struct{}

func (e *NoCandidateError) Error() string {
	return "no candidate text in provider response"
}
