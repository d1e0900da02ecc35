package livellm

import (
	"errors"
	"fmt"
	"strings"
)

// ConfigError indicates an invalid client or registry configuration.
// It is raised before any network activity.
type ConfigError struct {
	Msg string
}

// NewConfigError creates a configuration error.
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// Error returns the error message.
func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Msg
}

// CapabilityError indicates that no model anywhere in the registry
// declares a needed capability.
type CapabilityError struct {
	Capability Capability
}

// Error returns the error message.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("no model with capability %s found", e.Capability)
}

// TransformError indicates that a required binary-to-text conversion
// could not be performed. The affected candidate is skipped without a
// network call.
type TransformError struct {
	MimeType string
	Err      error
}

// Error returns the error message.
func (e *TransformError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot transform %s content: %v", e.MimeType, e.Err)
	}
	return fmt.Sprintf("cannot transform %s content", e.MimeType)
}

// Unwrap returns the underlying error.
func (e *TransformError) Unwrap() error { return e.Err }

// TransportError is reported by a transport for a failed call against a
// single provider endpoint. At the orchestrator level it is always
// recoverable by advancing to the next candidate.
type TransportError struct {
	Provider   Provider
	StatusCode int // HTTP status code, 0 if not applicable
	Msg        string
	Err        error
}

// Error returns the error message.
func (e *TransportError) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Provider))
	b.WriteString(" transport error")
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, " (status %d)", e.StatusCode)
	}
	if e.Msg != "" {
		b.WriteString(": ")
		b.WriteString(e.Msg)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error { return e.Err }

// Temporary reports whether the failure is worth retrying against the
// same endpoint (rate limiting or server-side errors).
func (e *TransportError) Temporary() bool {
	return e.StatusCode == 429 || (e.StatusCode >= 500 && e.StatusCode < 600)
}

// MidStreamError indicates a streaming failure after at least one chunk
// was already delivered to the caller. It is never recovered by
// fallback since partial output cannot be retracted.
type MidStreamError struct {
	Err error
}

// Error returns the error message.
func (e *MidStreamError) Error() string {
	return fmt.Sprintf("stream failed after output was delivered: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *MidStreamError) Unwrap() error { return e.Err }

// Attempt records the outcome of one candidate attempt.
type Attempt struct {
	Provider Provider
	Model    string
	Err      error
}

// FallbackError aggregates the errors of every attempted candidate, in
// attempt order, after the candidate sequence is exhausted.
type FallbackError struct {
	Model    string
	Attempts []Attempt
}

// Error returns a summary naming each failed candidate.
func (e *FallbackError) Error() string {
	if len(e.Attempts) == 0 {
		return fmt.Sprintf("no provider can serve model %q", e.Model)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "all %d candidates failed for model %q:", len(e.Attempts), e.Model)
	for _, a := range e.Attempts {
		fmt.Fprintf(&b, "\n  %s/%s: %v", a.Provider, a.Model, a.Err)
	}
	return b.String()
}

// Unwrap returns the per-candidate errors for use with errors.Is and
// errors.As.
func (e *FallbackError) Unwrap() []error {
	errs := make([]error, len(e.Attempts))
	for i, a := range e.Attempts {
		errs[i] = a.Err
	}
	return errs
}

// IsConfig returns true if the error is a configuration error.
func IsConfig(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsTransform returns true if the error stems from a failed binary
// transformation.
func IsTransform(err error) bool {
	var te *TransformError
	return errors.As(err, &te)
}

// IsMidStream returns true if the error occurred after streaming output
// had already been delivered.
func IsMidStream(err error) bool {
	var me *MidStreamError
	return errors.As(err, &me)
}

// AsFallback extracts an aggregated fallback error, if present.
func AsFallback(err error) (*FallbackError, bool) {
	var fe *FallbackError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
