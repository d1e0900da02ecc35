package retry

import (
	"errors"

	livellm "github.com/livellm/livellm-go"
)

// IsTransient reports whether an error is worth retrying against the
// same endpoint: a transport error caused by rate limiting or a
// server-side failure. Everything else (validation errors, timeouts,
// cancellation) is left to the caller, typically to fail the candidate
// over to the next provider.
func IsTransient(err error) bool {
	var te *livellm.TransportError
	if errors.As(err, &te) {
		return te.Temporary()
	}
	return false
}
