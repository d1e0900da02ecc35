package google

import (
	"errors"
	"fmt"

	"google.golang.org/genai"

	livellm "github.com/livellm/livellm-go"
)

// wrapError wraps a GenAI SDK error as a transport error so the status
// code survives for retry and fallback decisions.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return &livellm.TransportError{
			Provider: livellm.ProviderGoogle,
			Msg:      "request failed",
			Err:      err,
		}
	}

	return &livellm.TransportError{
		Provider:   livellm.ProviderGoogle,
		StatusCode: apiErr.Code,
		Msg:        apiErr.Message,
		Err:        err,
	}
}

func errNotSupported(operation string) error {
	return &livellm.TransportError{
		Provider:   livellm.ProviderGoogle,
		StatusCode: 404,
		Msg:        fmt.Sprintf("%s is not supported by this provider", operation),
	}
}
