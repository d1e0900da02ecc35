package openai

import (
	"errors"

	"github.com/openai/openai-go"

	livellm "github.com/livellm/livellm-go"
)

// wrapError wraps an OpenAI SDK error as a transport error so the
// status code survives for retry and fallback decisions.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return &livellm.TransportError{
			Provider: livellm.ProviderOpenAI,
			Msg:      "request failed",
			Err:      err,
		}
	}

	return &livellm.TransportError{
		Provider:   livellm.ProviderOpenAI,
		StatusCode: apiErr.StatusCode,
		Msg:        apiErr.Error(),
		Err:        err,
	}
}
