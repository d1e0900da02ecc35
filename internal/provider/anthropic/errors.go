package anthropic

import (
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	livellm "github.com/livellm/livellm-go"
)

// wrapError wraps an Anthropic SDK error as a transport error so the
// status code survives for retry and fallback decisions.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return &livellm.TransportError{
			Provider: livellm.ProviderAnthropic,
			Msg:      "request failed",
			Err:      err,
		}
	}

	return &livellm.TransportError{
		Provider:   livellm.ProviderAnthropic,
		StatusCode: apiErr.StatusCode,
		Msg:        apiErr.Error(),
		Err:        err,
	}
}

func errNotSupported(operation string) error {
	return &livellm.TransportError{
		Provider:   livellm.ProviderAnthropic,
		StatusCode: 404,
		Msg:        fmt.Sprintf("%s is not supported by this provider", operation),
	}
}
