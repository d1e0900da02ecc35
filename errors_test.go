package livellm

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigError(t *testing.T) {
	err := NewConfigError("provider %q declares no models", "openai")
	assert.Equal(t, `invalid configuration: provider "openai" declares no models`, err.Error())
	assert.True(t, IsConfig(err))
	assert.True(t, IsConfig(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsConfig(errors.New("other")))
}

func TestCapabilityError(t *testing.T) {
	err := &CapabilityError{Capability: CapabilityTranscribe}
	assert.Equal(t, "no model with capability transcribe found", err.Error())
}

func TestTransformError(t *testing.T) {
	t.Run("wraps the cause", func(t *testing.T) {
		cause := errors.New("helper unavailable")
		err := &TransformError{MimeType: "audio/mpeg", Err: cause}
		assert.Equal(t, "cannot transform audio/mpeg content: helper unavailable", err.Error())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, IsTransform(err))
	})

	t.Run("message without cause", func(t *testing.T) {
		err := &TransformError{MimeType: "application/pdf"}
		assert.Equal(t, "cannot transform application/pdf content", err.Error())
	})
}

func TestTransportError(t *testing.T) {
	t.Run("formats provider, status and message", func(t *testing.T) {
		err := &TransportError{Provider: ProviderOpenAI, StatusCode: 429, Msg: "rate limited"}
		assert.Equal(t, "openai transport error (status 429): rate limited", err.Error())
	})

	t.Run("Temporary covers 429 and 5xx", func(t *testing.T) {
		tests := []struct {
			status    int
			temporary bool
		}{
			{429, true},
			{500, true},
			{503, true},
			{599, true},
			{400, false},
			{401, false},
			{404, false},
			{0, false},
		}
		for _, tt := range tests {
			err := &TransportError{Provider: ProviderGoogle, StatusCode: tt.status}
			assert.Equal(t, tt.temporary, err.Temporary(), "status %d", tt.status)
		}
	})

	t.Run("unwraps the cause", func(t *testing.T) {
		err := &TransportError{Provider: ProviderOpenAI, Msg: "timed out", Err: context.DeadlineExceeded}
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestMidStreamError(t *testing.T) {
	cause := &TransportError{Provider: ProviderGoogle, StatusCode: 500, Msg: "connection reset"}
	err := &MidStreamError{Err: cause}
	assert.True(t, IsMidStream(err))
	assert.False(t, IsMidStream(cause))
	assert.True(t, errors.Is(err, cause))
}

func TestFallbackError(t *testing.T) {
	t.Run("no candidates", func(t *testing.T) {
		err := &FallbackError{Model: "gpt-5"}
		assert.Equal(t, `no provider can serve model "gpt-5"`, err.Error())
	})

	t.Run("lists attempts in order", func(t *testing.T) {
		err := &FallbackError{
			Model: "gpt-5",
			Attempts: []Attempt{
				{Provider: ProviderOpenAI, Model: "gpt-5", Err: errors.New("rate limited")},
				{Provider: ProviderGoogle, Model: "gemini-2.5-flash", Err: errors.New("unavailable")},
			},
		}
		assert.Contains(t, err.Error(), `all 2 candidates failed for model "gpt-5"`)
		assert.Contains(t, err.Error(), "openai/gpt-5: rate limited")
		assert.Contains(t, err.Error(), "gemini-2.5-flash: unavailable")
	})

	t.Run("errors.As reaches aggregated attempts", func(t *testing.T) {
		inner := &TransportError{Provider: ProviderOpenAI, StatusCode: 503}
		err := &FallbackError{
			Model:    "gpt-5",
			Attempts: []Attempt{{Provider: ProviderOpenAI, Model: "gpt-5", Err: inner}},
		}

		var te *TransportError
		require.True(t, errors.As(err, &te))
		assert.Equal(t, 503, te.StatusCode)

		fe, ok := AsFallback(fmt.Errorf("request failed: %w", err))
		require.True(t, ok)
		assert.Len(t, fe.Attempts, 1)
	})
}
