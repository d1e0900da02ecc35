package livellm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderPresets(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		pc := OpenAIProvider("sk-test")
		assert.Equal(t, ProviderOpenAI, pc.Creds.Provider)
		assert.Equal(t, "sk-test", pc.Creds.APIKey)

		m, ok := pc.Find("gpt-4o")
		require.True(t, ok)
		assert.True(t, m.Has(CapabilityImageAgent))

		m, ok = pc.Find("whisper-1")
		require.True(t, ok)
		assert.True(t, m.Has(CapabilityTranscribe))

		m, ok = pc.Find("gpt-5")
		require.True(t, ok)
		assert.Empty(t, m.Capabilities)
	})

	t.Run("google models handle all agent media", func(t *testing.T) {
		pc := GoogleProvider("test-key")
		for _, m := range pc.Models {
			assert.True(t, m.Has(CapabilityAudioAgent), m.Name)
			assert.True(t, m.Has(CapabilityImageAgent), m.Name)
			assert.True(t, m.Has(CapabilityVideoAgent), m.Name)
		}
	})

	t.Run("anthropic models are text-only", func(t *testing.T) {
		pc := AnthropicProvider("test-key")
		require.NotEmpty(t, pc.Models)
		for _, m := range pc.Models {
			assert.Empty(t, m.Capabilities, m.Name)
		}
	})

	t.Run("elevenlabs splits speech and transcription", func(t *testing.T) {
		pc := ElevenLabsProvider("test-key")
		m, ok := pc.Find("scribe_v1")
		require.True(t, ok)
		assert.True(t, m.Has(CapabilityTranscribe))
		assert.False(t, m.Has(CapabilitySpeak))

		m, ok = pc.Find("eleven_v3")
		require.True(t, ok)
		assert.True(t, m.Has(CapabilitySpeak))
	})

	t.Run("base URL override", func(t *testing.T) {
		pc := OpenAIProvider("sk-test", "http://localhost:8080/v1")
		assert.Equal(t, "http://localhost:8080/v1", pc.Creds.BaseURL)
	})
}
