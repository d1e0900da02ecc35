package livellm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider(p Provider, models ...Model) ProviderConfig {
	return ProviderConfig{
		Creds:  Credentials{APIKey: "test-key", Provider: p},
		Models: models,
	}
}

func TestNewRegistry(t *testing.T) {
	t.Run("accepts primary with fallbacks", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderOpenAI, Model{Name: "gpt-5"}),
			testProvider(ProviderGoogle, Model{Name: "gemini-2.5-flash"}),
		)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
		assert.Equal(t, ProviderOpenAI, r.Primary().Creds.Provider)
	})

	t.Run("rejects missing provider identifier", func(t *testing.T) {
		_, err := NewRegistry(ProviderConfig{Models: []Model{{Name: "m"}}})
		require.Error(t, err)
		assert.True(t, IsConfig(err))
	})

	t.Run("rejects duplicate providers", func(t *testing.T) {
		_, err := NewRegistry(
			testProvider(ProviderOpenAI, Model{Name: "a"}),
			testProvider(ProviderOpenAI, Model{Name: "b"}),
		)
		require.Error(t, err)
		assert.True(t, IsConfig(err))
		assert.Contains(t, err.Error(), "duplicate provider")
	})

	t.Run("rejects provider without models", func(t *testing.T) {
		_, err := NewRegistry(testProvider(ProviderOpenAI))
		require.Error(t, err)
		assert.True(t, IsConfig(err))
	})
}

func TestRegistryFindCapable(t *testing.T) {
	r, err := NewRegistry(
		testProvider(ProviderAnthropic, Model{Name: "claude-sonnet-4-5"}),
		testProvider(ProviderOpenAI,
			Model{Name: "whisper-1", Capabilities: []Capability{CapabilityTranscribe}},
		),
		testProvider(ProviderElevenLabs,
			Model{Name: "scribe_v1", Capabilities: []Capability{CapabilityTranscribe}},
		),
	)
	require.NoError(t, err)

	t.Run("returns first capable model in configured order", func(t *testing.T) {
		cand, ok := r.FindCapable(CapabilityTranscribe)
		require.True(t, ok)
		assert.Equal(t, ProviderOpenAI, cand.Creds.Provider)
		assert.Equal(t, "whisper-1", cand.Model.Name)
	})

	t.Run("reports absent capability", func(t *testing.T) {
		_, ok := r.FindCapable(CapabilityVideoAgent)
		assert.False(t, ok)
	})
}

func TestRegistryCandidates(t *testing.T) {
	t.Run("exact name match wins on every provider", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderOpenAI,
				Model{Name: "gpt-5"},
				Model{Name: "gpt-4o", Capabilities: []Capability{CapabilityImageAgent}},
			),
			testProvider(ProviderGoogle,
				Model{Name: "gpt-5"},
				Model{Name: "gemini-2.5-flash", Capabilities: []Capability{CapabilityAudioAgent, CapabilityImageAgent, CapabilityVideoAgent}},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("gpt-5", NewCapabilitySet())
		require.Len(t, cands, 2)
		assert.Equal(t, ProviderOpenAI, cands[0].Creds.Provider)
		assert.Equal(t, "gpt-5", cands[0].Model.Name)
		assert.Equal(t, ProviderGoogle, cands[1].Creds.Provider)
		assert.Equal(t, "gpt-5", cands[1].Model.Name)
	})

	t.Run("primary prefers exact capability match over smaller superset", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderGoogle,
				Model{Name: "multi", Capabilities: []Capability{CapabilityAudioAgent, CapabilityImageAgent}},
				Model{Name: "exact", Capabilities: []Capability{CapabilityAudioAgent}},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("missing-model", NewCapabilitySet(CapabilityAudioAgent))
		require.Len(t, cands, 1)
		assert.Equal(t, "exact", cands[0].Model.Name)
	})

	t.Run("fallback picks smallest capability superset", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderOpenAI, Model{Name: "primary-model"}),
			testProvider(ProviderGoogle,
				Model{Name: "kitchen-sink", Capabilities: []Capability{CapabilityAudioAgent, CapabilityImageAgent, CapabilityVideoAgent}},
				Model{Name: "lean", Capabilities: []Capability{CapabilityAudioAgent, CapabilityImageAgent}},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("primary-model", NewCapabilitySet(CapabilityAudioAgent))
		require.Len(t, cands, 2)
		assert.Equal(t, "primary-model", cands[0].Model.Name)
		assert.Equal(t, "lean", cands[1].Model.Name)
	})

	t.Run("superset ties break by declaration order", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderOpenAI, Model{Name: "other"}),
			testProvider(ProviderGoogle,
				Model{Name: "first", Capabilities: []Capability{CapabilityAudioAgent, CapabilityImageAgent}},
				Model{Name: "second", Capabilities: []Capability{CapabilityAudioAgent, CapabilityVideoAgent}},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("other", NewCapabilitySet(CapabilityAudioAgent))
		require.Len(t, cands, 2)
		assert.Equal(t, "first", cands[1].Model.Name)
	})

	t.Run("text-only fallback qualifies via reduced requirement", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderGoogle,
				Model{Name: "gemini-2.5-flash", Capabilities: []Capability{CapabilityAudioAgent}},
			),
			testProvider(ProviderAnthropic,
				Model{Name: "claude-sonnet-4-5"},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("gemini-2.5-flash", NewCapabilitySet(CapabilityAudioAgent))
		require.Len(t, cands, 2)
		assert.Equal(t, "gemini-2.5-flash", cands[0].Model.Name)
		assert.Equal(t, "claude-sonnet-4-5", cands[1].Model.Name)
	})

	t.Run("non-transformable requirements never reduce", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderElevenLabs,
				Model{Name: "eleven_v3", Capabilities: []Capability{CapabilitySpeak}},
			),
			testProvider(ProviderAnthropic,
				Model{Name: "claude-sonnet-4-5"},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("eleven_v3", NewCapabilitySet(CapabilitySpeak))
		require.Len(t, cands, 1)
		assert.Equal(t, ProviderElevenLabs, cands[0].Creds.Provider)
	})

	t.Run("each provider contributes at most one candidate", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderOpenAI,
				Model{Name: "a", Capabilities: []Capability{CapabilityImageAgent}},
				Model{Name: "b", Capabilities: []Capability{CapabilityImageAgent}},
			),
		)
		require.NoError(t, err)

		cands := r.Candidates("missing", NewCapabilitySet(CapabilityImageAgent))
		assert.Len(t, cands, 1)
	})

	t.Run("empty when nothing qualifies", func(t *testing.T) {
		r, err := NewRegistry(
			testProvider(ProviderAnthropic, Model{Name: "claude-sonnet-4-5"}),
		)
		require.NoError(t, err)

		cands := r.Candidates("missing", NewCapabilitySet(CapabilitySpeak))
		assert.Empty(t, cands)
	})
}
