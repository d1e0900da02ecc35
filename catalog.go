package livellm

// Provider presets with commonly served models and their declared
// capabilities. These are conveniences for registry construction; pass
// a hand-built ProviderConfig to declare a different model table.

// OpenAIProvider returns an OpenAI provider configuration.
func OpenAIProvider(apiKey string, baseURL ...string) ProviderConfig {
	return ProviderConfig{
		Creds: newCreds(apiKey, ProviderOpenAI, baseURL),
		Models: []Model{
			{Name: "gpt-5-mini", Capabilities: []Capability{}},
			{Name: "gpt-5-nano", Capabilities: []Capability{}},
			{Name: "gpt-5", Capabilities: []Capability{}},
			{Name: "gpt-4o", Capabilities: []Capability{CapabilityImageAgent}},
			{Name: "gpt-4o-mini", Capabilities: []Capability{CapabilityImageAgent}},
			{Name: "tts-1", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "tts-1-hd", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "whisper-1", Capabilities: []Capability{CapabilityTranscribe}},
		},
	}
}

// GoogleProvider returns a Google provider configuration.
func GoogleProvider(apiKey string, baseURL ...string) ProviderConfig {
	geminiCaps := []Capability{CapabilityImageAgent, CapabilityVideoAgent, CapabilityAudioAgent}
	return ProviderConfig{
		Creds: newCreds(apiKey, ProviderGoogle, baseURL),
		Models: []Model{
			{Name: "gemini-2.5-flash-lite", Capabilities: geminiCaps},
			{Name: "gemini-2.5-flash", Capabilities: geminiCaps},
			{Name: "gemini-2.5-pro", Capabilities: geminiCaps},
		},
	}
}

// AnthropicProvider returns an Anthropic provider configuration.
func AnthropicProvider(apiKey string, baseURL ...string) ProviderConfig {
	return ProviderConfig{
		Creds: newCreds(apiKey, ProviderAnthropic, baseURL),
		Models: []Model{
			{Name: "claude-sonnet-3.5", Capabilities: []Capability{}},
			{Name: "claude-sonnet-4.0", Capabilities: []Capability{}},
			{Name: "claude-sonnet-4.5", Capabilities: []Capability{}},
			{Name: "claude-haiku-4.5", Capabilities: []Capability{}},
		},
	}
}

// ElevenLabsProvider returns an ElevenLabs provider configuration.
func ElevenLabsProvider(apiKey string, baseURL ...string) ProviderConfig {
	return ProviderConfig{
		Creds: newCreds(apiKey, ProviderElevenLabs, baseURL),
		Models: []Model{
			{Name: "elevenlabs_multilingual_v2", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "eleven_flash_v2_5", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "eleven_flash_v2", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "eleven_v3", Capabilities: []Capability{CapabilitySpeak}},
			{Name: "scribe_v1", Capabilities: []Capability{CapabilityTranscribe}},
		},
	}
}

func newCreds(apiKey string, provider Provider, baseURL []string) Credentials {
	creds := Credentials{APIKey: apiKey, Provider: provider}
	if len(baseURL) > 0 {
		creds.BaseURL = baseURL[0]
	}
	return creds
}
