package livellm

// Provider identifies an AI provider backend.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Known providers.
const (
	ProviderOpenAI     Provider = "openai"
	ProviderGoogle     Provider = "google"
	ProviderAnthropic  Provider = "anthropic"
	ProviderGroq       Provider = "groq"
	ProviderElevenLabs Provider = "elevenlabs"
)

// Credentials identify how to authenticate and reach one provider endpoint.
// Immutable once constructed.
type Credentials struct {
	APIKey   string   `json:"api_key"`
	Provider Provider `json:"provider"`
	// BaseURL optionally overrides the provider's default endpoint.
	BaseURL string `json:"base_url,omitempty"`
}

// Model describes one model a provider serves and what it can do.
// A model with no capabilities is text-only.
type Model struct {
	Name         string       `json:"name"`
	Capabilities []Capability `json:"capabilities"`
}

// Has returns true if the model declares the capability.
func (m Model) Has(c Capability) bool {
	for _, mc := range m.Capabilities {
		if mc == c {
			return true
		}
	}
	return false
}

// CapabilitySet returns the model's declared capabilities as a set.
func (m Model) CapabilitySet() CapabilitySet {
	return NewCapabilitySet(m.Capabilities...)
}

// ProviderConfig represents one backend and the models it can serve,
// in declaration order.
type ProviderConfig struct {
	Creds  Credentials `json:"creds"`
	Models []Model     `json:"models"`
}

// Find returns the provider's model with the given name, if declared.
func (pc ProviderConfig) Find(name string) (Model, bool) {
	for _, m := range pc.Models {
		if m.Name == name {
			return m, true
		}
	}
	return Model{}, false
}
