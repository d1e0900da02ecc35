package livellm

import "time"

// Options contains per-request configuration for orchestrated calls.
type Options struct {
	// GenConfig holds provider-agnostic generation parameters
	// (temperature, max_tokens, ...). Passed through to the transport.
	GenConfig map[string]any
	// Tools lists tool references available to the model.
	Tools []Tool
	// ForceTransform rewrites all binary content to text even when the
	// chosen candidate supports it natively.
	ForceTransform bool
	// Capabilities overrides the declared capability set of the target
	// model for this request. Nil means use the registry declaration.
	Capabilities []Capability
	// Language is an optional hint for transcription.
	Language string
	// CallTimeout bounds each individual transport call. It is not
	// accumulated across candidates; a slow candidate that times out
	// simply fails over to the next one.
	CallTimeout time.Duration
}

// Option is a functional option for configuring orchestrated calls.
type Option func(*Options)

// WithGenConfig sets an arbitrary generation parameter.
func WithGenConfig(key string, value any) Option {
	return func(o *Options) {
		if o.GenConfig == nil {
			o.GenConfig = make(map[string]any)
		}
		o.GenConfig[key] = value
	}
}

// WithTemperature sets the sampling temperature.
func WithTemperature(t float64) Option {
	return WithGenConfig("temperature", t)
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return WithGenConfig("max_tokens", n)
}

// WithTools sets the tool references available to the model.
func WithTools(tools ...Tool) Option {
	return func(o *Options) {
		o.Tools = append(o.Tools, tools...)
	}
}

// WithForceTransform forces binary content to be rewritten to text for
// every candidate, regardless of declared capabilities.
func WithForceTransform() Option {
	return func(o *Options) {
		o.ForceTransform = true
	}
}

// WithCapabilities overrides the target model's declared capabilities
// for this request.
func WithCapabilities(caps ...Capability) Option {
	return func(o *Options) {
		o.Capabilities = append([]Capability{}, caps...)
	}
}

// WithLanguage sets a language hint for transcription.
func WithLanguage(lang string) Option {
	return func(o *Options) {
		o.Language = lang
	}
}

// WithCallTimeout bounds each individual transport call.
func WithCallTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.CallTimeout = d
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
