package livellm

// Candidate is one (provider, model) pair considered for a single
// orchestration attempt. Candidates are derived per request and never
// stored.
type Candidate struct {
	Creds Credentials
	Model Model
}

// Registry is an ordered, read-only collection of provider
// configurations. The first provider is the primary (always tried
// first); the remainder are fallbacks in configured order.
type Registry struct {
	providers []ProviderConfig
}

// NewRegistry builds a registry from a primary provider and an ordered
// list of fallbacks. Every provider must declare at least one model and
// provider identifiers must be unique.
func NewRegistry(primary ProviderConfig, fallbacks ...ProviderConfig) (*Registry, error) {
	providers := append([]ProviderConfig{primary}, fallbacks...)
	seen := make(map[Provider]bool, len(providers))
	for _, pc := range providers {
		if pc.Creds.Provider == "" {
			return nil, NewConfigError("provider identifier is required")
		}
		if seen[pc.Creds.Provider] {
			return nil, NewConfigError("duplicate provider %q in registry", pc.Creds.Provider)
		}
		seen[pc.Creds.Provider] = true
		if len(pc.Models) == 0 {
			return nil, NewConfigError("provider %q declares no models", pc.Creds.Provider)
		}
	}
	return &Registry{providers: providers}, nil
}

// Primary returns the primary provider configuration.
func (r *Registry) Primary() ProviderConfig { return r.providers[0] }

// Providers returns all provider configurations in configured order.
func (r *Registry) Providers() []ProviderConfig {
	out := make([]ProviderConfig, len(r.providers))
	copy(out, r.providers)
	return out
}

// Len returns the number of configured providers.
func (r *Registry) Len() int { return len(r.providers) }

// FindCapable returns the first candidate, in configured order, whose
// model declares the given capability. Used to resolve helper models
// for binary transformation.
func (r *Registry) FindCapable(c Capability) (Candidate, bool) {
	for _, pc := range r.providers {
		for _, m := range pc.Models {
			if m.Has(c) {
				return Candidate{Creds: pc.Creds, Model: m}, true
			}
		}
	}
	return Candidate{}, false
}

// Candidates produces the ordered sequence of candidates to try for a
// request targeting the named model with the given capability
// requirement. Each provider contributes at most one candidate:
//
//  1. an exact name match, if the provider declares the model;
//  2. otherwise the model with the smallest superset of the required
//     capabilities (the primary additionally prefers an exact
//     capability-set match), ties broken by declaration order;
//  3. otherwise, if the requirement shrinks once binary content is
//     assumed transformed to text, the smallest superset of that
//     reduced requirement.
//
// A provider whose models satisfy none of the above is skipped.
func (r *Registry) Candidates(name string, required CapabilitySet) []Candidate {
	var out []Candidate
	for i, pc := range r.providers {
		if m, ok := bestModel(pc, name, required, i == 0); ok {
			out = append(out, Candidate{Creds: pc.Creds, Model: m})
		}
	}
	return out
}

func bestModel(pc ProviderConfig, name string, required CapabilitySet, primary bool) (Model, bool) {
	if m, ok := pc.Find(name); ok {
		return m, true
	}
	if primary {
		for _, m := range pc.Models {
			if m.CapabilitySet().Equal(required) {
				return m, true
			}
		}
	}
	if m, ok := smallestSuperset(pc.Models, required); ok {
		return m, true
	}
	// Assume binary content will be rewritten to text and retry with
	// the reduced requirement.
	if reduced := required.Reduced(); reduced.Len() < required.Len() {
		if m, ok := smallestSuperset(pc.Models, reduced); ok {
			return m, true
		}
	}
	return Model{}, false
}

// smallestSuperset picks the model covering required with the fewest
// extraneous capabilities. Ties resolve to the earliest declared model.
func smallestSuperset(models []Model, required CapabilitySet) (Model, bool) {
	best := -1
	bestLen := 0
	for i, m := range models {
		caps := m.CapabilitySet()
		if !caps.Superset(required) {
			continue
		}
		if best == -1 || caps.Len() < bestLen {
			best = i
			bestLen = caps.Len()
		}
	}
	if best == -1 {
		return Model{}, false
	}
	return models[best], true
}
