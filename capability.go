package livellm

// Capability is a declared ability of a model.
type Capability string

const (
	// CapabilityAudioAgent marks a model that can consume audio input directly.
	CapabilityAudioAgent Capability = "audio_agent"
	// CapabilityImageAgent marks a model that can consume image input directly.
	CapabilityImageAgent Capability = "image_agent"
	// CapabilityVideoAgent marks a model that can consume video input directly.
	CapabilityVideoAgent Capability = "video_agent"
	// CapabilitySpeak marks a text-to-speech model.
	CapabilitySpeak Capability = "speak"
	// CapabilityTranscribe marks a speech-to-text model.
	CapabilityTranscribe Capability = "transcribe"
)

// String returns the capability identifier.
func (c Capability) String() string { return string(c) }

// Transformable returns true if a missing capability can be worked around
// by rewriting the offending content into text. Speech synthesis and
// transcription cannot be substituted this way.
func (c Capability) Transformable() bool {
	switch c {
	case CapabilityAudioAgent, CapabilityImageAgent, CapabilityVideoAgent:
		return true
	default:
		return false
	}
}

// CapabilityFor maps a binary file category to the capability a model
// needs to consume it natively.
func CapabilityFor(category FileCategory) (Capability, bool) {
	switch category {
	case FileAudio:
		return CapabilityAudioAgent, true
	case FileImage:
		return CapabilityImageAgent, true
	case FileVideo:
		return CapabilityVideoAgent, true
	default:
		return "", false
	}
}

// capabilityOrder fixes a stable ordering for CapabilitySet.List.
var capabilityOrder = []Capability{
	CapabilityAudioAgent,
	CapabilityImageAgent,
	CapabilityVideoAgent,
	CapabilitySpeak,
	CapabilityTranscribe,
}

// CapabilitySet is a set of model capabilities.
type CapabilitySet map[Capability]bool

// NewCapabilitySet creates a set from the given capabilities.
func NewCapabilitySet(caps ...Capability) CapabilitySet {
	s := make(CapabilitySet, len(caps))
	for _, c := range caps {
		s[c] = true
	}
	return s
}

// Has returns true if the set contains the capability.
func (s CapabilitySet) Has(c Capability) bool { return s[c] }

// Len returns the number of capabilities in the set.
func (s CapabilitySet) Len() int { return len(s) }

// Superset returns true if the set contains every capability in other.
func (s CapabilitySet) Superset(other CapabilitySet) bool {
	for c := range other {
		if !s[c] {
			return false
		}
	}
	return true
}

// Equal returns true if both sets contain exactly the same capabilities.
func (s CapabilitySet) Equal(other CapabilitySet) bool {
	return len(s) == len(other) && s.Superset(other)
}

// Diff returns the capabilities present in s but absent from other.
func (s CapabilitySet) Diff(other CapabilitySet) CapabilitySet {
	out := make(CapabilitySet)
	for c := range s {
		if !other[c] {
			out[c] = true
		}
	}
	return out
}

// Reduced returns the set with all transformable capabilities removed:
// the requirement that remains once binary content is rewritten to text.
func (s CapabilitySet) Reduced() CapabilitySet {
	out := make(CapabilitySet)
	for c := range s {
		if !c.Transformable() {
			out[c] = true
		}
	}
	return out
}

// List returns the capabilities in stable declaration order.
func (s CapabilitySet) List() []Capability {
	out := make([]Capability, 0, len(s))
	for _, c := range capabilityOrder {
		if s[c] {
			out = append(out, c)
		}
	}
	return out
}

// RequiredCapabilities derives the minimal capability set a model must
// hold to serve the given messages without transformation. Each binary
// message contributes the capability matching its MIME category; text
// messages contribute nothing.
func RequiredCapabilities(messages []Message) CapabilitySet {
	required := make(CapabilitySet)
	for _, m := range messages {
		if !m.IsBinary() {
			continue
		}
		if c, ok := CapabilityFor(m.Category()); ok {
			required[c] = true
		}
	}
	return required
}
