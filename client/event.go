package client

import (
	"time"

	"github.com/google/uuid"
	livellm "github.com/livellm/livellm-go"
)

// EventType identifies the kind of event occurring during orchestration.
type EventType string

const (
	// EventCandidateStart fires before a candidate attempt begins.
	EventCandidateStart EventType = "candidate_start"

	// EventCandidateError fires when a candidate attempt fails and the
	// orchestrator advances to the next candidate.
	EventCandidateError EventType = "candidate_error"

	// EventTransform fires when binary content is rewritten to text for
	// the current candidate.
	EventTransform EventType = "transform"

	// EventRequestComplete fires when a request succeeds.
	EventRequestComplete EventType = "request_complete"

	// EventRequestError fires when every candidate has failed.
	EventRequestError EventType = "request_error"
)

// Event represents an observable occurrence during orchestration.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Operation identifies the call ("run", "run_stream", "speak",
	// "speak_stream", "transcribe").
	Operation string

	// RequestID correlates all events of one orchestrated request.
	RequestID string

	// Provider identifies the candidate's provider, when applicable.
	Provider livellm.Provider

	// Model is the candidate's model name, when applicable.
	Model string

	// Attempt is the 1-based candidate attempt number.
	Attempt int

	// Duration is the elapsed time of the attempt or request.
	Duration time.Duration

	// Usage contains token usage for completed agent runs.
	Usage *livellm.Usage

	// Error contains the failure for error events.
	Error error

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// newRequestID creates a unique request correlation identifier.
func newRequestID() string {
	return "req-" + uuid.New().String()
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
