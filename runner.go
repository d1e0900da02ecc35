package livellm

import "context"

// AgentRequest is a logical request to run a model over a conversation.
type AgentRequest struct {
	Model     string         `json:"model"`
	Messages  []Message      `json:"messages"`
	Tools     []Tool         `json:"tools"`
	GenConfig map[string]any `json:"gen_config,omitempty"`
}

// Usage contains token usage information for a request.
type Usage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}

// AgentResponse is the output of an agent run, or one chunk of a
// streamed run.
type AgentResponse struct {
	Output string `json:"output"`
	Usage  Usage  `json:"usage"`
}

// StreamEvent is a single event in a streamed agent run. Exactly one of
// Chunk and Err is set. The channel carrying events is closed when the
// stream ends.
type StreamEvent struct {
	Chunk *AgentResponse
	Err   error
}

// AudioChunk is a single piece of streamed audio. Exactly one of Data
// and Err is set.
type AudioChunk struct {
	Data []byte
	Err  error
}

// Runner is the transport collaborator: it performs the actual network
// call against a single provider endpoint. Implementations own request
// construction, wire formats, connection management, and same-endpoint
// retries; the orchestrator owns candidate selection and fallback.
//
// All calls must be safe to issue against a different candidate after a
// failure; the orchestrator never replays a call against the same one.
type Runner interface {
	// Run executes an agent request and returns the complete response.
	Run(ctx context.Context, creds Credentials, req *AgentRequest) (*AgentResponse, error)

	// RunStream executes an agent request and returns a channel of
	// response chunks. The channel is closed at end of stream; errors
	// are delivered as StreamEvent.Err.
	RunStream(ctx context.Context, creds Credentials, req *AgentRequest) (<-chan StreamEvent, error)

	// Speak synthesizes speech and returns the raw audio bytes.
	Speak(ctx context.Context, creds Credentials, req *SpeakRequest) ([]byte, error)

	// SpeakStream synthesizes speech and streams audio chunks.
	SpeakStream(ctx context.Context, creds Credentials, req *SpeakRequest) (<-chan AudioChunk, error)

	// Transcribe converts audio to text.
	Transcribe(ctx context.Context, creds Credentials, req *TranscribeRequest) (*TranscribeResponse, error)
}
