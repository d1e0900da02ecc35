// Package direct provides a Runner that talks to provider APIs with
// their native SDKs instead of going through a LiveLLM proxy server.
//
// Clients are built lazily per credential set and cached, so a single
// Runner can serve every provider in a registry. Tool references are
// proxy-side constructs and are rejected here.
package direct

import (
	"context"
	"fmt"
	"sync"

	livellm "github.com/livellm/livellm-go"
	"github.com/livellm/livellm-go/internal/provider/anthropic"
	"github.com/livellm/livellm-go/internal/provider/google"
	"github.com/livellm/livellm-go/internal/provider/openai"
)

// Groq exposes an OpenAI-compatible API at this base URL.
const groqBaseURL = "https://api.groq.com/openai/v1"

// adapter is the per-provider transport surface. Each SDK wrapper is
// constructed for one credential set, so its methods take no
// credentials.
type adapter interface {
	Run(ctx context.Context, req *livellm.AgentRequest) (*livellm.AgentResponse, error)
	RunStream(ctx context.Context, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error)
	Speak(ctx context.Context, req *livellm.SpeakRequest) ([]byte, error)
	SpeakStream(ctx context.Context, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error)
	Transcribe(ctx context.Context, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error)
}

// Runner dispatches transport calls to native provider SDKs.
type Runner struct {
	mu      sync.RWMutex
	clients map[livellm.Credentials]adapter
}

// New creates a direct SDK runner.
func New() *Runner {
	return &Runner{clients: make(map[livellm.Credentials]adapter)}
}

// Run implements livellm.Runner.
func (r *Runner) Run(ctx context.Context, creds livellm.Credentials, req *livellm.AgentRequest) (*livellm.AgentResponse, error) {
	if err := rejectTools(creds, req.Tools); err != nil {
		return nil, err
	}
	a, err := r.adapterFor(ctx, creds)
	if err != nil {
		return nil, err
	}
	return a.Run(ctx, req)
}

// RunStream implements livellm.Runner.
func (r *Runner) RunStream(ctx context.Context, creds livellm.Credentials, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error) {
	if err := rejectTools(creds, req.Tools); err != nil {
		return nil, err
	}
	a, err := r.adapterFor(ctx, creds)
	if err != nil {
		return nil, err
	}
	return a.RunStream(ctx, req)
}

// Speak implements livellm.Runner.
func (r *Runner) Speak(ctx context.Context, creds livellm.Credentials, req *livellm.SpeakRequest) ([]byte, error) {
	a, err := r.adapterFor(ctx, creds)
	if err != nil {
		return nil, err
	}
	return a.Speak(ctx, req)
}

// SpeakStream implements livellm.Runner.
func (r *Runner) SpeakStream(ctx context.Context, creds livellm.Credentials, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error) {
	a, err := r.adapterFor(ctx, creds)
	if err != nil {
		return nil, err
	}
	return a.SpeakStream(ctx, req)
}

// Transcribe implements livellm.Runner.
func (r *Runner) Transcribe(ctx context.Context, creds livellm.Credentials, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error) {
	a, err := r.adapterFor(ctx, creds)
	if err != nil {
		return nil, err
	}
	return a.Transcribe(ctx, req)
}

// adapterFor returns the cached SDK client for the credential set,
// building it on first use.
func (r *Runner) adapterFor(ctx context.Context, creds livellm.Credentials) (adapter, error) {
	r.mu.RLock()
	a, ok := r.clients[creds]
	r.mu.RUnlock()
	if ok {
		return a, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if a, ok := r.clients[creds]; ok {
		return a, nil
	}

	a, err := buildAdapter(ctx, creds)
	if err != nil {
		return nil, err
	}
	r.clients[creds] = a
	return a, nil
}

func buildAdapter(ctx context.Context, creds livellm.Credentials) (adapter, error) {
	switch creds.Provider {
	case livellm.ProviderOpenAI:
		return openai.New(creds), nil
	case livellm.ProviderGroq:
		if creds.BaseURL == "" {
			creds.BaseURL = groqBaseURL
		}
		return openai.New(creds), nil
	case livellm.ProviderAnthropic:
		return anthropic.New(creds), nil
	case livellm.ProviderGoogle:
		return google.New(ctx, creds)
	default:
		return nil, &livellm.TransportError{
			Provider:   creds.Provider,
			StatusCode: 404,
			Msg:        fmt.Sprintf("no direct SDK transport for provider %s", creds.Provider),
		}
	}
}

// rejectTools refuses tool references, which only a proxy server can
// resolve and execute.
func rejectTools(creds livellm.Credentials, tools []livellm.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	return &livellm.TransportError{
		Provider:   creds.Provider,
		StatusCode: 400,
		Msg:        "tool references require the proxy transport",
	}
}

var _ livellm.Runner = (*Runner)(nil)
