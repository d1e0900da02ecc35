// Package client implements the orchestration core: candidate
// selection over a provider registry, capability-aware binary
// transformation, and sequential fallback across candidates for both
// single-shot and streaming calls.
package client

import (
	"context"

	livellm "github.com/livellm/livellm-go"
	"github.com/livellm/livellm-go/proxy"
)

// Config holds configuration for creating an orchestrating client.
type Config struct {
	// Registry declares the primary provider and ordered fallbacks.
	// Required.
	Registry *livellm.Registry

	// Runner is the transport used for every network call. When nil, a
	// proxy transport is built from ProxyURL.
	Runner livellm.Runner

	// ProxyURL is the base URL of a LiveLLM proxy server. Used only
	// when Runner is nil.
	ProxyURL string

	// Events is an optional channel for orchestration events.
	// Events are sent non-blocking; if the channel is full, events are
	// dropped.
	Events chan<- Event
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultOptions sets default request options applied before
// per-request options.
func WithDefaultOptions(opts ...livellm.Option) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, opts...)
	}
}

// WithDefaultTemperature sets the default sampling temperature.
// Per-request options override this default.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.defaultOpts = append(c.defaultOpts, livellm.WithTemperature(t))
	}
}

// Client orchestrates requests across the providers of a registry. It
// keeps no per-request state and is safe for concurrent use.
type Client struct {
	registry    *livellm.Registry
	runner      livellm.Runner
	events      chan<- Event
	defaultOpts []livellm.Option
}

// New creates an orchestrating client with the given configuration.
func New(cfg Config, opts ...ClientOption) (*Client, error) {
	if cfg.Registry == nil {
		return nil, livellm.NewConfigError("registry is required")
	}
	runner := cfg.Runner
	if runner == nil {
		if cfg.ProxyURL == "" {
			return nil, livellm.NewConfigError("either a runner or a proxy URL is required")
		}
		runner = proxy.New(cfg.ProxyURL)
	}

	c := &Client{
		registry: cfg.Registry,
		runner:   runner,
		events:   cfg.Events,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Registry returns the client's provider registry.
func (c *Client) Registry() *livellm.Registry { return c.registry }

// Run executes an agent request with automatic fallback. It returns
// the response together with the message list actually sent on the
// successful attempt, so callers can observe any binary-to-text
// transformation that occurred.
func (c *Client) Run(ctx context.Context, model string, messages []livellm.Message, opts ...livellm.Option) (*livellm.AgentResponse, []livellm.Message, error) {
	options := c.applyOptions(opts)
	required := livellm.RequiredCapabilities(messages)
	cands := c.registry.Candidates(model, selectionRequirement(required, options))
	requestID := newRequestID()

	type runResult struct {
		resp *livellm.AgentResponse
		sent []livellm.Message
	}

	res, err := dispatch(ctx, c, "run", model, requestID, cands, func(ctx context.Context, cand livellm.Candidate) (runResult, error) {
		if err := checkToolSupport(cand, options.Tools); err != nil {
			return runResult{}, err
		}
		sent, err := c.prepareMessages(ctx, cand, messages, required, options, "run", requestID)
		if err != nil {
			return runResult{}, err
		}

		callCtx, cancel := withCallTimeout(ctx, options.CallTimeout)
		defer cancel()

		resp, err := c.runner.Run(callCtx, cand.Creds, &livellm.AgentRequest{
			Model:     cand.Model.Name,
			Messages:  sent,
			Tools:     options.Tools,
			GenConfig: options.GenConfig,
		})
		if err != nil {
			return runResult{}, err
		}
		return runResult{resp: resp, sent: sent}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return res.resp, res.sent, nil
}

// RunStream executes an agent request and streams response chunks.
// Fallback is only possible before the first chunk: the orchestrator
// commits to a candidate once it has produced output, and any later
// failure surfaces as a MidStreamError on the returned channel.
func (c *Client) RunStream(ctx context.Context, model string, messages []livellm.Message, opts ...livellm.Option) (<-chan livellm.StreamEvent, []livellm.Message, error) {
	options := c.applyOptions(opts)
	required := livellm.RequiredCapabilities(messages)
	cands := c.registry.Candidates(model, selectionRequirement(required, options))
	requestID := newRequestID()

	type streamResult struct {
		ch   <-chan livellm.StreamEvent
		sent []livellm.Message
	}

	res, err := dispatch(ctx, c, "run_stream", model, requestID, cands, func(ctx context.Context, cand livellm.Candidate) (streamResult, error) {
		if err := checkToolSupport(cand, options.Tools); err != nil {
			return streamResult{}, err
		}
		sent, err := c.prepareMessages(ctx, cand, messages, required, options, "run_stream", requestID)
		if err != nil {
			return streamResult{}, err
		}

		in, err := c.runner.RunStream(ctx, cand.Creds, &livellm.AgentRequest{
			Model:     cand.Model.Name,
			Messages:  sent,
			Tools:     options.Tools,
			GenConfig: options.GenConfig,
		})
		if err != nil {
			return streamResult{}, err
		}

		first, err := awaitFirstEvent(ctx, cand, in, options.CallTimeout)
		if err != nil {
			return streamResult{}, err
		}

		out := make(chan livellm.StreamEvent)
		go forwardStream(ctx, in, out, first)
		return streamResult{ch: out, sent: sent}, nil
	})
	if err != nil {
		return nil, nil, err
	}
	return res.ch, res.sent, nil
}

// Speak converts text to speech with automatic fallback across
// speech-capable candidates.
func (c *Client) Speak(ctx context.Context, model, text, voice, outputFormat string, opts ...livellm.Option) ([]byte, error) {
	options := c.applyOptions(opts)
	required := livellm.NewCapabilitySet(livellm.CapabilitySpeak)
	cands := c.registry.Candidates(model, required)

	return dispatch(ctx, c, "speak", model, newRequestID(), cands, func(ctx context.Context, cand livellm.Candidate) ([]byte, error) {
		callCtx, cancel := withCallTimeout(ctx, options.CallTimeout)
		defer cancel()

		return c.runner.Speak(callCtx, cand.Creds, &livellm.SpeakRequest{
			Model:        cand.Model.Name,
			Text:         text,
			Voice:        voice,
			OutputFormat: outputFormat,
			GenConfig:    options.GenConfig,
		})
	})
}

// SpeakStream converts text to speech and streams audio chunks. As
// with RunStream, fallback stops once the first chunk is delivered.
func (c *Client) SpeakStream(ctx context.Context, model, text, voice, outputFormat string, opts ...livellm.Option) (<-chan livellm.AudioChunk, error) {
	options := c.applyOptions(opts)
	required := livellm.NewCapabilitySet(livellm.CapabilitySpeak)
	cands := c.registry.Candidates(model, required)

	return dispatch(ctx, c, "speak_stream", model, newRequestID(), cands, func(ctx context.Context, cand livellm.Candidate) (<-chan livellm.AudioChunk, error) {
		in, err := c.runner.SpeakStream(ctx, cand.Creds, &livellm.SpeakRequest{
			Model:        cand.Model.Name,
			Text:         text,
			Voice:        voice,
			OutputFormat: outputFormat,
			GenConfig:    options.GenConfig,
		})
		if err != nil {
			return nil, err
		}

		first, err := awaitFirstChunk(ctx, cand, in, options.CallTimeout)
		if err != nil {
			return nil, err
		}

		out := make(chan livellm.AudioChunk)
		go forwardAudio(ctx, in, out, first)
		return out, nil
	})
}

// Transcribe converts audio to text with automatic fallback across
// transcription-capable candidates.
func (c *Client) Transcribe(ctx context.Context, model string, file livellm.AudioFile, opts ...livellm.Option) (*livellm.TranscribeResponse, error) {
	options := c.applyOptions(opts)
	required := livellm.NewCapabilitySet(livellm.CapabilityTranscribe)
	cands := c.registry.Candidates(model, required)

	return dispatch(ctx, c, "transcribe", model, newRequestID(), cands, func(ctx context.Context, cand livellm.Candidate) (*livellm.TranscribeResponse, error) {
		callCtx, cancel := withCallTimeout(ctx, options.CallTimeout)
		defer cancel()

		return c.runner.Transcribe(callCtx, cand.Creds, &livellm.TranscribeRequest{
			Model:     cand.Model.Name,
			File:      file,
			Language:  options.Language,
			GenConfig: options.GenConfig,
		})
	})
}

// applyOptions merges client defaults with per-request options;
// per-request options win.
func (c *Client) applyOptions(opts []livellm.Option) *livellm.Options {
	merged := make([]livellm.Option, 0, len(c.defaultOpts)+len(opts))
	merged = append(merged, c.defaultOpts...)
	merged = append(merged, opts...)
	return livellm.ApplyOptions(merged...)
}
