// Package google adapts the Google GenAI SDK to the livellm transport
// surface. Gemini consumes audio, image, and video content natively
// via inline blobs; speech and transcription endpoints are rejected.
package google

import (
	"context"

	"google.golang.org/genai"

	livellm "github.com/livellm/livellm-go"
)

// Client wraps the Google GenAI SDK for a single credential set.
type Client struct {
	client *genai.Client
}

// New creates a new Google GenAI client from provider credentials.
func New(ctx context.Context, creds livellm.Credentials) (*Client, error) {
	cfg := &genai.ClientConfig{
		APIKey:  creds.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if creds.BaseURL != "" {
		cfg.HTTPOptions.BaseURL = creds.BaseURL
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &Client{client: client}, nil
}

// Run executes an agent request and returns the complete response.
func (c *Client) Run(ctx context.Context, req *livellm.AgentRequest) (*livellm.AgentResponse, error) {
	contents, config, err := buildGenerateParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return nil, wrapError(err)
	}

	content := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			content += part.Text
		}
	}

	usage := livellm.Usage{}
	if resp.UsageMetadata != nil {
		usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
		usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
	}

	return &livellm.AgentResponse{Output: content, Usage: usage}, nil
}

// RunStream executes an agent request and streams output deltas. The
// final chunk carries the accumulated token usage.
func (c *Client) RunStream(ctx context.Context, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error) {
	contents, config, err := buildGenerateParams(req)
	if err != nil {
		return nil, err
	}

	ch := make(chan livellm.StreamEvent)
	go func() {
		defer close(ch)

		var usage livellm.Usage
		for resp, err := range c.client.Models.GenerateContentStream(ctx, req.Model, contents, config) {
			if err != nil {
				ch <- livellm.StreamEvent{Err: wrapError(err)}
				return
			}
			if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
				for _, part := range resp.Candidates[0].Content.Parts {
					if part.Text != "" {
						ch <- livellm.StreamEvent{
							Chunk: &livellm.AgentResponse{Output: part.Text},
						}
					}
				}
			}
			if resp.UsageMetadata != nil {
				usage.InputTokens = int(resp.UsageMetadata.PromptTokenCount)
				usage.OutputTokens = int(resp.UsageMetadata.CandidatesTokenCount)
			}
		}

		ch <- livellm.StreamEvent{
			Chunk: &livellm.AgentResponse{Usage: usage},
		}
	}()

	return ch, nil
}

// Speak is not available on the Gemini API surface used here.
func (c *Client) Speak(ctx context.Context, req *livellm.SpeakRequest) ([]byte, error) {
	return nil, errNotSupported("speech synthesis")
}

// SpeakStream is not available on the Gemini API surface used here.
func (c *Client) SpeakStream(ctx context.Context, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error) {
	return nil, errNotSupported("speech synthesis")
}

// Transcribe is not available on the Gemini API surface used here.
func (c *Client) Transcribe(ctx context.Context, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error) {
	return nil, errNotSupported("transcription")
}

func buildGenerateParams(req *livellm.AgentRequest) ([]*genai.Content, *genai.GenerateContentConfig, error) {
	contents, err := convertMessages(req.Messages)
	if err != nil {
		return nil, nil, err
	}

	config := &genai.GenerateContentConfig{}
	if t, ok := floatConfig(req.GenConfig, "temperature"); ok {
		temp := float32(t)
		config.Temperature = &temp
	}
	if n, ok := intConfig(req.GenConfig, "max_tokens"); ok {
		config.MaxOutputTokens = int32(n)
	}
	if p, ok := floatConfig(req.GenConfig, "top_p"); ok {
		topP := float32(p)
		config.TopP = &topP
	}
	return contents, config, nil
}

func floatConfig(cfg map[string]any, key string) (float64, bool) {
	switch v := cfg[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	default:
		return 0, false
	}
}

func intConfig(cfg map[string]any, key string) (int, bool) {
	switch v := cfg[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
