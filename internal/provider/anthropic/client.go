// Package anthropic adapts the Anthropic SDK to the livellm transport
// surface. Anthropic serves agent runs only; speech and transcription
// are rejected.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	livellm "github.com/livellm/livellm-go"
)

// Anthropic requires an explicit token cap on every request.
const defaultMaxTokens = 4096

// Client wraps the Anthropic SDK for a single credential set.
type Client struct {
	client *anthropic.Client
}

// New creates a new Anthropic client from provider credentials.
func New(creds livellm.Credentials) *Client {
	opts := []option.RequestOption{option.WithAPIKey(creds.APIKey)}
	if creds.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(creds.BaseURL))
	}
	client := anthropic.NewClient(opts...)
	return &Client{client: &client}
}

// Run executes an agent request and returns the complete response.
func (c *Client) Run(ctx context.Context, req *livellm.AgentRequest) (*livellm.AgentResponse, error) {
	params, err := buildMessageParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}

	content := ""
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	return &livellm.AgentResponse{
		Output: content,
		Usage: livellm.Usage{
			InputTokens:  int(resp.Usage.InputTokens),
			OutputTokens: int(resp.Usage.OutputTokens),
		},
	}, nil
}

// RunStream executes an agent request and streams output deltas. The
// final chunk carries the accumulated token usage.
func (c *Client) RunStream(ctx context.Context, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error) {
	params, err := buildMessageParams(req)
	if err != nil {
		return nil, err
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	ch := make(chan livellm.StreamEvent)

	go func() {
		defer close(ch)
		var acc anthropic.Message

		for stream.Next() {
			event := stream.Current()
			acc.Accumulate(event)

			if event.Type == "content_block_delta" {
				delta := event.AsContentBlockDelta()
				if textDelta := delta.Delta.AsTextDelta(); textDelta.Type == "text_delta" {
					ch <- livellm.StreamEvent{
						Chunk: &livellm.AgentResponse{Output: textDelta.Text},
					}
				}
			}
		}

		if err := stream.Err(); err != nil {
			ch <- livellm.StreamEvent{Err: wrapError(err)}
			return
		}

		ch <- livellm.StreamEvent{
			Chunk: &livellm.AgentResponse{
				Usage: livellm.Usage{
					InputTokens:  int(acc.Usage.InputTokens),
					OutputTokens: int(acc.Usage.OutputTokens),
				},
			},
		}
	}()

	return ch, nil
}

// Speak is not available on the Anthropic API.
func (c *Client) Speak(ctx context.Context, req *livellm.SpeakRequest) ([]byte, error) {
	return nil, errNotSupported("speech synthesis")
}

// SpeakStream is not available on the Anthropic API.
func (c *Client) SpeakStream(ctx context.Context, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error) {
	return nil, errNotSupported("speech synthesis")
}

// Transcribe is not available on the Anthropic API.
func (c *Client) Transcribe(ctx context.Context, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error) {
	return nil, errNotSupported("transcription")
}

func buildMessageParams(req *livellm.AgentRequest) (anthropic.MessageNewParams, error) {
	msgs, system, err := convertMessages(req.Messages)
	if err != nil {
		return anthropic.MessageNewParams{}, err
	}

	maxTokens := int64(defaultMaxTokens)
	if n, ok := intConfig(req.GenConfig, "max_tokens"); ok {
		maxTokens = int64(n)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if t, ok := floatConfig(req.GenConfig, "temperature"); ok {
		params.Temperature = anthropic.Float(t)
	}
	if p, ok := floatConfig(req.GenConfig, "top_p"); ok {
		params.TopP = anthropic.Float(p)
	}
	return params, nil
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
