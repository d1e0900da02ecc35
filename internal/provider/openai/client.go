// Package openai adapts the OpenAI SDK to the livellm transport
// surface: chat for agent runs, the speech endpoint for synthesis, and
// Whisper for transcription.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	livellm "github.com/livellm/livellm-go"
)

// Client wraps the OpenAI SDK for a single credential set.
type Client struct {
	client *openai.Client
}

// New creates a new OpenAI client from provider credentials.
func New(creds livellm.Credentials) *Client {
	opts := []option.RequestOption{option.WithAPIKey(creds.APIKey)}
	if creds.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(creds.BaseURL))
	}
	client := openai.NewClient(opts...)
	return &Client{client: &client}
}

// Run executes an agent request and returns the complete response.
func (c *Client) Run(ctx context.Context, req *livellm.AgentRequest) (*livellm.AgentResponse, error) {
	params, err := buildChatParams(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, &livellm.TransportError{
			Provider: livellm.ProviderOpenAI,
			Msg:      "response contained no choices",
		}
	}

	return &livellm.AgentResponse{
		Output: resp.Choices[0].Message.Content,
		Usage: livellm.Usage{
			InputTokens:  int(resp.Usage.PromptTokens),
			OutputTokens: int(resp.Usage.CompletionTokens),
		},
	}, nil
}

// RunStream executes an agent request and streams output deltas. The
// final chunk carries the accumulated token usage.
func (c *Client) RunStream(ctx context.Context, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error) {
	params, err := buildChatParams(req)
	if err != nil {
		return nil, err
	}
	params.StreamOptions = openai.ChatCompletionStreamOptionsParam{
		IncludeUsage: openai.Bool(true),
	}

	stream := c.client.Chat.Completions.NewStreaming(ctx, params)
	ch := make(chan livellm.StreamEvent)

	go func() {
		defer close(ch)
		var acc openai.ChatCompletionAccumulator

		for stream.Next() {
			chunk := stream.Current()
			acc.AddChunk(chunk)

			if len(chunk.Choices) > 0 && chunk.Choices[0].Delta.Content != "" {
				ch <- livellm.StreamEvent{
					Chunk: &livellm.AgentResponse{Output: chunk.Choices[0].Delta.Content},
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
					InputTokens:  int(acc.Usage.PromptTokens),
					OutputTokens: int(acc.Usage.CompletionTokens),
				},
			},
		}
	}()

	return ch, nil
}

func buildChatParams(req *livellm.AgentRequest) (openai.ChatCompletionNewParams, error) {
	msgs, err := convertMessages(req.Messages)
	if err != nil {
		return openai.ChatCompletionNewParams{}, err
	}

	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: msgs,
	}
	if t, ok := floatConfig(req.GenConfig, "temperature"); ok {
		params.Temperature = openai.Float(t)
	}
	if n, ok := intConfig(req.GenConfig, "max_tokens"); ok {
		params.MaxTokens = openai.Int(int64(n))
	}
	if p, ok := floatConfig(req.GenConfig, "top_p"); ok {
		params.TopP = openai.Float(p)
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
