// Package proxy implements the livellm.Runner transport against a
// LiveLLM proxy server, which exposes every provider behind a uniform
// HTTP API. Provider credentials travel as headers on each call.
package proxy

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	livellm "github.com/livellm/livellm-go"
	"github.com/livellm/livellm-go/retry"
)

// Client is an HTTP client for the LiveLLM proxy API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      retry.Config
}

// Option configures the proxy client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithRetryConfig sets the same-endpoint retry policy.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) {
		c.retry = cfg
	}
}

// New creates a proxy client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		retry:      retry.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes an agent request and returns the complete response.
func (c *Client) Run(ctx context.Context, creds livellm.Credentials, req *livellm.AgentRequest) (*livellm.AgentResponse, error) {
	return retry.Do(ctx, c.retry, func() (*livellm.AgentResponse, error) {
		resp, err := c.postJSON(ctx, creds, "/agent/run", normalizeTools(req))
		if err != nil {
			return nil, wrapNetError(creds, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError(creds, resp)
		}

		var out livellm.AgentResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, &livellm.TransportError{
				Provider: creds.Provider,
				Msg:      "malformed agent response",
				Err:      err,
			}
		}
		return &out, nil
	})
}

// RunStream executes an agent request and streams response chunks as
// newline-delimited JSON.
func (c *Client) RunStream(ctx context.Context, creds livellm.Credentials, req *livellm.AgentRequest) (<-chan livellm.StreamEvent, error) {
	return retry.DoStream(ctx, c.retry, func() (<-chan livellm.StreamEvent, error) {
		resp, err := c.postJSON(ctx, creds, "/agent/run_stream", normalizeTools(req))
		if err != nil {
			return nil, wrapNetError(creds, err)
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			return nil, statusError(creds, resp)
		}

		ch := make(chan livellm.StreamEvent)
		go func() {
			defer close(ch)
			defer resp.Body.Close()

			scanner := newLineScanner(resp.Body)
			for scanner.Scan() {
				line := bytes.TrimSpace(scanner.Bytes())
				if len(line) == 0 {
					continue
				}
				var chunk livellm.AgentResponse
				if err := json.Unmarshal(line, &chunk); err != nil {
					sendEvent(ctx, ch, livellm.StreamEvent{Err: &livellm.TransportError{
						Provider: creds.Provider,
						Msg:      "malformed stream chunk",
						Err:      err,
					}})
					return
				}
				if !sendEvent(ctx, ch, livellm.StreamEvent{Chunk: &chunk}) {
					return
				}
			}
			if err := scanner.Err(); err != nil {
				sendEvent(ctx, ch, livellm.StreamEvent{Err: &livellm.TransportError{
					Provider: creds.Provider,
					Msg:      "stream read failed",
					Err:      err,
				}})
			}
		}()
		return ch, nil
	})
}

// Speak converts text to speech and returns the raw audio bytes.
func (c *Client) Speak(ctx context.Context, creds livellm.Credentials, req *livellm.SpeakRequest) ([]byte, error) {
	return retry.Do(ctx, c.retry, func() ([]byte, error) {
		resp, err := c.postJSON(ctx, creds, "/audio/speak", req)
		if err != nil {
			return nil, wrapNetError(creds, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError(creds, resp)
		}
		return io.ReadAll(resp.Body)
	})
}

// SpeakStream converts text to speech and streams raw audio chunks.
func (c *Client) SpeakStream(ctx context.Context, creds livellm.Credentials, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error) {
	return retry.DoStream(ctx, c.retry, func() (<-chan livellm.AudioChunk, error) {
		resp, err := c.postJSON(ctx, creds, "/audio/speak_stream", req)
		if err != nil {
			return nil, wrapNetError(creds, err)
		}

		if resp.StatusCode != http.StatusOK {
			defer resp.Body.Close()
			return nil, statusError(creds, resp)
		}

		ch := make(chan livellm.AudioChunk)
		go func() {
			defer close(ch)
			defer resp.Body.Close()

			buf := make([]byte, 32*1024)
			for {
				n, err := resp.Body.Read(buf)
				if n > 0 {
					data := make([]byte, n)
					copy(data, buf[:n])
					if !sendChunk(ctx, ch, livellm.AudioChunk{Data: data}) {
						return
					}
				}
				if err == io.EOF {
					return
				}
				if err != nil {
					sendChunk(ctx, ch, livellm.AudioChunk{Err: &livellm.TransportError{
						Provider: creds.Provider,
						Msg:      "audio stream read failed",
						Err:      err,
					}})
					return
				}
			}
		}()
		return ch, nil
	})
}

// Transcribe converts audio to text via a multipart upload.
func (c *Client) Transcribe(ctx context.Context, creds livellm.Credentials, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error) {
	return retry.Do(ctx, c.retry, func() (*livellm.TranscribeResponse, error) {
		body, contentType, err := transcribeForm(req)
		if err != nil {
			return nil, err
		}

		httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/audio/transcribe", body)
		if err != nil {
			return nil, err
		}
		httpReq.Header.Set("Content-Type", contentType)
		setCredHeaders(httpReq, creds)

		resp, err := c.httpClient.Do(httpReq)
		if err != nil {
			return nil, wrapNetError(creds, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError(creds, resp)
		}

		var out livellm.TranscribeResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, &livellm.TransportError{
				Provider: creds.Provider,
				Msg:      "malformed transcribe response",
				Err:      err,
			}
		}
		return &out, nil
	})
}

// Ping checks that the proxy is reachable.
func (c *Client) Ping(ctx context.Context) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/ping", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ping failed: status %d", resp.StatusCode)
	}

	var out map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) postJSON(ctx context.Context, creds livellm.Credentials, path string, payload any) (*http.Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	setCredHeaders(req, creds)
	return c.httpClient.Do(req)
}

func setCredHeaders(req *http.Request, creds livellm.Credentials) {
	req.Header.Set("X-Api-Key", creds.APIKey)
	req.Header.Set("X-Provider", creds.Provider.String())
	if creds.BaseURL != "" {
		req.Header.Set("X-Base-Url", creds.BaseURL)
	}
}

// normalizeTools ensures the tools field marshals as an empty array
// rather than null; the proxy API requires it to be present.
func normalizeTools(req *livellm.AgentRequest) *livellm.AgentRequest {
	if req.Tools != nil {
		return req
	}
	out := *req
	out.Tools = []livellm.Tool{}
	return &out
}

func statusError(creds livellm.Credentials, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &livellm.TransportError{
		Provider:   creds.Provider,
		StatusCode: resp.StatusCode,
		Msg:        strings.TrimSpace(string(body)),
	}
}

func wrapNetError(creds livellm.Credentials, err error) error {
	return &livellm.TransportError{
		Provider: creds.Provider,
		Msg:      "request failed",
		Err:      err,
	}
}

func sendEvent(ctx context.Context, ch chan<- livellm.StreamEvent, ev livellm.StreamEvent) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func sendChunk(ctx context.Context, ch chan<- livellm.AudioChunk, chunk livellm.AudioChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}

var _ livellm.Runner = (*Client)(nil)
