package openai

import (
	"bytes"
	"context"
	"io"

	"github.com/openai/openai-go"

	livellm "github.com/livellm/livellm-go"
)

// Speak synthesizes speech and returns the complete audio payload.
func (c *Client) Speak(ctx context.Context, req *livellm.SpeakRequest) ([]byte, error) {
	resp, err := c.client.Audio.Speech.New(ctx, speechParams(req))
	if err != nil {
		return nil, wrapError(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &livellm.TransportError{
			Provider: livellm.ProviderOpenAI,
			Msg:      "reading speech response",
			Err:      err,
		}
	}
	return data, nil
}

// SpeakStream synthesizes speech and streams the audio payload in
// chunks as it arrives.
func (c *Client) SpeakStream(ctx context.Context, req *livellm.SpeakRequest) (<-chan livellm.AudioChunk, error) {
	resp, err := c.client.Audio.Speech.New(ctx, speechParams(req))
	if err != nil {
		return nil, wrapError(err)
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
				select {
				case ch <- livellm.AudioChunk{Data: data}:
				case <-ctx.Done():
					return
				}
			}
			if err == io.EOF {
				return
			}
			if err != nil {
				select {
				case ch <- livellm.AudioChunk{Err: &livellm.TransportError{
					Provider: livellm.ProviderOpenAI,
					Msg:      "reading speech stream",
					Err:      err,
				}}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return ch, nil
}

// Transcribe converts audio to text via the transcription endpoint.
func (c *Client) Transcribe(ctx context.Context, req *livellm.TranscribeRequest) (*livellm.TranscribeResponse, error) {
	params := openai.AudioTranscriptionNewParams{
		Model: openai.AudioModel(req.Model),
		File:  openai.File(bytes.NewReader(req.File.Content), req.File.Name, req.File.ContentType),
	}
	if req.Language != "" {
		params.Language = openai.String(req.Language)
	}

	resp, err := c.client.Audio.Transcriptions.New(ctx, params)
	if err != nil {
		return nil, wrapError(err)
	}
	return &livellm.TranscribeResponse{
		Text:     resp.Text,
		Language: req.Language,
	}, nil
}

func speechParams(req *livellm.SpeakRequest) openai.AudioSpeechNewParams {
	params := openai.AudioSpeechNewParams{
		Model: openai.SpeechModel(req.Model),
		Input: req.Text,
		Voice: openai.AudioSpeechNewParamsVoice(req.Voice),
	}
	if req.OutputFormat != "" {
		params.ResponseFormat = openai.AudioSpeechNewParamsResponseFormat(req.OutputFormat)
	}
	if s, ok := floatConfig(req.GenConfig, "speed"); ok {
		params.Speed = openai.Float(s)
	}
	return params
}
