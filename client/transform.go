package client

import (
	"context"
	"fmt"

	livellm "github.com/livellm/livellm-go"
)

const imageDescriptionPrompt = `You will act as OCR.
You will be given an image file and you will need to fully describe the image in detail.
Return ONLY description of the image. Nothing more
The description should be in a language that is most likely to be the language of the image.
Return result like this:
<image_description>
[description of the image]
</image_description>`

const videoDescriptionPrompt = `You will act as VSR.
You will be given a video file and you will need to fully describe the video in detail.
Return ONLY description of the video. Nothing more
The description should be in a language that is most likely to be the language of the video.
Return result like this:
<video_description>
[description of the video]
</video_description>`

// prepareMessages returns the message list to send for one candidate:
// the caller's messages untouched when the candidate can consume them,
// or a fresh list with unconsumable binary content rewritten to text.
func (c *Client) prepareMessages(ctx context.Context, cand livellm.Candidate, messages []livellm.Message, required livellm.CapabilitySet, options *livellm.Options, op, requestID string) ([]livellm.Message, error) {
	caps := cand.Model.CapabilitySet()
	if options.Capabilities != nil {
		caps = livellm.NewCapabilitySet(options.Capabilities...)
	}

	if !options.ForceTransform && caps.Superset(required) {
		return messages, nil
	}
	if !hasBinary(messages) {
		return messages, nil
	}

	emit(c.events, Event{
		Type:      EventTransform,
		Operation: op,
		RequestID: requestID,
		Provider:  cand.Creds.Provider,
		Model:     cand.Model.Name,
	})
	return c.transformMessages(ctx, messages, caps, options)
}

// transformMessages rewrites every binary message the candidate cannot
// consume (or all of them under force-transform) into a text message,
// preserving order and leaving the caller's slice untouched.
func (c *Client) transformMessages(ctx context.Context, messages []livellm.Message, caps livellm.CapabilitySet, options *livellm.Options) ([]livellm.Message, error) {
	out := make([]livellm.Message, len(messages))
	copy(out, messages)

	for i, m := range messages {
		if !m.IsBinary() {
			continue
		}
		needed, ok := livellm.CapabilityFor(m.Category())
		if !ok {
			return nil, &livellm.TransformError{
				MimeType: m.MimeType,
				Err:      fmt.Errorf("unsupported mime type"),
			}
		}
		if !options.ForceTransform && caps.Has(needed) {
			continue
		}

		text, err := c.binaryToText(ctx, m, options)
		if err != nil {
			return nil, &livellm.TransformError{MimeType: m.MimeType, Err: err}
		}
		if m.Caption != "" {
			text = m.Caption + "\n\n" + text
		}
		out[i] = livellm.NewTextMessage(m.Role, text)
	}
	return out, nil
}

// binaryToText converts one binary message to text via a
// capability-matched helper model. Helper resolution is a bounded,
// single-candidate sub-resolution: the first capable model in
// configured order gets exactly one attempt, with no fallback.
func (c *Client) binaryToText(ctx context.Context, m livellm.Message, options *livellm.Options) (string, error) {
	switch m.Category() {
	case livellm.FileAudio:
		return c.transcribeBinary(ctx, m, options)
	case livellm.FileImage:
		return c.describeBinary(ctx, m, livellm.CapabilityImageAgent, imageDescriptionPrompt, options)
	case livellm.FileVideo:
		return c.describeBinary(ctx, m, livellm.CapabilityVideoAgent, videoDescriptionPrompt, options)
	default:
		return "", fmt.Errorf("unsupported mime type %s", m.MimeType)
	}
}

func (c *Client) transcribeBinary(ctx context.Context, m livellm.Message, options *livellm.Options) (string, error) {
	helper, ok := c.registry.FindCapable(livellm.CapabilityTranscribe)
	if !ok {
		return "", &livellm.CapabilityError{Capability: livellm.CapabilityTranscribe}
	}

	data, err := m.Bytes()
	if err != nil {
		return "", err
	}

	callCtx, cancel := withCallTimeout(ctx, options.CallTimeout)
	defer cancel()

	resp, err := c.runner.Transcribe(callCtx, helper.Creds, &livellm.TranscribeRequest{
		Model: helper.Model.Name,
		File: livellm.AudioFile{
			Name:        "audio",
			Content:     data,
			ContentType: m.MimeType,
		},
		Language: options.Language,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}

func (c *Client) describeBinary(ctx context.Context, m livellm.Message, needed livellm.Capability, prompt string, options *livellm.Options) (string, error) {
	helper, ok := c.registry.FindCapable(needed)
	if !ok {
		return "", &livellm.CapabilityError{Capability: needed}
	}

	callCtx, cancel := withCallTimeout(ctx, options.CallTimeout)
	defer cancel()

	resp, err := c.runner.Run(callCtx, helper.Creds, &livellm.AgentRequest{
		Model: helper.Model.Name,
		Messages: []livellm.Message{
			livellm.NewSystemMessage(prompt),
			m,
		},
		GenConfig: map[string]any{"temperature": 0.0},
	})
	if err != nil {
		return "", err
	}
	return resp.Output, nil
}

func hasBinary(messages []livellm.Message) bool {
	for _, m := range messages {
		if m.IsBinary() {
			return true
		}
	}
	return false
}
