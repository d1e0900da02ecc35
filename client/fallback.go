package client

import (
	"context"
	"fmt"
	"time"

	livellm "github.com/livellm/livellm-go"
)

// dispatch walks the candidate sequence in order, invoking fn for each
// candidate until one succeeds. Every failure is recorded with its
// candidate; when the sequence is exhausted the recorded attempts are
// aggregated into a FallbackError. Cancellation stops the loop before
// the next attempt begins.
func dispatch[T any](ctx context.Context, c *Client, op, model, requestID string, cands []livellm.Candidate, fn func(context.Context, livellm.Candidate) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	if len(cands) == 0 {
		err := &livellm.FallbackError{Model: model}
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: op,
			RequestID: requestID,
			Error:     err,
		})
		return zero, err
	}

	attempts := make([]livellm.Attempt, 0, len(cands))
	for i, cand := range cands {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		emit(c.events, Event{
			Type:      EventCandidateStart,
			Operation: op,
			RequestID: requestID,
			Provider:  cand.Creds.Provider,
			Model:     cand.Model.Name,
			Attempt:   i + 1,
		})

		attemptStart := time.Now()
		result, err := fn(ctx, cand)
		if err == nil {
			emit(c.events, Event{
				Type:      EventRequestComplete,
				Operation: op,
				RequestID: requestID,
				Provider:  cand.Creds.Provider,
				Model:     cand.Model.Name,
				Attempt:   i + 1,
				Duration:  time.Since(start),
			})
			return result, nil
		}

		attempts = append(attempts, livellm.Attempt{
			Provider: cand.Creds.Provider,
			Model:    cand.Model.Name,
			Err:      err,
		})
		emit(c.events, Event{
			Type:      EventCandidateError,
			Operation: op,
			RequestID: requestID,
			Provider:  cand.Creds.Provider,
			Model:     cand.Model.Name,
			Attempt:   i + 1,
			Duration:  time.Since(attemptStart),
			Error:     err,
		})
	}

	err := &livellm.FallbackError{Model: model, Attempts: attempts}
	emit(c.events, Event{
		Type:      EventRequestError,
		Operation: op,
		RequestID: requestID,
		Duration:  time.Since(start),
		Error:     err,
	})
	return zero, err
}

// selectionRequirement is the capability set candidates are selected
// against. Forced transformation rewrites every transformable category
// up front, so selection only needs the post-transform requirement.
func selectionRequirement(required livellm.CapabilitySet, options *livellm.Options) livellm.CapabilitySet {
	if options.ForceTransform {
		return required.Reduced()
	}
	return required
}

// toolIncapable lists providers that cannot serve tool use at all.
var toolIncapable = map[livellm.Provider]bool{
	livellm.ProviderElevenLabs: true,
}

// checkToolSupport rejects a candidate whose provider cannot serve tool
// use. It runs before any transformation so an unusable candidate never
// triggers billed helper calls.
func checkToolSupport(cand livellm.Candidate, tools []livellm.Tool) error {
	if len(tools) == 0 {
		return nil
	}
	if toolIncapable[cand.Creds.Provider] {
		return &livellm.TransportError{
			Provider:   cand.Creds.Provider,
			StatusCode: 400,
			Msg:        fmt.Sprintf("provider %s does not support tool use", cand.Creds.Provider),
		}
	}
	return nil
}

// withCallTimeout bounds a single transport call. The timeout is per
// call and never accumulated across candidates.
func withCallTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// awaitFirstEvent waits for the first chunk of a freshly established
// stream. Failures here happened before any output reached the caller
// and remain recoverable by fallback.
func awaitFirstEvent(ctx context.Context, cand livellm.Candidate, in <-chan livellm.StreamEvent, timeout time.Duration) (livellm.StreamEvent, error) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case ev, ok := <-in:
		if !ok {
			return livellm.StreamEvent{}, emptyStreamError(cand)
		}
		if ev.Err != nil {
			return livellm.StreamEvent{}, ev.Err
		}
		return ev, nil
	case <-timer:
		return livellm.StreamEvent{}, firstChunkTimeout(cand)
	case <-ctx.Done():
		return livellm.StreamEvent{}, ctx.Err()
	}
}

// awaitFirstChunk is awaitFirstEvent for audio streams.
func awaitFirstChunk(ctx context.Context, cand livellm.Candidate, in <-chan livellm.AudioChunk, timeout time.Duration) (livellm.AudioChunk, error) {
	var timer <-chan time.Time
	if timeout > 0 {
		t := time.NewTimer(timeout)
		defer t.Stop()
		timer = t.C
	}

	select {
	case chunk, ok := <-in:
		if !ok {
			return livellm.AudioChunk{}, emptyStreamError(cand)
		}
		if chunk.Err != nil {
			return livellm.AudioChunk{}, chunk.Err
		}
		return chunk, nil
	case <-timer:
		return livellm.AudioChunk{}, firstChunkTimeout(cand)
	case <-ctx.Done():
		return livellm.AudioChunk{}, ctx.Err()
	}
}

func emptyStreamError(cand livellm.Candidate) error {
	return &livellm.TransportError{
		Provider: cand.Creds.Provider,
		Msg:      "stream ended before any output",
	}
}

func firstChunkTimeout(cand livellm.Candidate) error {
	return &livellm.TransportError{
		Provider: cand.Creds.Provider,
		Msg:      "timed out waiting for first chunk",
		Err:      context.DeadlineExceeded,
	}
}

// forwardStream relays a committed stream to the caller. Any failure
// from here on is surfaced as a MidStreamError; the candidate is never
// abandoned once output has been delivered.
func forwardStream(ctx context.Context, in <-chan livellm.StreamEvent, out chan<- livellm.StreamEvent, first livellm.StreamEvent) {
	defer close(out)

	if !sendStreamEvent(ctx, out, first) {
		return
	}
	for ev := range in {
		if ev.Err != nil {
			sendStreamEvent(ctx, out, livellm.StreamEvent{Err: &livellm.MidStreamError{Err: ev.Err}})
			return
		}
		if !sendStreamEvent(ctx, out, ev) {
			return
		}
	}
}

// forwardAudio relays a committed audio stream to the caller.
func forwardAudio(ctx context.Context, in <-chan livellm.AudioChunk, out chan<- livellm.AudioChunk, first livellm.AudioChunk) {
	defer close(out)

	if !sendAudioChunk(ctx, out, first) {
		return
	}
	for chunk := range in {
		if chunk.Err != nil {
			sendAudioChunk(ctx, out, livellm.AudioChunk{Err: &livellm.MidStreamError{Err: chunk.Err}})
			return
		}
		if !sendAudioChunk(ctx, out, chunk) {
			return
		}
	}
}

func sendStreamEvent(ctx context.Context, ch chan<- livellm.StreamEvent, ev livellm.StreamEvent) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

func sendAudioChunk(ctx context.Context, ch chan<- livellm.AudioChunk, chunk livellm.AudioChunk) bool {
	select {
	case ch <- chunk:
		return true
	case <-ctx.Done():
		return false
	}
}
