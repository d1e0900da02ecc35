// Package livellm provides a client-side orchestration layer over
// interchangeable AI-model backends, with automatic fallback across a
// prioritized provider list and capability-aware transformation of
// binary message content.
//
// The root package holds the shared vocabulary: messages, provider and
// model declarations, capabilities, tool references, options, the
// error taxonomy, and the [Runner] transport interface. Orchestration
// lives in the [github.com/livellm/livellm-go/client] package.
//
// # Registry
//
// A [Registry] declares one primary provider and an ordered list of
// fallbacks, each serving models with declared capabilities:
//
//	registry, err := livellm.NewRegistry(
//	    livellm.OpenAIProvider(os.Getenv("OPENAI_API_KEY")),
//	    livellm.GoogleProvider(os.Getenv("GOOGLE_API_KEY")),
//	)
//
// # Running a request
//
//	c, err := client.New(client.Config{
//	    Registry: registry,
//	    ProxyURL: "https://proxy.example.com",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	resp, sent, err := c.Run(ctx, "gpt-4o", []livellm.Message{
//	    livellm.NewTextMessage(livellm.RoleUser, "Hello!"),
//	})
//
// The orchestrator tries the primary provider first, then each
// fallback, and aggregates per-candidate errors into a
// [FallbackError] when every candidate fails. The returned message
// list is the one actually sent on the successful attempt, so callers
// can observe any binary-to-text transformation that occurred.
//
// # Binary content
//
// Messages can carry raw audio, image, or video content:
//
//	msg := livellm.NewBinaryMessage(audioBytes, "audio/mpeg")
//
// When a candidate model cannot consume a binary category natively,
// the content is rewritten to text first: audio through a
// transcription-capable helper model, images and video through a
// description-capable one, both resolved from the same registry.
package livellm
