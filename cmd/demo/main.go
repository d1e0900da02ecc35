// Command demo is an interactive chat that exercises the fallback
// client. It builds a registry from whichever API keys are present in
// the environment, streams responses, and prints orchestration events
// as candidates are tried.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	livellm "github.com/livellm/livellm-go"
	"github.com/livellm/livellm-go/client"
	"github.com/livellm/livellm-go/direct"
)

var reader = bufio.NewReader(os.Stdin)

func main() {
	godotenv.Load()
	ctx := context.Background()

	fmt.Println("╔════════════════════════════════════════╗")
	fmt.Println("║        livellm - Fallback Demo         ║")
	fmt.Println("╚════════════════════════════════════════╝")
	fmt.Println()

	registry, err := buildRegistry()
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}

	fmt.Println("Provider order:")
	for i, p := range registry.Providers() {
		label := "fallback"
		if i == 0 {
			label = "primary"
		}
		fmt.Printf("  [%d] %s (%s, %d models)\n", i+1, p.Creds.Provider, label, len(p.Models))
	}
	fmt.Println()

	events := make(chan client.Event, 64)
	go printEvents(events)

	cfg := client.Config{
		Registry: registry,
		Events:   events,
	}
	if proxyURL := os.Getenv("LIVELLM_PROXY_URL"); proxyURL != "" {
		cfg.ProxyURL = proxyURL
		fmt.Printf("Transport: proxy at %s\n\n", proxyURL)
	} else {
		cfg.Runner = direct.New()
		fmt.Println("Transport: direct provider SDKs")
		fmt.Println()
	}

	c, err := client.New(cfg, client.WithDefaultTemperature(0.7))
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return
	}

	model := os.Getenv("LIVELLM_MODEL")
	if model == "" {
		model = registry.Primary().Models[0].Name
	}
	fmt.Printf("Model: %s (type a message, or 'quit' to exit)\n\n", model)

	var history []livellm.Message
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			return
		}

		history = append(history, livellm.NewTextMessage(livellm.RoleUser, line))
		stream, _, err := c.RunStream(ctx, model, history)
		if err != nil {
			fmt.Printf("✗ %v\n", err)
			history = history[:len(history)-1]
			continue
		}

		var output strings.Builder
		for ev := range stream {
			if ev.Err != nil {
				fmt.Printf("\n✗ %v\n", ev.Err)
				break
			}
			fmt.Print(ev.Chunk.Output)
			output.WriteString(ev.Chunk.Output)
		}
		fmt.Println()
		fmt.Println()
		history = append(history, livellm.NewTextMessage(livellm.RoleModel, output.String()))
	}
}

// buildRegistry assembles provider configurations from environment API
// keys, in a fixed preference order.
func buildRegistry() (*livellm.Registry, error) {
	var configs []livellm.ProviderConfig
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		configs = append(configs, livellm.OpenAIProvider(key))
	}
	if key := os.Getenv("GOOGLE_API_KEY"); key != "" {
		configs = append(configs, livellm.GoogleProvider(key))
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		configs = append(configs, livellm.AnthropicProvider(key))
	}
	if len(configs) == 0 {
		return nil, fmt.Errorf("no API keys found; set OPENAI_API_KEY, GOOGLE_API_KEY, or ANTHROPIC_API_KEY")
	}
	return livellm.NewRegistry(configs[0], configs[1:]...)
}

func printEvents(events <-chan client.Event) {
	for ev := range events {
		switch ev.Type {
		case client.EventCandidateError:
			fmt.Printf("  ⚠ attempt %d failed on %s/%s: %v\n", ev.Attempt, ev.Provider, ev.Model, ev.Error)
		case client.EventTransform:
			fmt.Printf("  ↻ transforming binary content for %s/%s\n", ev.Provider, ev.Model)
		}
	}
}
