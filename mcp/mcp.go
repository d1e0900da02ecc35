// Package mcp helps reference Model Context Protocol servers in agent
// requests and inspect what tools they expose.
//
// Agent requests carry MCP servers by reference; the proxy connects
// and executes tool calls server-side. [Discover] exists for callers
// that want to verify a server and list its tools up front, with the
// same prefixing the proxy applies.
package mcp

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/client"
	mcpgo "github.com/mark3labs/mcp-go/mcp"

	livellm "github.com/livellm/livellm-go"
)

// ServerTool builds an MCP server reference for use in request options.
// The prefix namespaces the server's tool names so multiple servers can
// coexist in one request.
func ServerTool(url, prefix string) livellm.MCPServer {
	return livellm.MCPServer{URL: url, Prefix: prefix}
}

// Discover connects to a streamable-HTTP MCP server, lists its tools,
// and returns their prefixed names. The connection is closed before
// returning.
func Discover(ctx context.Context, url, prefix string) ([]string, error) {
	c, err := client.NewStreamableHttpClient(url)
	if err != nil {
		return nil, fmt.Errorf("creating MCP client: %w", err)
	}
	defer c.Close()

	if err := c.Start(ctx); err != nil {
		return nil, fmt.Errorf("starting MCP client: %w", err)
	}

	_, err = c.Initialize(ctx, mcpgo.InitializeRequest{
		Params: mcpgo.InitializeParams{
			ProtocolVersion: mcpgo.LATEST_PROTOCOL_VERSION,
			Capabilities:    mcpgo.ClientCapabilities{},
			ClientInfo: mcpgo.Implementation{
				Name:    "livellm-go",
				Version: "1.0.0",
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("initializing MCP session: %w", err)
	}

	result, err := c.ListTools(ctx, mcpgo.ListToolsRequest{})
	if err != nil {
		return nil, fmt.Errorf("listing MCP tools: %w", err)
	}

	names := make([]string, 0, len(result.Tools))
	for _, t := range result.Tools {
		names = append(names, PrefixedName(prefix, t.Name))
	}
	return names, nil
}

// PrefixedName returns the tool name as it appears to models when the
// server is registered under the given prefix.
func PrefixedName(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "_" + name
}
