package livellm

// ToolKind identifies the type of a tool reference.
type ToolKind string

const (
	ToolKindWebSearch ToolKind = "web_search"
	ToolKindMCPServer ToolKind = "mcp_streamable_server"
)

// SearchContextSize controls how much context a web search retrieves.
type SearchContextSize string

const (
	SearchContextLow    SearchContextSize = "low"
	SearchContextMedium SearchContextSize = "medium"
	SearchContextHigh   SearchContextSize = "high"
)

// Tool is a reference to a capability the model may call during a run.
type Tool interface {
	Kind() ToolKind
}

// WebSearch enables provider-side web search for a run.
type WebSearch struct {
	// SearchContextSize defaults to medium when empty.
	SearchContextSize SearchContextSize `json:"search_context_size,omitempty"`
}

// Kind returns ToolKindWebSearch.
func (WebSearch) Kind() ToolKind { return ToolKindWebSearch }

// MCPServer references a remote MCP server reachable over streamable
// HTTP. Its tools are exposed to the model under the given namespace
// prefix.
type MCPServer struct {
	URL    string `json:"url"`
	Prefix string `json:"prefix"`
}

// Kind returns ToolKindMCPServer.
func (MCPServer) Kind() ToolKind { return ToolKindMCPServer }
