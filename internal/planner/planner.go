// Package planner defines the contract between the audit core and the
// LLM backend that decides which tools to call. The core never assumes a
// particular backend; both the Gemini API and Vertex AI adapters satisfy
// Provider, and tests substitute fakes.
package planner

import "context"

// Schema types, mirroring JSON Schema's primitive kinds.
const (
	TypeObject  = "object"
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Schema describes the shape of a tool's input. Backends convert it to
// their native function-declaration types.
type Schema struct {
	Type        string
	Description string
	Properties  map[string]*Schema // object only
	Items       *Schema            // array only
	Required    []string           // object only
}

// ToolDecl is one callable operation exposed to the planner.
type ToolDecl struct {
	Name        string
	Description string
	Params      *Schema
}

// ToolCall is the planner asking for one tool invocation.
type ToolCall struct {
	Name string
	Args map[string]any
}

// ToolResult carries a tool's outcome back to the planner. Execution
// failures go in as observations under an "error" key rather than
// breaking the session.
type ToolResult struct {
	Name     string
	Response map[string]any
}

// Turn is one model response: free text, tool calls, or both. A turn with
// no calls ends the instruction.
type Turn struct {
	Text  string
	Calls []ToolCall
}

// Session is a single conversation with the planner. Calls are sequential;
// a Session is not safe for concurrent use.
type Session interface {
	// Send delivers the user instruction and returns the first turn.
	Send(ctx context.Context, text string) (*Turn, error)

	// Reply delivers tool results for the previous turn's calls and
	// returns the next turn.
	Reply(ctx context.Context, results []ToolResult) (*Turn, error)
}

// Provider is a planner backend.
type Provider interface {
	Name() string

	// NewSession starts a conversation primed with the system prompt and
	// the tool catalog.
	NewSession(ctx context.Context, systemPrompt string, tools []ToolDecl) (Session, error)
}
