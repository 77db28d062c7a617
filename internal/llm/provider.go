package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a chat-completion backend. Sage uses it for exactly one
// thing: generating domain knowledge packs as schema-validated JSON.
type Provider interface {
	// Generate sends a prompt and returns structured output. When the
	// request carries a Schema, Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Knowledge generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its native structured
	// output mechanism and validates the response against it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]. Zero means deterministic.
	Temperature float64
}

// Message is one turn of the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema is a named JSON Schema the response must conform to.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "domain-taxonomy".
	Name string

	// Description guides the model toward the expected shape.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when a Schema was requested, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token counts for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
