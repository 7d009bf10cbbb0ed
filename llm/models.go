// Package llm provides shared data models for LLM providers.
package llm

import "encoding/json"

// ChatMessage represents one turn in a conversation transcript.
type ChatMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // For assistant messages with tool calls
	ToolCallID string     `json:"tool_call_id,omitempty"` // For tool result messages
}

// ToolCall represents a tool invocation requested by the model.
// The ID is an opaque correlation token: the matching tool result
// message must carry the same value in ToolCallID.
type ToolCall struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolDefinition declares a callable tool to the model.
type ToolDefinition struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	Parameters  map[string]interface{} `json:"parameters"` // JSON Schema
}

// SystemMessage creates a system message.
func SystemMessage(content string) ChatMessage {
	return ChatMessage{Role: "system", Content: content}
}

// UserMessage creates a user message.
func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: "user", Content: content}
}

// AssistantMessage creates an assistant message.
func AssistantMessage(content string) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content}
}

// AssistantToolCallMessage creates an assistant message carrying tool calls,
// preserving each call's correlation token and raw arguments.
func AssistantToolCallMessage(content string, calls []ToolCall) ChatMessage {
	return ChatMessage{Role: "assistant", Content: content, ToolCalls: calls}
}

// ToolResultMessage creates a tool result message answering the call
// identified by callID.
func ToolResultMessage(callID, content string) ChatMessage {
	return ChatMessage{Role: "tool", Content: content, ToolCallID: callID}
}

// CallOptions carries per-request options for a completion call.
// The zero value uses the provider's configured defaults with tools disabled.
type CallOptions struct {
	// Tools enables function calling with the given declarations.
	// Empty means tools are disabled for this call.
	Tools []ToolDefinition

	// Temperature overrides the provider default when non-nil.
	Temperature *float32

	// MaxTokens overrides the provider default when positive.
	MaxTokens int32
}

// WithTemperature returns options with a temperature override applied.
func (o CallOptions) WithTemperature(t float32) CallOptions {
	o.Temperature = &t
	return o
}

// LLMResponse represents a single structured response from a provider.
type LLMResponse struct {
	Content   string
	ToolCalls []ToolCall // Tool calls requested by the model, in the order returned
	Usage     *TokenUsage
}

// HasToolCalls reports whether the model requested any tool invocations.
func (r LLMResponse) HasToolCalls() bool {
	return len(r.ToolCalls) > 0
}

// TokenUsage contains token usage statistics.
type TokenUsage struct {
	PromptTokens     uint32
	CompletionTokens uint32
	TotalTokens      uint32
}
