// Package llm provides LLM provider abstractions.
//
// LLM Provider interface - the abstract interface for LLM providers.
// Each provider implementation hides:
// - API client initialization and authentication
// - Request/response format conversion
// - Provider-specific error handling
package llm

import (
	"context"
)

// Provider defines the abstract interface for LLM providers.
// Implementations hide provider-specific details while exposing
// a single structured completion call.
type Provider interface {
	// Name returns the provider name (for logging/debugging).
	Name() string

	// Model returns the current model being used.
	Model() string

	// Complete sends a chat completion request. When opts.Tools is
	// non-empty the model may answer with tool calls in
	// LLMResponse.ToolCalls instead of (or alongside) text content.
	Complete(ctx context.Context, messages []ChatMessage, opts CallOptions) (LLMResponse, error)
}
