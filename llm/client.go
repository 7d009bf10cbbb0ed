// Client - Simple wrapper around providers.

package llm

import (
	"context"
)

// Client wraps a Provider with a simple interface.
type Client struct {
	provider Provider
}

// NewClient creates a new LLM client from a provider.
func NewClient(provider Provider) *Client {
	return &Client{provider: provider}
}

// Complete sends a completion request with the given options.
func (c *Client) Complete(ctx context.Context, messages []ChatMessage, opts CallOptions) (LLMResponse, error) {
	return c.provider.Complete(ctx, messages, opts)
}

// Text sends a tool-free completion request and returns just the content.
// Used for side-channel calls (status lines) that never carry tools.
func (c *Client) Text(ctx context.Context, messages []ChatMessage, temperature float32) (string, error) {
	response, err := c.provider.Complete(ctx, messages, CallOptions{}.WithTemperature(temperature))
	if err != nil {
		return "", err
	}
	return response.Content, nil
}

// Provider returns the underlying provider.
func (c *Client) Provider() Provider {
	return c.provider
}
