// Agent configuration types.
//
// Information Hiding:
// - Default values hidden
// - Validation logic hidden

package agent

import "fmt"

// Config holds the loop parameters for one agent.
type Config struct {
	// SystemPrompt guides the agent's behavior.
	SystemPrompt string

	// MaxIterations caps the tool-call rounds in one chat turn.
	MaxIterations int

	// MaxCards caps the phone cards attached to one result.
	MaxCards int

	// Temperature for the main completion calls.
	Temperature float32

	// MaxTokens caps each completion response.
	MaxTokens int32
}

// DefaultConfig returns the standard shopping agent configuration.
func DefaultConfig() Config {
	return Config{
		SystemPrompt:  FullSystemPrompt(),
		MaxIterations: 5,
		MaxCards:      5,
		Temperature:   0.7,
		MaxTokens:     2048,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.MaxIterations < 1 {
		return fmt.Errorf("max iterations must be at least 1, got %d", c.MaxIterations)
	}
	if c.MaxCards < 0 {
		return fmt.Errorf("max cards must not be negative, got %d", c.MaxCards)
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("max tokens must be at least 1, got %d", c.MaxTokens)
	}
	return nil
}
