// Security tests for LLM providers to ensure error messages don't leak API keys.
package llm

import (
	"context"
	"strings"
	"testing"
	"time"
)

// TestOpenAIErrorNoAPIKeyLeak verifies OpenAI errors don't contain API keys
func TestOpenAIErrorNoAPIKeyLeak(t *testing.T) {
	// Use intentionally invalid API key
	testKey := "sk-test-invalid-key-12345xyz"
	provider := NewOpenAIProvider(testKey, "gpt-4o", 100, 0.7)

	// Force error with invalid key
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := provider.Complete(ctx, []ChatMessage{
		{Role: "user", Content: "test"},
	}, CallOptions{})

	// Should return an error
	if err == nil {
		t.Skip("Expected error with invalid API key, but got success - skipping leak test")
	}

	// Verify error doesn't contain the API key
	errStr := err.Error()
	if strings.Contains(errStr, testKey) {
		t.Errorf("OpenAI error message leaked API key: %v", errStr)
	}

	if strings.Contains(errStr, "Authorization:") {
		t.Errorf("OpenAI error exposed Authorization header: %v", errStr)
	}
}

// TestAnthropicErrorNoAPIKeyLeak verifies Anthropic errors don't contain API keys
func TestAnthropicErrorNoAPIKeyLeak(t *testing.T) {
	testKey := "sk-ant-REDACTED"
	provider := NewAnthropicProvider(testKey, "claude-sonnet-4-20250514", 100, 0.7)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := provider.Complete(ctx, []ChatMessage{
		{Role: "user", Content: "test"},
	}, CallOptions{})

	if err == nil {
		t.Skip("Expected error with invalid API key, but got success - skipping leak test")
	}

	errStr := err.Error()
	if strings.Contains(errStr, testKey) {
		t.Errorf("Anthropic error message leaked API key: %v", errStr)
	}

	if strings.Contains(errStr, "x-api-key:") || strings.Contains(errStr, "X-API-Key:") {
		t.Errorf("Anthropic error exposed API key header: %v", errStr)
	}
}

func TestParseProviderType(t *testing.T) {
	tests := []struct {
		input   string
		want    ProviderType
		wantErr bool
	}{
		{"ollama", ProviderOllama, false},
		{"local", ProviderOllama, false},
		{"openai", ProviderOpenAI, false},
		{"GPT", ProviderOpenAI, false},
		{"claude", ProviderAnthropic, false},
		{"anthropic", ProviderAnthropic, false},
		{"deepseek", ProviderDeepSeek, false},
		{"google", ProviderGemini, false},
		{"gemini", ProviderGemini, false},
		{"mystery", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseProviderType(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseProviderType(%q): expected error, got %v", tt.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseProviderType(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseProviderType(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestProviderBuilderDefaults(t *testing.T) {
	// Ollama needs no API key and should build straight from env defaults.
	provider, err := ProviderOllama.FromEnv()
	if err != nil {
		t.Fatalf("ProviderOllama.FromEnv() failed: %v", err)
	}
	if provider.Name() != "ollama" {
		t.Errorf("Name() = %q, want %q", provider.Name(), "ollama")
	}
	if provider.Model() != ModelOllamaLlama31 {
		t.Errorf("Model() = %q, want %q", provider.Model(), ModelOllamaLlama31)
	}
}

func TestCallOptionsWithTemperature(t *testing.T) {
	opts := CallOptions{}.WithTemperature(0.9)
	if opts.Temperature == nil || *opts.Temperature != 0.9 {
		t.Errorf("WithTemperature did not set override: %+v", opts)
	}

	// The original options are unchanged (value semantics).
	base := CallOptions{}
	_ = base.WithTemperature(0.1)
	if base.Temperature != nil {
		t.Error("WithTemperature mutated the receiver")
	}
}
