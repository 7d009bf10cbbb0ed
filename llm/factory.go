// LLM Provider Factory - Ergonomic builder-first API for creating LLM providers.
//
// Quick Start:
//
//	// Simplest: use defaults, read API key from environment
//	ollama, err := llm.ProviderOllama.FromEnv()   // local, no key required
//	openai, err := llm.ProviderOpenAI.FromEnv()
//
//	// With custom model
//	flash, err := llm.ProviderGemini.Model(llm.ModelGeminiFlash3).FromEnv()
//
//	// Full configuration
//	custom, err := llm.ProviderAnthropic.
//	    Model(llm.ModelAnthropicClaudeSonnet4).
//	    MaxTokens(2048).
//	    Temperature(0.7).
//	    FromEnv()

package llm

import (
	"fmt"
	"os"
	"strings"
)

// ProviderType represents supported LLM providers.
type ProviderType int

const (
	// ProviderOllama is a local Ollama endpoint speaking the OpenAI protocol.
	ProviderOllama ProviderType = iota
	// ProviderOpenAI is the OpenAI provider (GPT models).
	ProviderOpenAI
	// ProviderAnthropic is the Anthropic provider (Claude models).
	ProviderAnthropic
	// ProviderDeepSeek is the DeepSeek provider (OpenAI-compatible).
	ProviderDeepSeek
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini
)

// DefaultOllamaBaseURL is where a local Ollama serves its OpenAI-compatible API.
const DefaultOllamaBaseURL = "http://localhost:11434/v1"

// DeepSeekBaseURL is the DeepSeek OpenAI-compatible endpoint.
const DeepSeekBaseURL = "https://api.deepseek.com"

// String returns the string representation of the provider type.
func (p ProviderType) String() string {
	switch p {
	case ProviderOllama:
		return "ollama"
	case ProviderOpenAI:
		return "openai"
	case ProviderAnthropic:
		return "anthropic"
	case ProviderDeepSeek:
		return "deepseek"
	case ProviderGemini:
		return "gemini"
	default:
		return "unknown"
	}
}

// EnvVar returns the environment variable name for this provider's API key.
// Ollama needs no key and returns the empty string.
func (p ProviderType) EnvVar() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderDeepSeek:
		return "DEEPSEEK_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	default:
		return ""
	}
}

// DefaultModel returns the default model for this provider.
func (p ProviderType) DefaultModel() string {
	switch p {
	case ProviderOllama:
		return ModelOllamaLlama31
	case ProviderOpenAI:
		return ModelOpenAIGPT4o
	case ProviderAnthropic:
		return ModelAnthropicClaudeSonnet4
	case ProviderDeepSeek:
		return ModelDeepSeekChat
	case ProviderGemini:
		return ModelGeminiFlash25
	default:
		return ""
	}
}

// ParseProviderType parses a provider from string (case-insensitive).
func ParseProviderType(s string) (ProviderType, error) {
	switch strings.ToLower(s) {
	case "ollama", "local":
		return ProviderOllama, nil
	case "openai", "gpt":
		return ProviderOpenAI, nil
	case "anthropic", "claude":
		return ProviderAnthropic, nil
	case "deepseek":
		return ProviderDeepSeek, nil
	case "gemini", "google":
		return ProviderGemini, nil
	default:
		return 0, fmt.Errorf("unknown provider: %s", s)
	}
}

// FromEnv creates a provider with defaults, reading API key from environment.
func (p ProviderType) FromEnv() (Provider, error) {
	return NewProviderBuilder(p).FromEnv()
}

// Model starts configuring this provider with a specific model.
func (p ProviderType) Model(model string) *ProviderBuilder {
	return NewProviderBuilder(p).Model(model)
}

// APIKey creates a provider with an explicit API key (uses defaults for everything else).
func (p ProviderType) APIKey(key string) (Provider, error) {
	return NewProviderBuilder(p).APIKey(key)
}

// ProviderBuilder is a builder for configuring LLM providers.
type ProviderBuilder struct {
	providerType ProviderType
	model        string
	baseURL      string
	maxTokens    uint32
	temperature  *float32
}

// NewProviderBuilder creates a new builder for the given provider.
func NewProviderBuilder(providerType ProviderType) *ProviderBuilder {
	return &ProviderBuilder{
		providerType: providerType,
	}
}

// Model sets the model to use.
func (b *ProviderBuilder) Model(model string) *ProviderBuilder {
	b.model = model
	return b
}

// BaseURL overrides the endpoint for OpenAI-compatible providers.
func (b *ProviderBuilder) BaseURL(url string) *ProviderBuilder {
	b.baseURL = url
	return b
}

// MaxTokens sets maximum tokens for responses.
func (b *ProviderBuilder) MaxTokens(tokens uint32) *ProviderBuilder {
	b.maxTokens = tokens
	return b
}

// Temperature sets temperature (0.0 = deterministic, 1.0 = creative).
func (b *ProviderBuilder) Temperature(temp float32) *ProviderBuilder {
	b.temperature = &temp
	return b
}

// FromEnv builds the provider, reading API key from environment.
// Ollama requires no key; its base URL comes from OLLAMA_BASE_URL when set.
func (b *ProviderBuilder) FromEnv() (Provider, error) {
	if b.providerType == ProviderOllama {
		return b.build("ollama")
	}

	envVar := b.providerType.EnvVar()
	apiKey := os.Getenv(envVar)
	if apiKey == "" {
		return nil, fmt.Errorf("%s: %s environment variable not set", b.providerType, envVar)
	}
	return b.build(apiKey)
}

// APIKey builds the provider with an explicit API key.
func (b *ProviderBuilder) APIKey(key string) (Provider, error) {
	return b.build(key)
}

func (b *ProviderBuilder) build(apiKey string) (Provider, error) {
	model := b.model
	if model == "" {
		model = b.providerType.DefaultModel()
	}

	maxTokens := b.maxTokens
	if maxTokens == 0 {
		maxTokens = 2048
	}

	temperature := float32(0.7) // default
	if b.temperature != nil {
		temperature = *b.temperature
	}

	switch b.providerType {
	case ProviderOllama:
		baseURL := b.baseURL
		if baseURL == "" {
			baseURL = os.Getenv("OLLAMA_BASE_URL")
		}
		if baseURL == "" {
			baseURL = DefaultOllamaBaseURL
		}
		return NewCompatProvider("ollama", baseURL, apiKey, model, maxTokens, temperature), nil
	case ProviderOpenAI:
		if b.baseURL != "" {
			return NewCompatProvider("openai", b.baseURL, apiKey, model, maxTokens, temperature), nil
		}
		return NewOpenAIProvider(apiKey, model, maxTokens, temperature), nil
	case ProviderAnthropic:
		return NewAnthropicProvider(apiKey, model, maxTokens, temperature), nil
	case ProviderDeepSeek:
		baseURL := b.baseURL
		if baseURL == "" {
			baseURL = DeepSeekBaseURL
		}
		return NewCompatProvider("deepseek", baseURL, apiKey, model, maxTokens, temperature), nil
	case ProviderGemini:
		return NewGeminiProvider(apiKey, model, maxTokens, temperature), nil
	default:
		return nil, fmt.Errorf("unknown provider type: %v", b.providerType)
	}
}

// Model identifier constants for all supported providers.

// Ollama model identifiers (local models)
const (
	// ModelOllamaLlama31 is Llama 3.1: default local model.
	ModelOllamaLlama31 = "llama3.1"
	// ModelOllamaQwen25 is Qwen 2.5: strong tool-calling local model.
	ModelOllamaQwen25 = "qwen2.5"
)

// OpenAI model identifiers
const (
	// ModelOpenAIGPT4o is GPT-4o: flagship multimodal model.
	ModelOpenAIGPT4o = "gpt-4o"
	// ModelOpenAIGPT4oMini is GPT-4o-mini: cost-efficient model.
	ModelOpenAIGPT4oMini = "gpt-4o-mini"
)

// Anthropic model identifiers
const (
	// ModelAnthropicClaudeSonnet4 is Claude Sonnet 4: balanced performance.
	ModelAnthropicClaudeSonnet4 = "claude-sonnet-4-20250514"
	// ModelAnthropicClaudeHaiku4 is Claude Haiku 4: fast and efficient.
	ModelAnthropicClaudeHaiku4 = "claude-haiku-4-20250514"
)

// DeepSeek model identifiers
const (
	// ModelDeepSeekChat is the general chat model.
	ModelDeepSeekChat = "deepseek-chat"
)

// Gemini model identifiers
const (
	// ModelGeminiFlash25 is Gemini 2.5 Flash: speed optimized.
	ModelGeminiFlash25 = "gemini-2.5-flash"
	// ModelGeminiPro25 is Gemini 2.5 Pro: advanced reasoning.
	ModelGeminiPro25 = "gemini-2.5-pro"
)
