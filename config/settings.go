// Package config provides application settings loaded from environment variables.
//
// Settings are created via New() which handles:
// - Environment variable parsing with validation
// - Default value application
// - Provider selection with aliases

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Settings holds all application configuration.
type Settings struct {
	LLM     LLMConfig
	Agent   AgentConfig
	Server  ServerConfig
	Session SessionConfig
	Debug   bool
}

// LLMConfig holds LLM provider configuration.
type LLMConfig struct {
	Provider    string
	Model       string
	MaxTokens   int32
	Temperature float32
}

// AgentConfig holds loop configuration.
type AgentConfig struct {
	MaxIterations int
	MaxCards      int
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Addr string
}

// SessionConfig holds history storage configuration.
type SessionConfig struct {
	// MaxMessages caps stored history per session.
	MaxMessages int
	// SqlitePath enables SQLite persistence when non-empty;
	// empty keeps history in memory.
	SqlitePath string
}

// Supported providers and their environment configuration.
// Ollama needs no API key; its endpoint comes from OLLAMA_BASE_URL.
var providers = map[string]struct {
	modelEnv     string
	defaultModel string
	apiKeyEnv    string
}{
	"ollama":    {"OLLAMA_MODEL", "llama3.1", ""},
	"openai":    {"OPENAI_MODEL", "gpt-4o", "OPENAI_API_KEY"},
	"anthropic": {"ANTHROPIC_MODEL", "claude-sonnet-4-20250514", "ANTHROPIC_API_KEY"},
	"deepseek":  {"DEEPSEEK_MODEL", "deepseek-chat", "DEEPSEEK_API_KEY"},
	"gemini":    {"GEMINI_MODEL", "gemini-2.5-flash", "GEMINI_API_KEY"},
}

// Provider aliases map to canonical names.
var providerAliases = map[string]string{
	"claude": "anthropic",
	"google": "gemini",
	"gpt":    "openai",
	"local":  "ollama",
}

// New creates settings for the specified provider, loading values from
// environment variables. An empty provider selects PHONEWISE_PROVIDER,
// defaulting to ollama. Returns an error if the provider is unknown or
// environment variables contain invalid values.
func New(provider string) (Settings, error) {
	if provider == "" {
		provider = os.Getenv("PHONEWISE_PROVIDER")
	}
	if provider == "" {
		provider = "ollama"
	}
	provider = normalizeProvider(provider)

	info, ok := providers[provider]
	if !ok {
		return Settings{}, fmt.Errorf("unknown provider: %q", provider)
	}

	maxTokens, err := getEnvInt("LLM_MAX_TOKENS", 2048)
	if err != nil {
		return Settings{}, err
	}

	temperature, err := getEnvFloat32("LLM_TEMPERATURE", 0.7)
	if err != nil {
		return Settings{}, err
	}

	maxIterations, err := getEnvInt("AGENT_MAX_ITERATIONS", 5)
	if err != nil {
		return Settings{}, err
	}

	maxCards, err := getEnvInt("AGENT_MAX_CARDS", 5)
	if err != nil {
		return Settings{}, err
	}

	maxMessages, err := getEnvInt("SESSION_MAX_MESSAGES", 20)
	if err != nil {
		return Settings{}, err
	}

	addr := os.Getenv("PHONEWISE_ADDR")
	if addr == "" {
		addr = ":8000"
	}

	model := os.Getenv(info.modelEnv)
	if model == "" {
		model = info.defaultModel
	}

	return Settings{
		LLM: LLMConfig{
			Provider:    provider,
			Model:       model,
			MaxTokens:   int32(maxTokens),
			Temperature: temperature,
		},
		Agent: AgentConfig{
			MaxIterations: maxIterations,
			MaxCards:      maxCards,
		},
		Server: ServerConfig{
			Addr: addr,
		},
		Session: SessionConfig{
			MaxMessages: maxMessages,
			SqlitePath:  os.Getenv("SESSION_SQLITE_PATH"),
		},
		Debug: os.Getenv("PHONEWISE_DEBUG") != "",
	}, nil
}

// MustNew creates settings for the specified provider.
// Panics if the provider is unknown or environment variables are invalid.
// Use this only when configuration errors should be fatal.
func MustNew(provider string) Settings {
	settings, err := New(provider)
	if err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
	return settings
}

// normalizeProvider converts provider aliases to canonical names.
func normalizeProvider(provider string) string {
	provider = strings.ToLower(provider)
	if canonical, ok := providerAliases[provider]; ok {
		return canonical
	}
	return provider
}

// APIKeyFor returns the API key for a provider from environment variables.
// Ollama requires no key and always returns "".
func APIKeyFor(provider string) (string, error) {
	provider = normalizeProvider(provider)

	info, ok := providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown provider: %q", provider)
	}
	if info.apiKeyEnv == "" {
		return "", nil
	}

	key := os.Getenv(info.apiKeyEnv)
	if key == "" {
		return "", fmt.Errorf("%s environment variable not set", info.apiKeyEnv)
	}
	return key, nil
}

// ModelFor returns the model for a provider, checking environment first.
func ModelFor(provider string) (string, error) {
	provider = normalizeProvider(provider)

	info, ok := providers[provider]
	if !ok {
		return "", fmt.Errorf("unknown provider: %q", provider)
	}

	if val := os.Getenv(info.modelEnv); val != "" {
		return val, nil
	}
	return info.defaultModel, nil
}

// SupportedProviders returns the list of supported provider names.
func SupportedProviders() []string {
	result := make([]string, 0, len(providers))
	for name := range providers {
		result = append(result, name)
	}
	return result
}

// Environment variable helpers with proper error handling

func getEnvInt(key string, defaultVal int) (int, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return i, nil
}

func getEnvFloat32(key string, defaultVal float32) (float32, error) {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal, nil
	}
	f, err := strconv.ParseFloat(val, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid value for %s: %q: %w", key, val, err)
	}
	return float32(f), nil
}
