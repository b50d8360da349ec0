package ai

import (
	"context"
	"errors"
)

// Supported provider names.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderCompatible = "compatible"
)

// Message roles accepted in a conversation.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// DefaultMaxTokens caps the length of a single assistant reply.
const DefaultMaxTokens = 1024

var (
	ErrMissingAPIKey   = errors.New("api key is required")
	ErrMissingModel    = errors.New("model is required")
	ErrMissingBaseURL  = errors.New("base url is required for compatible provider")
	ErrInvalidProvider = errors.New("invalid provider")
)

// Message is a single turn of a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Provider abstracts a chat completion backend.
type Provider interface {
	// Name returns the provider identifier.
	Name() string

	// Test sends a trivial prompt to verify credentials and connectivity.
	Test(ctx context.Context) (string, error)

	// Complete returns the full assistant reply for a conversation.
	Complete(ctx context.Context, systemPrompt string, messages []Message) (string, error)

	// ChatStream streams the assistant reply as text fragments. The text
	// channel is closed when the reply is complete; the error channel
	// carries at most one error.
	ChatStream(ctx context.Context, systemPrompt string, messages []Message) (<-chan string, <-chan error)
}

// Config selects and configures a provider.
type Config struct {
	Provider  string
	APIKey    string
	Model     string
	BaseURL   string
	MaxTokens int64
}

// NewProvider builds a Provider from config. An empty provider name
// defaults to Anthropic.
func NewProvider(cfg Config) (Provider, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrMissingModel
	}

	switch cfg.Provider {
	case "", ProviderAnthropic:
		return NewAnthropicProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	case ProviderOpenAI:
		return NewOpenAIProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	case ProviderCompatible:
		if cfg.BaseURL == "" {
			return nil, ErrMissingBaseURL
		}
		return NewCompatibleProvider(cfg.APIKey, cfg.BaseURL, cfg.Model, cfg.MaxTokens)
	default:
		return nil, ErrInvalidProvider
	}
}
