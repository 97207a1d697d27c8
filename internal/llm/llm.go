package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/joestump/joe-marketer/internal/config"
)

// Sampling parameters sent with every completion request.
const (
	Temperature = 0.8
	MaxTokens   = 2048
)

// ErrMissingAPIKey is returned by New before any request is made.
var ErrMissingAPIKey = errors.New("llm: API key is required")

// Completer sends a prompt to a hosted chat-completion model and returns the
// first choice's text.
type Completer interface {
	Complete(ctx context.Context, p Prompt) (string, error)
	Model() string
}

// RequestError is a recoverable failure from the provider: a network error,
// an API error response or a rate limit.
type RequestError struct {
	Provider string
	Status   int // HTTP status, 0 when no response was received
	Message  string
	Err      error
}

func (e *RequestError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s API returned %d: %s", e.Provider, e.Status, e.Message)
	}
	return fmt.Sprintf("%s request: %s", e.Provider, e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }

// New creates a Completer for the configured provider.
func New(cfg config.LLM) (Completer, error) {
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	switch cfg.Provider {
	case "", "groq":
		return newOpenAICompleter("groq", groqBaseURL, defaultGroqModel, cfg)
	case "openai":
		return newOpenAICompleter("openai", defaultOpenAIBaseURL, defaultOpenAIModel, cfg)
	case "openai-compatible":
		if cfg.BaseURL == "" {
			return nil, fmt.Errorf("llm provider openai-compatible requires MARKETER_LLM_BASE_URL")
		}
		if cfg.Model == "" {
			return nil, fmt.Errorf("llm provider openai-compatible requires MARKETER_LLM_MODEL")
		}
		return newOpenAICompleter("openai-compatible", cfg.BaseURL, "", cfg)
	case "gemini":
		g, err := newGeminiCompleter(cfg)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.Provider)
	}
}
