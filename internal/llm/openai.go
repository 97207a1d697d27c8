package llm

import (
	"context"
	"errors"
	"net/http"
	"strings"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/joestump/joe-marketer/internal/config"
)

const (
	groqBaseURL          = "https://api.groq.com/openai/v1/"
	defaultGroqModel     = "llama-3.1-8b-instant"
	defaultOpenAIBaseURL = "https://api.openai.com/v1/"
	defaultOpenAIModel   = "gpt-4o-mini"
)

// openaiCompleter talks to any OpenAI-compatible chat completions endpoint,
// Groq included.
type openaiCompleter struct {
	provider string
	model    string
	client   openai.Client
}

func newOpenAICompleter(provider, baseURL, defaultModel string, cfg config.LLM) (*openaiCompleter, error) {
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(cfg.MaxRetries),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	return &openaiCompleter{
		provider: provider,
		model:    model,
		client:   openai.NewClient(opts...),
	}, nil
}

func (o *openaiCompleter) Model() string { return o.model }

func (o *openaiCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(p.System),
			openai.UserMessage(p.User),
		},
		Temperature: openai.Float(Temperature),
		MaxTokens:   openai.Int(MaxTokens),
	})
	if err != nil {
		return "", o.wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", &RequestError{Provider: o.provider, Message: "no choices in response"}
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *openaiCompleter) wrapError(err error) error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = http.StatusText(apiErr.StatusCode)
		}
		return &RequestError{Provider: o.provider, Status: apiErr.StatusCode, Message: msg, Err: err}
	}
	return &RequestError{Provider: o.provider, Message: err.Error(), Err: err}
}
