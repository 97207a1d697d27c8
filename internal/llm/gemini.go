package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/joestump/joe-marketer/internal/config"
)

const defaultGeminiModel = "gemini-2.0-flash"

// geminiCompleter holds one client for the life of the process. The SDK's
// REST transport retries 503 responses on its own; every other failure is
// returned after a single attempt.
type geminiCompleter struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiCompleter(cfg config.LLM) (*geminiCompleter, error) {
	model := cfg.Model
	if model == "" {
		model = defaultGeminiModel
	}
	opts := []option.ClientOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}
	client, err := genai.NewClient(context.Background(), opts...)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &geminiCompleter{client: client, model: model, timeout: cfg.Timeout}, nil
}

func (g *geminiCompleter) Model() string { return g.model }

// Close releases the client's connections.
func (g *geminiCompleter) Close() error { return g.client.Close() }

func (g *geminiCompleter) Complete(ctx context.Context, p Prompt) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(Temperature)
	model.SetMaxOutputTokens(MaxTokens)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(p.System)}}

	resp, err := model.GenerateContent(ctx, genai.Text(p.User))
	if err != nil {
		var gErr *googleapi.Error
		if errors.As(err, &gErr) {
			msg := gErr.Message
			if msg == "" {
				msg = http.StatusText(gErr.Code)
			}
			return "", &RequestError{Provider: "gemini", Status: gErr.Code, Message: msg, Err: err}
		}
		return "", &RequestError{Provider: "gemini", Message: err.Error(), Err: err}
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", &RequestError{Provider: "gemini", Message: "no candidates in response"}
	}
	return geminiText(resp.Candidates[0]), nil
}

func geminiText(c *genai.Candidate) string {
	if c == nil || c.Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range c.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String()
}
