// Package copywriter owns the per-session generate/regenerate/download flow.
package copywriter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/joestump/joe-marketer/internal/brief"
	"github.com/joestump/joe-marketer/internal/llm"
	"github.com/joestump/joe-marketer/internal/metrics"
)

var (
	// ErrNoBrief is returned by Regenerate before anything was generated.
	ErrNoBrief = errors.New("nothing to regenerate yet: generate content first")
	// ErrNoResult is returned by Download when the session slot is empty.
	ErrNoResult = errors.New("no generated content to download")
)

// Result is one completion held in the session slot.
type Result struct {
	ID          string
	Text        string
	Model       string
	ProductName string
	CreatedAt   time.Time
}

// Filename is the name the result is downloaded under.
func (r *Result) Filename() string {
	return brief.Filename(r.ProductName)
}

// State is the session-scoped value the controller mutates. The zero value is
// an idle session with no result.
type State struct {
	Brief  *brief.Brief
	Result *Result
}

// HasResult reports whether the session slot holds a result.
func (s *State) HasResult() bool {
	return s.Result != nil
}

// Download is the file offered to the user.
type Download struct {
	Filename    string
	ContentType string
	Body        []byte
}

// Command is a discrete user action. See Generate, Regenerate and DownloadResult.
type Command interface {
	action() string
}

// Generate submits a new brief.
type Generate struct{ Brief brief.Brief }

// Regenerate repeats the last submitted brief.
type Regenerate struct{}

// DownloadResult serializes the current result.
type DownloadResult struct{}

func (Generate) action() string       { return "generate" }
func (Regenerate) action() string     { return "regenerate" }
func (DownloadResult) action() string { return "download" }

// Outcome is what a dispatched command produced. Download is set only for
// DownloadResult.
type Outcome struct {
	Result   *Result
	Download *Download
}

// Controller runs commands against a session State.
type Controller struct {
	completer llm.Completer
	prompts   *llm.PromptBuilder
	now       func() time.Time
}

// NewController creates a Controller. A nil prompts uses the built-in template.
func NewController(c llm.Completer, prompts *llm.PromptBuilder) *Controller {
	if prompts == nil {
		prompts, _ = llm.NewPromptBuilder("")
	}
	return &Controller{completer: c, prompts: prompts, now: time.Now}
}

// Model returns the model identifier requests are sent to.
func (c *Controller) Model() string {
	return c.completer.Model()
}

// Dispatch runs cmd against st. On error st.Result is left as it was.
func (c *Controller) Dispatch(ctx context.Context, st *State, cmd Command) (Outcome, error) {
	switch cmd := cmd.(type) {
	case Generate:
		res, err := c.generate(ctx, st, cmd.Brief, cmd.action())
		return Outcome{Result: res}, err
	case Regenerate:
		if st.Brief == nil {
			return Outcome{}, ErrNoBrief
		}
		res, err := c.generate(ctx, st, *st.Brief, cmd.action())
		return Outcome{Result: res}, err
	case DownloadResult:
		d, err := c.download(st)
		return Outcome{Download: d}, err
	default:
		return Outcome{}, fmt.Errorf("unknown command %T", cmd)
	}
}

// Complete runs one stateless generation, used by the JSON API and CLI.
func (c *Controller) Complete(ctx context.Context, b brief.Brief) (*Result, error) {
	var st State
	return c.generate(ctx, &st, b, "api")
}

// Prompt renders the prompt for b without calling the provider.
func (c *Controller) Prompt(b brief.Brief) (llm.Prompt, error) {
	return c.prompts.Build(b.WithDefaults())
}

// Close releases the completion client's connections, if it holds any.
func (c *Controller) Close() error {
	if cl, ok := c.completer.(io.Closer); ok {
		return cl.Close()
	}
	return nil
}

func (c *Controller) generate(ctx context.Context, st *State, b brief.Brief, action string) (*Result, error) {
	if err := b.Validate(); err != nil {
		metrics.GenerationsTotal.WithLabelValues(action, "invalid").Inc()
		return nil, err
	}
	b = b.WithDefaults()

	prompt, err := c.prompts.Build(b)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(action, "error").Inc()
		return nil, err
	}
	// A valid submission becomes the regenerate input even if the call fails.
	st.Brief = &b

	start := c.now()
	text, err := c.completer.Complete(ctx, prompt)
	metrics.GenerationDuration.Observe(c.now().Sub(start).Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(action, "error").Inc()
		log.Printf("copywriter: %s failed for %q: %v", action, b.ProductName, err)
		return nil, err
	}
	metrics.GenerationsTotal.WithLabelValues(action, "ok").Inc()

	res := &Result{
		ID:          uuid.NewString(),
		Text:        text,
		Model:       c.completer.Model(),
		ProductName: b.ProductName,
		CreatedAt:   c.now(),
	}
	st.Result = res
	log.Printf("copywriter: %s %s for %q (%d bytes)", action, res.ID, b.ProductName, len(text))
	return res, nil
}

func (c *Controller) download(st *State) (*Download, error) {
	if st.Result == nil {
		return nil, ErrNoResult
	}
	metrics.DownloadsTotal.Inc()
	return &Download{
		Filename:    st.Result.Filename(),
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(st.Result.Text),
	}, nil
}
