package llm

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/joestump/joe-marketer/internal/brief"
)

//go:embed prompt.tmpl
var defaultPromptTemplate string

// SystemPrompt is sent as the system-role message on every request.
const SystemPrompt = "You are a helpful, creative, and experienced product marketer and e-commerce copywriter."

var defaultTmpl = template.Must(template.New("prompt").Parse(defaultPromptTemplate))

// Prompt is the two-message conversation sent to the provider.
type Prompt struct {
	System string
	User   string
}

// PromptData holds the variables available in the prompt template.
type PromptData struct {
	ProductName string
	Category    string
	Features    string
	Audience    string
	Tone        string
	Length      string // paragraph-count phrase, e.g. "2 paragraphs"
	Count       int
	Variants    []int // 1..Count, one entry per requested description block
}

// NewPromptData maps a brief onto template variables. Brief text is passed
// through verbatim.
func NewPromptData(b brief.Brief) PromptData {
	n := b.VariantCount()
	variants := make([]int, n)
	for i := range variants {
		variants[i] = i + 1
	}
	return PromptData{
		ProductName: b.ProductName,
		Category:    b.Category,
		Features:    b.Features,
		Audience:    b.Audience,
		Tone:        string(b.Tone),
		Length:      brief.Paragraphs(string(b.Length)),
		Count:       n,
		Variants:    variants,
	}
}

// PromptBuilder renders briefs into prompts with a fixed template.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses customTemplate, or uses the embedded default when it
// is empty.
func NewPromptBuilder(customTemplate string) (*PromptBuilder, error) {
	if customTemplate == "" {
		return &PromptBuilder{tmpl: defaultTmpl}, nil
	}
	tmpl, err := template.New("prompt").Parse(customTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse prompt template: %w", err)
	}
	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build renders the user message for b and pairs it with SystemPrompt.
func (pb *PromptBuilder) Build(b brief.Brief) (Prompt, error) {
	var buf bytes.Buffer
	if err := pb.tmpl.Execute(&buf, NewPromptData(b)); err != nil {
		return Prompt{}, fmt.Errorf("render prompt: %w", err)
	}
	return Prompt{System: SystemPrompt, User: buf.String()}, nil
}

// BuildPrompt renders b with the embedded template.
func BuildPrompt(b brief.Brief) (Prompt, error) {
	return (&PromptBuilder{tmpl: defaultTmpl}).Build(b)
}
