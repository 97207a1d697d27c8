package api

import (
	"time"

	"github.com/joestump/joe-marketer/internal/brief"
)

// BriefRequest is the request body for POST /api/v1/prompt and /api/v1/generate.
type BriefRequest struct {
	ProductName string `json:"product_name" example:"Test Mug"`
	Category    string `json:"category" example:"Kitchen"`
	Features    string `json:"features" example:"- Keeps drinks hot"`
	Audience    string `json:"audience" example:"Office workers"`
	Tone        string `json:"tone" example:"Friendly"`
	Length      string `json:"length" example:"short"`
	Variants    int    `json:"variants,omitempty" example:"2"`
}

func (req BriefRequest) brief() brief.Brief {
	length, _ := brief.ParseLength(req.Length)
	return brief.Brief{
		ProductName: req.ProductName,
		Category:    req.Category,
		Features:    req.Features,
		Audience:    req.Audience,
		Tone:        brief.Tone(req.Tone),
		Length:      length,
		Variants:    req.Variants,
	}
}

// PromptResponse is the rendered two-message conversation.
type PromptResponse struct {
	System string `json:"system"`
	User   string `json:"user"`
}

// GenerateResponse is the JSON representation of one completion.
type GenerateResponse struct {
	ID        string    `json:"id"`
	Model     string    `json:"model"`
	Text      string    `json:"text"`
	Filename  string    `json:"filename"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse is the standard error body.
type ErrorResponse struct {
	Error  string            `json:"error"`
	Code   string            `json:"code"`
	Fields map[string]string `json:"fields,omitempty"`
}
