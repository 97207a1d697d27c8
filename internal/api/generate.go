package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/joestump/joe-marketer/internal/brief"
	"github.com/joestump/joe-marketer/internal/copywriter"
)

// generateAPIHandler provides the prompt and generate endpoints.
type generateAPIHandler struct {
	ctrl *copywriter.Controller
}

func decodeBrief(w http.ResponseWriter, r *http.Request) (brief.Brief, bool) {
	var req BriefRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", "BAD_REQUEST")
		return brief.Brief{}, false
	}
	return req.brief(), true
}

func writeValidationError(w http.ResponseWriter, ve *brief.ValidationError) {
	writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Error(), Code: "INVALID_BRIEF", Fields: ve.Fields})
}

// Prompt renders the prompt for a brief without calling the model.
// POST /api/v1/prompt
//
// @Summary      Preview the prompt
// @Description  Renders the system and user messages that would be sent for this brief
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      BriefRequest  true  "Product brief"
// @Success      200      {object}  PromptResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /prompt [post]
func (h *generateAPIHandler) Prompt(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeBrief(w, r)
	if !ok {
		return
	}
	if err := b.Validate(); err != nil {
		var ve *brief.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve)
			return
		}
		writeError(w, http.StatusBadRequest, err.Error(), "INVALID_BRIEF")
		return
	}
	p, err := h.ctrl.Prompt(b)
	if err != nil {
		log.Printf("api: render prompt: %v", err)
		writeError(w, http.StatusInternalServerError, "could not render prompt", "PROMPT_ERROR")
		return
	}
	writeJSON(w, http.StatusOK, PromptResponse{System: p.System, User: p.User})
}

// Generate runs one completion for a brief.
// POST /api/v1/generate
//
// @Summary      Generate descriptions and hashtags
// @Description  Sends the brief to the configured model and returns the raw text
// @Tags         Generate
// @Accept       json
// @Produce      json
// @Param        request  body      BriefRequest  true  "Product brief"
// @Success      200      {object}  GenerateResponse
// @Failure      400      {object}  ErrorResponse
// @Failure      502      {object}  ErrorResponse
// @Router       /generate [post]
func (h *generateAPIHandler) Generate(w http.ResponseWriter, r *http.Request) {
	b, ok := decodeBrief(w, r)
	if !ok {
		return
	}

	res, err := h.ctrl.Complete(r.Context(), b)
	if err != nil {
		var ve *brief.ValidationError
		if errors.As(err, &ve) {
			writeValidationError(w, ve)
			return
		}
		log.Printf("api: generate LLM error: %v", err)
		writeError(w, http.StatusBadGateway, err.Error(), "LLM_ERROR")
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		ID:        res.ID,
		Model:     res.Model,
		Text:      res.Text,
		Filename:  res.Filename(),
		CreatedAt: res.CreatedAt,
	})
}
