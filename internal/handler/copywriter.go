package handler

import (
	"errors"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/joestump/joe-marketer/internal/brief"
	"github.com/joestump/joe-marketer/internal/copywriter"
	"github.com/joestump/joe-marketer/internal/session"
)

// FormPage is the template data for the single-page form.
type FormPage struct {
	BasePage
	Form        brief.Brief
	Tones       []brief.Tone
	Lengths     []brief.Length
	MinVariants int
	MaxVariants int
	Result      *copywriter.Result
	Flashes     []Flash
}

// CopywriterHandler serves the form and dispatches its three actions to the
// copywriter controller.
type CopywriterHandler struct {
	ctrl    *copywriter.Controller
	store   *session.Store
	version string
}

// NewCopywriterHandler creates a new CopywriterHandler.
func NewCopywriterHandler(ctrl *copywriter.Controller, store *session.Store, version string) *CopywriterHandler {
	return &CopywriterHandler{ctrl: ctrl, store: store, version: version}
}

func (h *CopywriterHandler) page(r *http.Request, st copywriter.State, form brief.Brief, flashes ...Flash) FormPage {
	return FormPage{
		BasePage:    BasePage{Theme: themeFromRequest(r), Model: h.ctrl.Model(), Version: h.version},
		Form:        form,
		Tones:       brief.Tones,
		Lengths:     brief.Lengths,
		MinVariants: brief.MinVariants,
		MaxVariants: brief.MaxVariants,
		Result:      st.Result,
		Flashes:     flashes,
	}
}

// respond renders either the full page or, for HTMX, just the workspace.
func (h *CopywriterHandler) respond(w http.ResponseWriter, r *http.Request, data FormPage) {
	if isHTMX(r) {
		renderPageFragment(w, "index.html", "workspace", data)
		return
	}
	render(w, "index.html", data)
}

// Index serves GET /. The form is prefilled with the last submitted brief.
func (h *CopywriterHandler) Index(w http.ResponseWriter, r *http.Request) {
	st := h.store.Load(r.Context())
	form := brief.Default()
	if st.Brief != nil {
		form = *st.Brief
	}
	render(w, "index.html", h.page(r, st, form))
}

// Generate handles POST /generate.
func (h *CopywriterHandler) Generate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	form := briefFromForm(r)

	st := h.store.Load(r.Context())
	_, err := h.ctrl.Dispatch(r.Context(), &st, copywriter.Generate{Brief: form})
	h.store.Save(r.Context(), st)

	if err != nil {
		h.respond(w, r, h.page(r, st, form, failureFlashes(err, "An error occurred during API call: ")...))
		return
	}
	h.respond(w, r, h.page(r, st, form, Flash{Type: "success", Message: "Content generated successfully!"}))
}

// Regenerate handles POST /regenerate, reusing the last submitted brief.
func (h *CopywriterHandler) Regenerate(w http.ResponseWriter, r *http.Request) {
	st := h.store.Load(r.Context())
	_, err := h.ctrl.Dispatch(r.Context(), &st, copywriter.Regenerate{})
	h.store.Save(r.Context(), st)

	form := brief.Default()
	if st.Brief != nil {
		form = *st.Brief
	}
	if err != nil {
		if errors.Is(err, copywriter.ErrNoBrief) {
			h.respond(w, r, h.page(r, st, form, Flash{Type: "warning", Message: err.Error()}))
			return
		}
		h.respond(w, r, h.page(r, st, form, failureFlashes(err, "An error occurred during regeneration: ")...))
		return
	}
	h.respond(w, r, h.page(r, st, form, Flash{Type: "success", Message: "Content regenerated successfully!"}))
}

// Download handles GET /download: the last result as a UTF-8 text file.
func (h *CopywriterHandler) Download(w http.ResponseWriter, r *http.Request) {
	st := h.store.Load(r.Context())
	out, err := h.ctrl.Dispatch(r.Context(), &st, copywriter.DownloadResult{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	d := out.Download
	w.Header().Set("Content-Type", d.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": d.Filename}))
	w.Header().Set("Content-Length", strconv.Itoa(len(d.Body)))
	_, _ = w.Write(d.Body)
}

// Reset handles POST /reset: clears the session slot and returns to the form.
func (h *CopywriterHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.store.Reset(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// failureFlashes turns a dispatch error into the messages shown above the
// result. Validation problems are warnings; anything else is a request error.
func failureFlashes(err error, prefix string) []Flash {
	var ve *brief.ValidationError
	if errors.As(err, &ve) {
		return []Flash{{Type: "warning", Message: err.Error()}}
	}
	return []Flash{
		{Type: "error", Message: prefix + err.Error()},
		{Type: "warning", Message: "Please check your API key and try again. You might also have reached your API rate limit or usage limits."},
	}
}

// briefFromForm reads the form fields. Values are kept as typed; the
// controller validates them.
func briefFromForm(r *http.Request) brief.Brief {
	length, _ := brief.ParseLength(r.FormValue("length"))
	variants, _ := strconv.Atoi(strings.TrimSpace(r.FormValue("variants")))
	return brief.Brief{
		ProductName: r.FormValue("product_name"),
		Category:    r.FormValue("category"),
		Features:    r.FormValue("features"),
		Audience:    r.FormValue("audience"),
		Tone:        brief.Tone(r.FormValue("tone")),
		Length:      length,
		Variants:    variants,
	}
}
