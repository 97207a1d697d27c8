package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/joestump/joe-marketer/internal/copywriter"
)

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Controller *copywriter.Controller
}

// NewAPIRouter creates a chi sub-router for /api/v1.
// All routes return application/json. The API is stateless: it never touches
// the browser session slot.
func NewAPIRouter(deps Deps) chi.Router {
	r := chi.NewRouter()
	r.Use(jsonContentType)

	gen := &generateAPIHandler{ctrl: deps.Controller}
	r.Post("/prompt", gen.Prompt)
	r.Post("/generate", gen.Generate)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}
