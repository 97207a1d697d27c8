package handler

import (
	"io/fs"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/joe-marketer/docs/swagger"
	"github.com/joestump/joe-marketer/internal/api"
	"github.com/joestump/joe-marketer/internal/copywriter"
	"github.com/joestump/joe-marketer/internal/session"
	"github.com/joestump/joe-marketer/web"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	SessionManager *scs.SessionManager
	Controller     *copywriter.Controller
	Version        string
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	// Static assets (embedded). Use fs.Sub so the file server sees
	// css/app.css directly, not static/css/... paths.
	staticSub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		panic("failed to sub static FS: " + err.Error())
	}
	r.Handle("/static/*", http.StripPrefix("/static", http.FileServerFS(staticSub)))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	// Session-scoped form routes.
	cw := NewCopywriterHandler(deps.Controller, session.NewStore(deps.SessionManager), deps.Version)
	r.Group(func(r chi.Router) {
		r.Use(deps.SessionManager.LoadAndSave)
		r.Get("/", cw.Index)
		r.Post("/generate", cw.Generate)
		r.Post("/regenerate", cw.Regenerate)
		r.Get("/download", cw.Download)
		r.Post("/reset", cw.Reset)
	})

	themeHandler := NewThemeHandler()
	r.Post("/theme", themeHandler.Toggle)

	r.Get("/api/docs/*", httpSwagger.WrapHandler)
	r.Mount("/api/v1", api.NewAPIRouter(api.Deps{Controller: deps.Controller}))

	return r
}
