package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joestump/joe-marketer/internal/build"
	"github.com/joestump/joe-marketer/internal/config"
	"github.com/joestump/joe-marketer/internal/copywriter"
	"github.com/joestump/joe-marketer/internal/handler"
	"github.com/joestump/joe-marketer/internal/llm"
	"github.com/joestump/joe-marketer/internal/session"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			ctrl, err := newController(cfg.LLM)
			if err != nil {
				return err
			}
			defer func() { _ = ctrl.Close() }()

			sessionManager := session.NewSessionManager(cfg.SessionLifetime, !cfg.InsecureCookies)

			router := handler.NewRouter(handler.Deps{
				SessionManager: sessionManager,
				Controller:     ctrl,
				Version:        build.Version,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			log.Printf("listening on %s (provider %s, model %s)", cfg.HTTP.Addr, cfg.LLM.Provider, ctrl.Model())
			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			log.Printf("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

// newController wires the prompt template and completion client for cfg.
func newController(cfg config.LLM) (*copywriter.Controller, error) {
	prompts, err := llm.NewPromptBuilder(cfg.Prompt)
	if err != nil {
		return nil, err
	}
	completer, err := llm.New(cfg)
	if err != nil {
		return nil, err
	}
	return copywriter.NewController(completer, prompts), nil
}
