package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
	"github.com/SleeperKt/GoogleTeamRepo/internal/platform/gemini"
)

// application holds the process-wide dependencies. Everything in it is built
// once at startup and shared by all requests.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	service *generation.Service
}

// newApplication wires the generation stack. When model is nil and an API key
// is configured, a Gemini client is created; without a key the service runs in
// its unconfigured mode and every operation reports a failure.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	model generation.TextModel,
) (*application, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if model == nil && cfg.LLM.IsConfigured() {
		client, err := gemini.NewClient(ctx, logger.With("component", "gemini"), cfg.LLM)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		model = client
	}

	orchestrator, err := generation.NewOrchestrator(model, cfg.LLM, logger.With("component", "orchestrator"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orchestrator: %w", err)
	}

	service, err := generation.NewService(orchestrator, logger.With("component", "description_service"))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize description service: %w", err)
	}

	return &application{
		config:  cfg,
		logger:  logger,
		service: service,
	}, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (app *application) Run(ctx context.Context) error {
	app.logStartup()

	router, err := app.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to set up router: %w", err)
	}

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func (app *application) logStartup() {
	app.logger.Info("ProjectHub AI Service starting up",
		"configured", app.config.LLM.IsConfigured(),
		"model", app.config.LLM.ModelName,
		"backend_url", app.config.Server.BackendURL)

	if app.config.LLM.IsConfigured() {
		app.logger.Info("AI Service ready for requests")
	} else {
		app.logger.Warn("AI Service started without API key - limited functionality")
	}
}

// newHTTPServer builds the server for the configured address.
func (app *application) newHTTPServer(handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              app.config.Server.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
