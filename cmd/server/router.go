package main

import (
	"net/http"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api"
	apiMiddleware "github.com/SleeperKt/GoogleTeamRepo/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// corsMethods are the methods browsers may use against the service.
var corsMethods = []string{
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodHead,
}

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() (http.Handler, error) {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Recover)
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   corsMethods,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}).Handler)
	r.Use(apiMiddleware.NewCallerIdentity(app.config.Auth.JWTSecret, app.logger).Handler)

	descriptionHandler, err := api.NewDescriptionHandler(app.service, app.logger)
	if err != nil {
		return nil, err
	}
	healthHandler := api.NewHealthHandler(app.config)

	// Service information
	r.Get("/", healthHandler.Info)
	r.Get("/health", healthHandler.Health)
	r.Get("/docs", healthHandler.Docs(r))

	// Description operations
	r.Post("/generate-description", descriptionHandler.GenerateDescription)
	r.Post("/shorten-description", descriptionHandler.ShortenDescription)
	r.Post("/expand-description", descriptionHandler.ExpandDescription)

	return r, nil
}
