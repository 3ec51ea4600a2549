package api

import (
	"net/http"
	"time"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api/shared"
	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/go-chi/chi/v5"
)

// Service metadata reported by the informational routes.
const (
	ServiceName    = "ProjectHub AI Service"
	ServiceVersion = "1.0.0"
)

// Gemini configuration states reported by GET /health.
const (
	GeminiStatusConfigured    = "configured"
	GeminiStatusMissingAPIKey = "missing_api_key"
)

var missingKeyInstructions = HealthInstructions{
	MissingAPIKey: "Create .env file with GOOGLE_API_KEY=your_key",
	GetAPIKey:     "https://makersuite.google.com/app/apikey",
}

// HealthHandler serves the service status and information routes.
type HealthHandler struct {
	cfg *config.Config
	now func() time.Time
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg, now: time.Now}
}

// Health handles GET /health requests.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	resp := HealthResponse{
		Status:        "healthy",
		Timestamp:     h.now().UTC().Format(time.RFC3339Nano),
		GeminiStatus:  GeminiStatusConfigured,
		APIKeyPreview: h.cfg.LLM.APIKeyPreview(),
		BackendURL:    h.cfg.Server.BackendURL,
	}
	if !h.cfg.LLM.IsConfigured() {
		resp.GeminiStatus = GeminiStatusMissingAPIKey
		instructions := missingKeyInstructions
		resp.Instructions = &instructions
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Info handles GET / requests.
func (h *HealthHandler) Info(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, InfoResponse{
		Message: ServiceName,
		Version: ServiceVersion,
		Status:  "active",
		Models:  []string{h.cfg.LLM.ModelName},
		APIDocs: "/docs",
	})
}

// Docs returns a handler for GET /docs listing every route registered on
// routes.
func (h *HealthHandler) Docs(routes chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := DocsResponse{Service: ServiceName, Version: ServiceVersion, Routes: []RouteInfo{}}

		err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			resp.Routes = append(resp.Routes, RouteInfo{Method: method, Path: route})
			return nil
		})
		if err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, msgInternal, err)
			return
		}

		shared.RespondWithJSON(w, r, http.StatusOK, resp)
	}
}
