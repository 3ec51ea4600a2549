package api

import (
	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
)

// GenerateRequest is the body of POST /generate-description.
type GenerateRequest struct {
	Task domain.TaskContext `json:"task" validate:"required"`
}

// Validate checks the fields prompt construction depends on.
func (r *GenerateRequest) Validate() error {
	return r.Task.Validate()
}

// ProcessRequest is the body of POST /shorten-description and
// POST /expand-description. Context is accepted for compatibility and
// otherwise ignored.
type ProcessRequest struct {
	Content *string        `json:"content" validate:"required"`
	Context map[string]any `json:"context,omitempty"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status        string              `json:"status"`
	Timestamp     string              `json:"timestamp"`
	GeminiStatus  string              `json:"gemini_status"`
	APIKeyPreview string              `json:"api_key_preview"`
	BackendURL    string              `json:"backend_url"`
	Instructions  *HealthInstructions `json:"instructions,omitempty"`
}

// HealthInstructions tells an operator how to configure a missing API key.
type HealthInstructions struct {
	MissingAPIKey string `json:"missing_api_key"`
	GetAPIKey     string `json:"get_api_key"`
}

// InfoResponse is the body of GET /.
type InfoResponse struct {
	Message string   `json:"message"`
	Version string   `json:"version"`
	Status  string   `json:"status"`
	Models  []string `json:"models"`
	APIDocs string   `json:"api_docs"`
}

// RouteInfo describes one registered route in GET /docs.
type RouteInfo struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// DocsResponse is the body of GET /docs.
type DocsResponse struct {
	Service string      `json:"service"`
	Version string      `json:"version"`
	Routes  []RouteInfo `json:"routes"`
}
