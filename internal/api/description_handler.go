package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api/shared"
	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
)

// DescriptionService is the set of description operations the handler
// exposes. *generation.Service implements it.
type DescriptionService interface {
	GenerateDescription(ctx context.Context, task domain.TaskContext) generation.Result
	ShortenDescription(ctx context.Context, content string) generation.Result
	ExpandDescription(ctx context.Context, content string) generation.Result
}

var _ DescriptionService = (*generation.Service)(nil)

// DescriptionHandler handles the description generation endpoints.
type DescriptionHandler struct {
	service DescriptionService
	logger  *slog.Logger
}

// NewDescriptionHandler creates a new DescriptionHandler.
func NewDescriptionHandler(service DescriptionService, logger *slog.Logger) (*DescriptionHandler, error) {
	if service == nil {
		return nil, errors.New("service cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &DescriptionHandler{
		service: service,
		logger:  logger.With("component", "description_handler"),
	}, nil
}

// GenerateDescription handles POST /generate-description requests.
func (h *DescriptionHandler) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.logger.InfoContext(r.Context(), "Generating description for task",
		"trace_id", shared.GetTraceID(r.Context()),
		"title", req.Task.Title)

	h.respond(w, r, h.service.GenerateDescription(r.Context(), req.Task), msgGenerateFailed)
}

// ShortenDescription handles POST /shorten-description requests.
func (h *DescriptionHandler) ShortenDescription(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.logger.InfoContext(r.Context(), "Shortening task description",
		"trace_id", shared.GetTraceID(r.Context()))

	h.respond(w, r, h.service.ShortenDescription(r.Context(), *req.Content), msgShortenFailed)
}

// ExpandDescription handles POST /expand-description requests.
func (h *DescriptionHandler) ExpandDescription(w http.ResponseWriter, r *http.Request) {
	var req ProcessRequest
	if !h.decode(w, r, &req) {
		return
	}

	h.logger.InfoContext(r.Context(), "Expanding task description",
		"trace_id", shared.GetTraceID(r.Context()))

	h.respond(w, r, h.service.ExpandDescription(r.Context(), *req.Content), msgExpandFailed)
}

// decode reads and validates the request body, writing a 400 response and
// returning false when either step fails.
func (h *DescriptionHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidFormat, err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), SanitizeValidationError(err), err)
		return false
	}
	return true
}

// respond writes a successful Result with 200 and a failed one as a 500.
func (h *DescriptionHandler) respond(w http.ResponseWriter, r *http.Request, result generation.Result, fallback string) {
	if !result.Success {
		detail := result.Error
		if detail == "" {
			detail = fallback
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, detail, errors.New(fallback))
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
