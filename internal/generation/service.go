package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
	"github.com/SleeperKt/GoogleTeamRepo/internal/redact"
)

// MessageNotConfigured is the failure reported by GenerateDescription when no
// API key is configured.
const MessageNotConfigured = "AI service not configured - missing API key"

// Service exposes the three description operations. Every outcome, including
// provider and configuration errors, is reported as a Result.
type Service struct {
	orchestrator *Orchestrator
	logger       *slog.Logger
}

// NewService creates a Service backed by the given orchestrator.
func NewService(orchestrator *Orchestrator, logger *slog.Logger) (*Service, error) {
	if orchestrator == nil {
		return nil, errors.New("orchestrator cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Service{orchestrator: orchestrator, logger: logger}, nil
}

// GenerateDescription writes a new description for task. The text is limited
// to MaxDescriptionLength characters and CharacterCount is set on success.
func (s *Service) GenerateDescription(ctx context.Context, task domain.TaskContext) Result {
	if !s.orchestrator.Configured() {
		return Failure(MessageNotConfigured)
	}

	s.logger.InfoContext(ctx, "Generating description",
		"title", task.Title,
		"stage", task.Stage,
		"stage_category", task.StageCategory().String())

	result, err := s.orchestrator.Generate(ctx, BuildGenerationPrompt(task))
	if err != nil {
		return s.failure(ctx, "Failed to generate description", err)
	}

	content, count := EnforceDescriptionLimit(result.Content)
	if content != result.Content {
		s.logger.DebugContext(ctx, "Truncated generated description",
			"original_length", len([]rune(result.Content)),
			"final_length", count)
	}
	result.Content = content
	result.CharacterCount = &count
	return result
}

// ShortenDescription asks the model for a condensed version of content.
func (s *Service) ShortenDescription(ctx context.Context, content string) Result {
	s.logger.InfoContext(ctx, "Shortening description", "content_length", len(content))

	result, err := s.orchestrator.Generate(ctx, BuildShortenPrompt(content))
	if err != nil {
		return s.failure(ctx, "Failed to shorten description", err)
	}
	return result
}

// ExpandDescription asks the model for an enriched version of content.
func (s *Service) ExpandDescription(ctx context.Context, content string) Result {
	s.logger.InfoContext(ctx, "Expanding description", "content_length", len(content))

	result, err := s.orchestrator.Generate(ctx, BuildExpandPrompt(content))
	if err != nil {
		return s.failure(ctx, "Failed to expand description", err)
	}
	return result
}

func (s *Service) failure(ctx context.Context, operation string, err error) Result {
	s.logger.ErrorContext(ctx, operation,
		"error", redact.Error(err),
		"not_configured", errors.Is(err, ErrNotConfigured),
		"retries_exhausted", errors.Is(err, ErrExhaustedRetries))
	return Failure(operation + ": " + err.Error())
}
