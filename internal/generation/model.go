package generation

import (
	"context"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
)

// TextModel is the capability the orchestrator needs from a model provider:
// turn a prompt into text using the given sampling parameters.
//
// Implementations must be safe for concurrent use; one instance is shared by
// every in-flight request.
type TextModel interface {
	GenerateText(ctx context.Context, prompt string, params ModelParams) (string, error)
}

// ModelParams is the fixed generation configuration sent with every call.
type ModelParams struct {
	ModelName       string
	Temperature     float32
	TopP            float32
	TopK            int32
	MaxOutputTokens int32
}

// ParamsFromConfig builds ModelParams from the LLM configuration.
func ParamsFromConfig(cfg config.LLMConfig) ModelParams {
	return ModelParams{
		ModelName:       cfg.ModelName,
		Temperature:     cfg.Temperature,
		TopP:            cfg.TopP,
		TopK:            int32(cfg.TopK),
		MaxOutputTokens: int32(cfg.MaxOutputTokens),
	}
}
