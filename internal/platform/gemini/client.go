package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
	"google.golang.org/genai"
)

// Client implements generation.TextModel using the Gemini API.
type Client struct {
	logger *slog.Logger
	client *genai.Client
}

var _ generation.TextModel = (*Client)(nil)

type clientOptions struct {
	baseURL    string
	httpClient *http.Client
}

// Option customizes how the Gemini client is built.
type Option func(*clientOptions)

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(url string) Option {
	return func(o *clientOptions) {
		o.baseURL = url
	}
}

// WithHTTPClient replaces the HTTP client used for API calls. It takes
// precedence over the configured request timeout.
func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = c
	}
}

// NewClient creates a Client authenticated with cfg.GeminiAPIKey. Each API
// call is bounded by cfg.RequestTimeout().
func NewClient(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig, opts ...Option) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if !cfg.IsConfigured() {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	options := clientOptions{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout()},
	}
	for _, opt := range opts {
		opt(&options)
	}

	clientConfig := &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: options.httpClient,
	}
	if options.baseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: options.baseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, err)
	}

	logger.InfoContext(ctx, "Gemini client initialized",
		"model", cfg.ModelName,
		"api_key_preview", cfg.APIKeyPreview(),
		"request_timeout", cfg.RequestTimeout().String())

	return &Client{logger: logger, client: client}, nil
}

// GenerateText sends prompt to the model named in params and returns the
// concatenated text of the first candidate.
func (c *Client) GenerateText(ctx context.Context, prompt string, params generation.ModelParams) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, params.ModelName, genai.Text(prompt), contentConfig(params))
	if err != nil {
		return "", fmt.Errorf("%w: %w", generation.ErrProvider, err)
	}

	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrEmptyResponse)
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", generation.ErrProvider, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("%w: no candidates", generation.ErrEmptyResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrProvider)
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("%w: no text in candidate", generation.ErrEmptyResponse)
	}

	c.logger.DebugContext(ctx, "Gemini response received",
		"model", params.ModelName,
		"finish_reason", string(resp.Candidates[0].FinishReason),
		"response_length", len(text))

	return text, nil
}

// contentConfig maps ModelParams onto a genai request configuration.
func contentConfig(params generation.ModelParams) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(params.Temperature),
		TopP:            genai.Ptr(params.TopP),
		TopK:            genai.Ptr(float32(params.TopK)),
		MaxOutputTokens: params.MaxOutputTokens,
	}
}
