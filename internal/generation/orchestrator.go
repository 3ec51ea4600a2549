package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/SleeperKt/GoogleTeamRepo/internal/redact"
	"github.com/google/uuid"
)

// DefaultBackoffUnit is the delay before the first retry. Later retries wait
// twice as long as the previous one.
const DefaultBackoffUnit = time.Second

// Sleeper blocks for d or until ctx is done, returning ctx.Err() in the latter case.
type Sleeper func(ctx context.Context, d time.Duration) error

// Orchestrator executes prompts against a TextModel with bounded retries.
//
// It holds no mutable state, so a single instance serves any number of
// concurrent calls; each call retries and backs off on its own.
type Orchestrator struct {
	model       TextModel
	configured  bool
	maxRetries  int
	params      ModelParams
	logger      *slog.Logger
	backoffUnit time.Duration
	sleep       Sleeper
}

// Option customizes an Orchestrator.
type Option func(*Orchestrator)

// WithBackoffUnit sets the delay before the first retry.
func WithBackoffUnit(d time.Duration) Option {
	return func(o *Orchestrator) {
		o.backoffUnit = d
	}
}

// WithSleeper replaces the function used to wait between attempts.
func WithSleeper(s Sleeper) Option {
	return func(o *Orchestrator) {
		o.sleep = s
	}
}

// NewOrchestrator creates an Orchestrator. model may be nil only when cfg has
// no API key, in which case every Generate call fails with ErrNotConfigured.
func NewOrchestrator(
	model TextModel,
	cfg config.LLMConfig,
	logger *slog.Logger,
	opts ...Option,
) (*Orchestrator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.IsConfigured() && model == nil {
		return nil, fmt.Errorf("%w: model cannot be nil when an API key is configured", ErrInvalidConfig)
	}

	o := &Orchestrator{
		model:       model,
		configured:  cfg.IsConfigured(),
		maxRetries:  cfg.MaxRetries,
		params:      ParamsFromConfig(cfg),
		logger:      logger,
		backoffUnit: DefaultBackoffUnit,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o, nil
}

// GenerateOption customizes a single Generate call.
type GenerateOption func(*generateOptions)

type generateOptions struct {
	maxRetries int
}

// WithMaxRetries overrides the configured number of attempts for one call.
func WithMaxRetries(n int) GenerateOption {
	return func(o *generateOptions) {
		o.maxRetries = n
	}
}

// Generate sends prompt to the model, retrying failed attempts with
// exponential backoff (1, 2, 4 ... backoff units, no jitter).
//
// An attempt fails when the provider returns an error or only whitespace. On
// success the Result carries the trimmed text and approximate usage. When
// every attempt fails the error is a *RetryError wrapping the last failure.
// Without an API key the call fails immediately with ErrNotConfigured.
func (o *Orchestrator) Generate(ctx context.Context, prompt string, opts ...GenerateOption) (Result, error) {
	if !o.configured {
		return Result{}, ErrNotConfigured
	}

	options := generateOptions{maxRetries: o.maxRetries}
	for _, opt := range opts {
		opt(&options)
	}

	maxRetries := options.maxRetries
	if maxRetries < 1 {
		o.logger.WarnContext(ctx, "Invalid max retries value, using a single attempt",
			"max_retries", maxRetries)
		maxRetries = 1
	}

	log := o.logger.With("generation_id", uuid.NewString())

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		attemptNum := attempt + 1 // For logging (1-based)
		log.DebugContext(ctx, "Making Gemini API call",
			"attempt", attemptNum,
			"max_attempts", maxRetries,
			"prompt_length", len(prompt))

		text, err := o.attempt(ctx, prompt)
		if err == nil {
			log.InfoContext(ctx, "Gemini API call successful", "attempt", attemptNum)
			return Result{
				Success:   true,
				Content:   text,
				UsageInfo: NewUsageInfo(o.params.ModelName, CountTokens(prompt), CountTokens(text)),
			}, nil
		}

		lastErr = err
		log.ErrorContext(ctx, "Gemini API attempt failed",
			"attempt", attemptNum,
			"error", redact.Error(err))

		if attemptNum == maxRetries {
			break
		}

		delay := o.backoffUnit * time.Duration(1<<attempt)
		log.InfoContext(ctx, "Retrying after delay",
			"attempt", attemptNum,
			"delay", delay.String())

		if err := o.sleep(ctx, delay); err != nil {
			log.WarnContext(ctx, "Generation cancelled during retry delay",
				"attempt", attemptNum,
				"ctx_err", err)
			return Result{}, &RetryError{Attempts: attemptNum, Err: err}
		}
	}

	log.WarnContext(ctx, "Maximum retry attempts reached", "max_retries", maxRetries)
	return Result{}, &RetryError{Attempts: maxRetries, Err: lastErr}
}

// attempt performs one provider call and classifies its outcome.
func (o *Orchestrator) attempt(ctx context.Context, prompt string) (string, error) {
	text, err := o.model.GenerateText(ctx, prompt, o.params)
	if err != nil {
		if errors.Is(err, ErrEmptyResponse) || errors.Is(err, ErrProvider) {
			return "", err
		}
		return "", fmt.Errorf("%w: %w", ErrProvider, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// sleepContext waits for d unless ctx is done first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Configured reports whether the orchestrator has an API key to call the model with.
func (o *Orchestrator) Configured() bool {
	return o.configured
}
