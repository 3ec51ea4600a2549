package generation_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
	"github.com/SleeperKt/GoogleTeamRepo/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

// testLLMConfig returns a configured LLMConfig matching the service defaults.
func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:     "test-api-key-1234567890",
		ModelName:        "gemini-2.0-flash-exp",
		Temperature:      0.7,
		TopP:             0.9,
		TopK:             40,
		MaxOutputTokens:  1024,
		MaxRetries:       3,
		RequestTimeoutMS: 30000,
	}
}

// recordingSleeper records requested delays instead of sleeping.
type recordingSleeper struct {
	mu     sync.Mutex
	delays []time.Duration
}

func (s *recordingSleeper) Sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays = append(s.delays, d)
	return nil
}

func (s *recordingSleeper) Delays() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.delays...)
}

// newTestOrchestrator builds an orchestrator with a recording sleeper and a
// buffer-backed logger.
func newTestOrchestrator(
	t *testing.T,
	model generation.TextModel,
	cfg config.LLMConfig,
) (*generation.Orchestrator, *recordingSleeper, *logger.TestLogBuffer) {
	t.Helper()

	l, buf := logger.NewTestLogger()
	sleeper := &recordingSleeper{}
	o, err := generation.NewOrchestrator(model, cfg, l, generation.WithSleeper(sleeper.Sleep))
	require.NoError(t, err)
	return o, sleeper, buf
}
