package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/SleeperKt/GoogleTeamRepo/internal/config"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
	"github.com/SleeperKt/GoogleTeamRepo/internal/platform/gemini"
	"github.com/SleeperKt/GoogleTeamRepo/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "test-api-key-1234567890"

func testConfig() config.LLMConfig {
	return config.LLMConfig{
		GeminiAPIKey:     testAPIKey,
		ModelName:        "gemini-2.0-flash-exp",
		Temperature:      0.7,
		TopP:             0.9,
		TopK:             40,
		MaxOutputTokens:  1024,
		MaxRetries:       3,
		RequestTimeoutMS: 5000,
	}
}

// fakeGemini is a minimal stand-in for the generateContent endpoint.
type fakeGemini struct {
	mu       sync.Mutex
	status   int
	body     string
	paths    []string
	apiKeys  []string
	requests []map[string]any
}

func (f *fakeGemini) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req map[string]any
	_ = json.NewDecoder(r.Body).Decode(&req)

	f.mu.Lock()
	f.paths = append(f.paths, r.URL.Path)
	f.apiKeys = append(f.apiKeys, r.Header.Get("x-goog-api-key"))
	f.requests = append(f.requests, req)
	status, body := f.status, f.body
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func newTestClient(t *testing.T, fake *fakeGemini) *gemini.Client {
	t.Helper()

	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)

	l, _ := logger.NewTestLogger()
	c, err := gemini.NewClient(context.Background(), l, testConfig(),
		gemini.WithBaseURL(srv.URL+"/"),
		gemini.WithHTTPClient(srv.Client()))
	require.NoError(t, err)
	return c
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	l, _ := logger.NewTestLogger()

	_, err := gemini.NewClient(context.Background(), nil, testConfig())
	assert.Error(t, err)

	noKey := testConfig()
	noKey.GeminiAPIKey = ""
	_, err = gemini.NewClient(context.Background(), l, noKey)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)

	noModel := testConfig()
	noModel.ModelName = ""
	_, err = gemini.NewClient(context.Background(), l, noModel)
	assert.ErrorIs(t, err, generation.ErrInvalidConfig)
}

func TestGenerateTextSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeGemini{body: `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "Fix the "}, {"text": "session check."}]},
			"finishReason": "STOP"
		}]
	}`}
	c := newTestClient(t, fake)

	params := generation.ParamsFromConfig(testConfig())
	text, err := c.GenerateText(context.Background(), "Describe the task", params)

	require.NoError(t, err)
	assert.Equal(t, "Fix the session check.", text)

	require.Len(t, fake.paths, 1)
	assert.True(t, strings.HasSuffix(fake.paths[0], "models/gemini-2.0-flash-exp:generateContent"), fake.paths[0])
	assert.Equal(t, testAPIKey, fake.apiKeys[0])

	genConfig, ok := fake.requests[0]["generationConfig"].(map[string]any)
	require.True(t, ok, "request carries a generation config")
	assert.InDelta(t, 0.7, genConfig["temperature"], 0.0001)
	assert.InDelta(t, 0.9, genConfig["topP"], 0.0001)
	assert.InDelta(t, 40, genConfig["topK"], 0.0001)
	assert.InDelta(t, 1024, genConfig["maxOutputTokens"], 0.0001)
	assert.Contains(t, mustJSON(t, fake.requests[0]["contents"]), "Describe the task")
}

func TestGenerateTextOutcomes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:    "no candidates",
			body:    `{"candidates": []}`,
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name:    "candidate without text",
			body:    `{"candidates": [{"content": {"role": "model", "parts": []}, "finishReason": "STOP"}]}`,
			wantErr: generation.ErrEmptyResponse,
		},
		{
			name:    "safety block",
			body:    `{"candidates": [{"finishReason": "SAFETY"}]}`,
			wantErr: generation.ErrProvider,
		},
		{
			name:    "blocked prompt",
			body:    `{"promptFeedback": {"blockReason": "SAFETY"}}`,
			wantErr: generation.ErrProvider,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `{"error": {"code": 500, "message": "internal", "status": "INTERNAL"}}`,
			wantErr: generation.ErrProvider,
		},
		{
			name:    "rate limited",
			status:  http.StatusTooManyRequests,
			body:    `{"error": {"code": 429, "message": "quota", "status": "RESOURCE_EXHAUSTED"}}`,
			wantErr: generation.ErrProvider,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, &fakeGemini{status: tc.status, body: tc.body})
			text, err := c.GenerateText(context.Background(), "prompt", generation.ParamsFromConfig(testConfig()))

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, text)
		})
	}
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
