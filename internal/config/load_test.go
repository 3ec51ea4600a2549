package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable the loader reads so tests start from defaults.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, b := range bindings {
		t.Setenv(b.env, "")
		require.NoError(t, os.Unsetenv(b.env))
	}
}

// writeEnvFile creates a .env file with the given content in a temp dir.
func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "Failed to write env file")
	return path
}

// TestLoadDefaults verifies the defaults used when nothing is configured.
func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFrom()

	require.NoError(t, err, "LoadFrom() should not fail with defaults only")
	require.NotNil(t, cfg)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "json", cfg.Server.LogFormat)
	assert.Equal(t, "http://localhost:7001", cfg.Server.BackendURL)
	assert.Equal(t, DefaultAllowedOrigins, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.LLM.ModelName)
	assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.0001)
	assert.InDelta(t, 0.9, cfg.LLM.TopP, 0.0001)
	assert.Equal(t, 40, cfg.LLM.TopK)
	assert.Equal(t, 1024, cfg.LLM.MaxOutputTokens)
	assert.Equal(t, 3, cfg.LLM.MaxRetries)
	assert.Equal(t, 30*time.Second, cfg.LLM.RequestTimeout())
	assert.False(t, cfg.LLM.IsConfigured(), "no credential means not configured")
	assert.Empty(t, cfg.LLM.APIKeyPreview())
	assert.Equal(t, "0.0.0.0:8000", cfg.Server.Addr())
}

// TestLoadFromEnv verifies that environment variables override defaults.
func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "AIzaSyTestKey123456")
	t.Setenv("AI_SERVICE_HOST", "127.0.0.1")
	t.Setenv("AI_SERVICE_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BACKEND_API_URL", "http://backend:7001")
	t.Setenv("ALLOWED_ORIGINS", "http://example.com,http://localhost:4000")
	t.Setenv("MODEL_NAME", "gemini-2.0-flash")
	t.Setenv("MODEL_TEMPERATURE", "0.2")
	t.Setenv("MODEL_TOP_K", "16")
	t.Setenv("MAX_RETRIES", "5")
	t.Setenv("REQUEST_TIMEOUT_MS", "1500")

	cfg, err := LoadFrom()

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr())
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "http://backend:7001", cfg.Server.BackendURL)
	assert.Equal(t, []string{"http://example.com", "http://localhost:4000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "gemini-2.0-flash", cfg.LLM.ModelName)
	assert.InDelta(t, 0.2, cfg.LLM.Temperature, 0.0001)
	assert.Equal(t, 16, cfg.LLM.TopK)
	assert.Equal(t, 5, cfg.LLM.MaxRetries)
	assert.Equal(t, 1500*time.Millisecond, cfg.LLM.RequestTimeout())
	assert.True(t, cfg.LLM.IsConfigured())
	assert.Equal(t, "AIzaSyTe...", cfg.LLM.APIKeyPreview())
}

func TestLoadAllowedOriginsWithSpaces(t *testing.T) {
	clearEnv(t)
	t.Setenv("ALLOWED_ORIGINS", "http://a.example, http://b.example ,")

	cfg, err := LoadFrom()

	require.NoError(t, err, "spaces around origins should be tolerated")
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoadMaxRetriesUpperBound(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_RETRIES", "10")

	cfg, err := LoadFrom()

	require.NoError(t, err)
	assert.Equal(t, 10, cfg.LLM.MaxRetries)
}

// TestLoadFromEnvFiles verifies .env handling and precedence.
func TestLoadFromEnvFiles(t *testing.T) {
	clearEnv(t)
	parent := writeEnvFile(t, "GOOGLE_API_KEY=from-parent-file-key\nMODEL_TOP_K=20\n")
	local := writeEnvFile(t, "GOOGLE_API_KEY=from-local-file-key\nMAX_RETRIES=4\nMODEL_TOP_K=30\n")

	t.Run("earlier_file_wins", func(t *testing.T) {
		cfg, err := LoadFrom(parent, local)
		require.NoError(t, err)
		assert.Equal(t, "from-parent-file-key", cfg.LLM.GeminiAPIKey)
		assert.Equal(t, 20, cfg.LLM.TopK)
		assert.Equal(t, 4, cfg.LLM.MaxRetries, "keys absent from the first file come from the second")
	})

	t.Run("environment_wins_over_files", func(t *testing.T) {
		t.Setenv("GOOGLE_API_KEY", "from-environment-key")
		cfg, err := LoadFrom(parent, local)
		require.NoError(t, err)
		assert.Equal(t, "from-environment-key", cfg.LLM.GeminiAPIKey)
	})

	t.Run("missing_files_are_skipped", func(t *testing.T) {
		cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.env"))
		require.NoError(t, err)
		assert.False(t, cfg.LLM.IsConfigured())
	})
}

// TestLoadValidationErrors verifies that the Load function correctly validates the configuration.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name    string
		envVars map[string]string
	}{
		{name: "Invalid port number", envVars: map[string]string{"AI_SERVICE_PORT": "999999"}},
		{name: "Invalid log level", envVars: map[string]string{"LOG_LEVEL": "verbose"}},
		{name: "Invalid log format", envVars: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "Invalid backend URL", envVars: map[string]string{"BACKEND_API_URL": "not a url"}},
		{name: "Temperature out of range", envVars: map[string]string{"MODEL_TEMPERATURE": "3.5"}},
		{name: "Top-p out of range", envVars: map[string]string{"MODEL_TOP_P": "1.5"}},
		{name: "Zero retries", envVars: map[string]string{"MAX_RETRIES": "0"}},
		{name: "Too many retries", envVars: map[string]string{"MAX_RETRIES": "64"}},
		{name: "Invalid allowed origin", envVars: map[string]string{"ALLOWED_ORIGINS": "http://a.example,not a url"}},
		{name: "Short JWT secret", envVars: map[string]string{"AUTH_JWT_SECRET": "tooshort"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tc.envVars {
				t.Setenv(k, v)
			}

			cfg, err := LoadFrom()

			require.Error(t, err, "LoadFrom() should reject invalid configuration")
			assert.Contains(t, err.Error(), "validation failed")
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

func TestLLMConfigString(t *testing.T) {
	t.Parallel()

	cfg := LLMConfig{GeminiAPIKey: "AIzaSySuperSecretValue", ModelName: "gemini-2.0-flash-exp"}

	s := cfg.String()
	assert.NotContains(t, s, "SuperSecretValue", "String() must not leak the credential")
	assert.Contains(t, s, "AIzaSySu...")
	assert.Contains(t, s, "gemini-2.0-flash-exp")
}
