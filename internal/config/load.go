package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultEnvFiles are the .env files read by Load, in priority order.
var DefaultEnvFiles = []string{"../.env", ".env"}

// DefaultAllowedOrigins is the fixed list of origins served by the frontend
// and the backend API during development.
var DefaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:3001",
	"http://localhost:8080",
	"http://localhost:7001",
}

// binding ties a viper key to the environment variable it is read from.
type binding struct {
	key string
	env string
	def any
}

var bindings = []binding{
	{"server.host", "AI_SERVICE_HOST", "0.0.0.0"},
	{"server.port", "AI_SERVICE_PORT", 8000},
	{"server.log_level", "LOG_LEVEL", "info"},
	{"server.log_format", "LOG_FORMAT", "json"},
	{"server.backend_url", "BACKEND_API_URL", "http://localhost:7001"},
	{"server.allowed_origins", "ALLOWED_ORIGINS", DefaultAllowedOrigins},
	{"llm.gemini_api_key", "GOOGLE_API_KEY", ""},
	{"llm.model_name", "MODEL_NAME", "gemini-2.0-flash-exp"},
	{"llm.temperature", "MODEL_TEMPERATURE", 0.7},
	{"llm.top_p", "MODEL_TOP_P", 0.9},
	{"llm.top_k", "MODEL_TOP_K", 40},
	{"llm.max_output_tokens", "MODEL_MAX_TOKENS", 1024},
	{"llm.max_retries", "MAX_RETRIES", 3},
	{"llm.request_timeout_ms", "REQUEST_TIMEOUT_MS", 30000},
	{"auth.jwt_secret", "AUTH_JWT_SECRET", ""},
}

// Load configuration from environment variables and the default .env files.
// Environment variables take precedence over values from .env files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFrom(DefaultEnvFiles...)
}

// LoadFrom behaves like Load but reads the given .env files. A value found in
// an earlier file wins over the same key in a later one; missing files are
// skipped.
func LoadFrom(envFiles ...string) (*Config, error) {
	fileValues, err := readEnvFiles(envFiles)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	for _, b := range bindings {
		v.SetDefault(b.key, b.def)
		if fv, ok := fileValues[b.env]; ok {
			v.SetDefault(b.key, fv)
		}
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", b.env, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	cfg.Server.AllowedOrigins = cleanList(cfg.Server.AllowedOrigins)

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// cleanList trims each element of a comma-separated override and drops the
// empty ones, so "a, b," reads as [a b].
func cleanList(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}

// readEnvFiles collects KEY=value pairs from the given files. Keys are
// returned upper-cased so they line up with the bindings table.
func readEnvFiles(paths []string) (map[string]string, error) {
	values := make(map[string]string)
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to stat env file %s: %w", path, err)
		}

		fv := viper.New()
		fv.SetConfigFile(path)
		fv.SetConfigType("env")
		if err := fv.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read env file %s: %w", path, err)
		}

		for _, b := range bindings {
			if _, seen := values[b.env]; seen {
				continue
			}
			// viper lower-cases keys read from env files
			if fv.IsSet(b.env) {
				values[b.env] = fv.GetString(b.env)
			}
		}
	}
	return values, nil
}
