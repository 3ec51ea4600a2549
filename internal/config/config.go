package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/SleeperKt/GoogleTeamRepo/internal/redact"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Auth   AuthConfig   `mapstructure:"auth"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Host      string `mapstructure:"host"       validate:"required"`
	Port      int    `mapstructure:"port"       validate:"required,gt=0,lt=65536"`
	LogLevel  string `mapstructure:"log_level"  validate:"required,oneof=debug info warn error"`
	LogFormat string `mapstructure:"log_format" validate:"required,oneof=json text"`

	// BackendURL is the main ProjectHub API. It is reported by the health
	// endpoint and allowed as a CORS origin by default.
	BackendURL string `mapstructure:"backend_url" validate:"required,url"`

	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,url"`
}

// Addr returns the host:port pair the HTTP server binds to.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// LLMConfig contains all LLM integration related settings.
//
// GeminiAPIKey is deliberately optional: the service starts without it and
// reports missing_api_key from the health endpoint.
type LLMConfig struct {
	GeminiAPIKey    string  `mapstructure:"gemini_api_key"`
	ModelName       string  `mapstructure:"model_name"        validate:"required"`
	Temperature     float32 `mapstructure:"temperature"       validate:"gte=0,lte=2"`
	TopP            float32 `mapstructure:"top_p"             validate:"gte=0,lte=1"`
	TopK            int     `mapstructure:"top_k"             validate:"gte=1"`
	MaxOutputTokens int     `mapstructure:"max_output_tokens" validate:"gt=0"`
	MaxRetries      int     `mapstructure:"max_retries"       validate:"gte=1,lte=10"`

	// RequestTimeoutMS bounds a single call to the provider. The orchestrator
	// itself imposes no deadline.
	RequestTimeoutMS int `mapstructure:"request_timeout_ms" validate:"gt=0"`
}

// IsConfigured reports whether a Gemini credential is present.
func (c LLMConfig) IsConfigured() bool {
	return c.GeminiAPIKey != ""
}

// APIKeyPreview returns the first eight characters of the credential followed
// by "...", or an empty string when the credential is unset or too short.
func (c LLMConfig) APIKeyPreview() string {
	return redact.Preview(c.GeminiAPIKey)
}

// RequestTimeout returns RequestTimeoutMS as a duration.
func (c LLMConfig) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutMS) * time.Millisecond
}

// String renders the LLM settings without the credential.
func (c LLMConfig) String() string {
	return fmt.Sprintf("model=%s temperature=%.2f top_p=%.2f top_k=%d max_output_tokens=%d max_retries=%d key=%q",
		c.ModelName, c.Temperature, c.TopP, c.TopK, c.MaxOutputTokens, c.MaxRetries, c.APIKeyPreview())
}

// AuthConfig contains settings for the optional caller identity middleware.
// Tokens are never required; when JWTSecret is empty bearer tokens are ignored.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret" validate:"omitempty,min=32"`
}
