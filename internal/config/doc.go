// Package config handles configuration loading, parsing, and validation
// from environment variables and optional .env files. It provides type-safe
// access to the settings needed by the HTTP server, the Gemini client, and the
// generation orchestrator while keeping configuration details separate from
// business logic.
//
// A Config is loaded once at process start and treated as read-only afterwards.
package config
