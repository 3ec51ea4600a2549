// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or returned in error responses. Provider
// errors can echo request URLs that carry the API key, so everything that
// crosses the HTTP boundary or reaches a log line goes through this package.
package redact

import (
	"regexp"
	"unicode/utf8"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"

	// previewLength is the number of leading credential characters shown by Preview.
	previewLength = 8
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order, each to the output of the previous one.
var rules = []rule{
	// Google API keys, wherever they appear
	{regexp.MustCompile(`AIza[0-9A-Za-z_\-]{20,}`), RedactedKeyPlaceholder},
	// key=... query parameters and x-goog-api-key headers
	{regexp.MustCompile(`(?i)([?&]key=|x-goog-api-key:\s*)[^&\s"']+`), "${1}" + RedactedKeyPlaceholder},
	// Bearer tokens
	{regexp.MustCompile(`(?i)(bearer\s+)[A-Za-z0-9_\-.~+/=]{8,}`), "${1}" + RedactedCredentialPlaceholder},
	// JWTs
	{regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`), "[REDACTED_JWT]"},
	// Generic secret assignments
	{regexp.MustCompile(`(?i)(api[_-]?key|token|secret|password)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`), "${1}${2}" + RedactionPlaceholder},
	// Local file paths (stack traces, .env locations)
	{regexp.MustCompile(`(^|\s)(/[\w.-]+){2,}`), "${1}" + RedactedPathPlaceholder},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Preview renders a credential for diagnostics: the first eight characters
// followed by "...". Credentials of eight characters or fewer yield "".
func Preview(secret string) string {
	if utf8.RuneCountInString(secret) <= previewLength {
		return ""
	}
	return string([]rune(secret)[:previewLength]) + "..."
}
