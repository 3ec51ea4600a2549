package generation

import "strings"

// Result is the outcome of a generation operation. Success implies a
// non-empty Content and an empty Error; a failed Result carries Error.
type Result struct {
	Success        bool       `json:"success"`
	Content        string     `json:"content"`
	UsageInfo      *UsageInfo `json:"usage_info,omitempty"`
	Error          string     `json:"error,omitempty"`
	CharacterCount *int       `json:"character_count,omitempty"`
}

// Failure builds a failed Result with the given message.
func Failure(message string) Result {
	return Result{Success: false, Error: message}
}

// UsageInfo is approximate token accounting for one generation. Counts are
// whitespace-delimited words, not the provider's billed tokens.
type UsageInfo struct {
	Model            string `json:"model"`
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
}

// NewUsageInfo builds a UsageInfo whose total is prompt + completion.
func NewUsageInfo(model string, promptTokens, completionTokens int) *UsageInfo {
	return &UsageInfo{
		Model:            model,
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
}

// CountTokens returns the number of whitespace-delimited tokens in s.
func CountTokens(s string) int {
	return len(strings.Fields(s))
}
