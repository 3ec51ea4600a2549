package mocks

import (
	"context"
	"sync"

	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
)

// MockResponse is one scripted outcome of a GenerateText call.
type MockResponse struct {
	Text string
	Err  error
}

// MockTextModel implements generation.TextModel for testing
type MockTextModel struct {
	// GenerateTextFn allows test cases to mock the GenerateText behavior
	GenerateTextFn func(ctx context.Context, prompt string, params generation.ModelParams) (string, error)

	// Responses are consumed in order, one per call. Once exhausted, the last
	// response is repeated.
	Responses []MockResponse

	// Call tracking for verification
	GenerateTextCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateText was called
		Count int

		// Prompts contains all prompts passed to GenerateText calls
		Prompts []string

		// Params contains all model parameters passed to GenerateText calls
		Params []generation.ModelParams
	}
}

// GenerateText implements the generation.TextModel interface
func (m *MockTextModel) GenerateText(
	ctx context.Context,
	prompt string,
	params generation.ModelParams,
) (string, error) {
	m.GenerateTextCalls.mu.Lock()
	call := m.GenerateTextCalls.Count
	m.GenerateTextCalls.Count++
	m.GenerateTextCalls.Prompts = append(m.GenerateTextCalls.Prompts, prompt)
	m.GenerateTextCalls.Params = append(m.GenerateTextCalls.Params, params)
	m.GenerateTextCalls.mu.Unlock()

	// Use custom function if provided
	if m.GenerateTextFn != nil {
		return m.GenerateTextFn(ctx, prompt, params)
	}

	if len(m.Responses) == 0 {
		return "", nil
	}
	if call >= len(m.Responses) {
		call = len(m.Responses) - 1
	}
	r := m.Responses[call]
	return r.Text, r.Err
}

// CallCount returns the number of GenerateText calls so far.
func (m *MockTextModel) CallCount() int {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	return m.GenerateTextCalls.Count
}

// LastPrompt returns the prompt of the most recent call, or "".
func (m *MockTextModel) LastPrompt() string {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()
	if len(m.GenerateTextCalls.Prompts) == 0 {
		return ""
	}
	return m.GenerateTextCalls.Prompts[len(m.GenerateTextCalls.Prompts)-1]
}

// NewMockTextModelWithResponses creates a MockTextModel that answers each
// call with the next text.
func NewMockTextModelWithResponses(texts ...string) *MockTextModel {
	m := &MockTextModel{}
	for _, text := range texts {
		m.Responses = append(m.Responses, MockResponse{Text: text})
	}
	return m
}

// NewMockTextModelWithError creates a MockTextModel whose every call fails with err.
func NewMockTextModelWithError(err error) *MockTextModel {
	return &MockTextModel{Responses: []MockResponse{{Err: err}}}
}

// NewMockTextModelFailingThen creates a MockTextModel that fails failures
// times with err and then returns text.
func NewMockTextModelFailingThen(failures int, err error, text string) *MockTextModel {
	m := &MockTextModel{}
	for i := 0; i < failures; i++ {
		m.Responses = append(m.Responses, MockResponse{Err: err})
	}
	m.Responses = append(m.Responses, MockResponse{Text: text})
	return m
}

// Reset resets the call tracking state
func (m *MockTextModel) Reset() {
	m.GenerateTextCalls.mu.Lock()
	defer m.GenerateTextCalls.mu.Unlock()

	m.GenerateTextCalls.Count = 0
	m.GenerateTextCalls.Prompts = nil
	m.GenerateTextCalls.Params = nil
}
