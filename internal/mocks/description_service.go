package mocks

import (
	"context"
	"sync"

	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
	"github.com/SleeperKt/GoogleTeamRepo/internal/generation"
)

// MockDescriptionService is a mock implementation of the description
// operations consumed by the HTTP handlers.
type MockDescriptionService struct {
	GenerateDescriptionFn func(ctx context.Context, task domain.TaskContext) generation.Result
	ShortenDescriptionFn  func(ctx context.Context, content string) generation.Result
	ExpandDescriptionFn   func(ctx context.Context, content string) generation.Result

	mu       sync.Mutex
	tasks    []domain.TaskContext
	contents []string
}

// GenerateDescription implements the description service interface.
func (m *MockDescriptionService) GenerateDescription(ctx context.Context, task domain.TaskContext) generation.Result {
	m.mu.Lock()
	m.tasks = append(m.tasks, task)
	m.mu.Unlock()

	if m.GenerateDescriptionFn != nil {
		return m.GenerateDescriptionFn(ctx, task)
	}
	return generation.Failure("GenerateDescription not mocked")
}

// ShortenDescription implements the description service interface.
func (m *MockDescriptionService) ShortenDescription(ctx context.Context, content string) generation.Result {
	m.recordContent(content)

	if m.ShortenDescriptionFn != nil {
		return m.ShortenDescriptionFn(ctx, content)
	}
	return generation.Failure("ShortenDescription not mocked")
}

// ExpandDescription implements the description service interface.
func (m *MockDescriptionService) ExpandDescription(ctx context.Context, content string) generation.Result {
	m.recordContent(content)

	if m.ExpandDescriptionFn != nil {
		return m.ExpandDescriptionFn(ctx, content)
	}
	return generation.Failure("ExpandDescription not mocked")
}

func (m *MockDescriptionService) recordContent(content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = append(m.contents, content)
}

// Tasks returns the tasks passed to GenerateDescription so far.
func (m *MockDescriptionService) Tasks() []domain.TaskContext {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.TaskContext(nil), m.tasks...)
}

// Contents returns the content passed to ShortenDescription and
// ExpandDescription so far.
func (m *MockDescriptionService) Contents() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.contents...)
}
