package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Default values applied to TaskContext fields that are absent from a request.
const (
	DefaultTaskType = "task"
	DefaultPriority = 1
)

// TaskContext describes the task a description is generated for. It arrives
// with a request, is never stored, and is not modified once decoded.
type TaskContext struct {
	Title          string   `json:"title"                     validate:"required"`
	Description    string   `json:"description"`
	Stage          string   `json:"stage"                     validate:"required"`
	TaskType       string   `json:"task_type"`
	Priority       int      `json:"priority"`
	Labels         []string `json:"labels"`
	DueDate        *string  `json:"due_date,omitempty"`
	EstimatedHours *int     `json:"estimated_hours,omitempty"`
}

// NewTaskContext creates a TaskContext with the given title and stage and
// default values for every optional field.
func NewTaskContext(title, stage string) TaskContext {
	return TaskContext{
		Title:    title,
		Stage:    stage,
		TaskType: DefaultTaskType,
		Priority: DefaultPriority,
		Labels:   []string{},
	}
}

// UnmarshalJSON decodes a TaskContext, applying defaults for fields the
// payload omits.
func (t *TaskContext) UnmarshalJSON(data []byte) error {
	type taskContextAlias TaskContext
	decoded := taskContextAlias{
		TaskType: DefaultTaskType,
		Priority: DefaultPriority,
		Labels:   []string{},
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}
	*t = TaskContext(decoded)
	return nil
}

// Validate checks that the fields required for prompt construction are present.
func (t TaskContext) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: title", ErrMissingField)
	}
	if strings.TrimSpace(t.Stage) == "" {
		return fmt.Errorf("%w: stage", ErrMissingField)
	}
	return nil
}

// HasDescription reports whether the task carries a non-blank description.
func (t TaskContext) HasDescription() bool {
	return strings.TrimSpace(t.Description) != ""
}

// StageCategory returns the workflow category of the task's stage.
func (t TaskContext) StageCategory() StageCategory {
	return ClassifyStage(t.Stage)
}
