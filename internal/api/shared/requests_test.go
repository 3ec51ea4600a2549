package shared_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/SleeperKt/GoogleTeamRepo/internal/api"
	"github.com/SleeperKt/GoogleTeamRepo/internal/api/shared"
	"github.com/SleeperKt/GoogleTeamRepo/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postJSON(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/generate-description", strings.NewReader(body))
}

func TestDecodeJSONGenerateRequest(t *testing.T) {
	t.Parallel()

	var req api.GenerateRequest
	err := shared.DecodeJSON(postJSON(`{"task": {"title": "Fix login bug", "stage": "In Progress", "labels": ["auth"]}}`), &req)

	require.NoError(t, err)
	assert.Equal(t, "Fix login bug", req.Task.Title)
	assert.Equal(t, "In Progress", req.Task.Stage)
	assert.Equal(t, []string{"auth"}, req.Task.Labels)
	assert.Equal(t, domain.DefaultTaskType, req.Task.TaskType, "omitted task_type gets its default")
	assert.Equal(t, domain.DefaultPriority, req.Task.Priority, "omitted priority gets its default")
}

func TestDecodeJSONProcessRequest(t *testing.T) {
	t.Parallel()

	var req api.ProcessRequest
	err := shared.DecodeJSON(postJSON(`{"content": "Users cannot log in", "context": {"source": "board"}}`), &req)

	require.NoError(t, err)
	require.NotNil(t, req.Content)
	assert.Equal(t, "Users cannot log in", *req.Content)
	assert.Equal(t, "board", req.Context["source"])
}

func TestDecodeJSONErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		errContains string
	}{
		{"trailing comma", `{"content": "Users cannot log in",}`, "invalid character"},
		{"empty body", "", "EOF"},
		{"wrong content type", `{"content": 42}`, "cannot unmarshal number"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var req api.ProcessRequest
			err := shared.DecodeJSON(postJSON(tc.body), &req)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errContains)
		})
	}
}

func TestDecodeJSONBodyTooLarge(t *testing.T) {
	t.Parallel()

	body := `{"content": "` + strings.Repeat("a", shared.MaxRequestBodyBytes) + `"}`

	var req api.ProcessRequest
	err := shared.DecodeJSON(postJSON(body), &req)

	var maxErr *http.MaxBytesError
	assert.True(t, errors.As(err, &maxErr), "expected MaxBytesError, got %v", err)
}

type failingBody struct{}

func (failingBody) Read([]byte) (int, error) {
	return 0, io.ErrUnexpectedEOF
}

func TestDecodeJSONReadError(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/shorten-description", failingBody{})

	var target api.ProcessRequest
	err := shared.DecodeJSON(req, &target)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected EOF")
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	content := "Users cannot log in"
	empty := ""

	tests := []struct {
		name         string
		req          interface{}
		wantErr      bool
		missingField bool
	}{
		{
			name:    "generate request",
			req:     &api.GenerateRequest{Task: domain.NewTaskContext("Fix login bug", "In Progress")},
			wantErr: false,
		},
		{
			name:    "generate request without title fails the struct tags",
			req:     &api.GenerateRequest{Task: domain.NewTaskContext("", "In Progress")},
			wantErr: true,
		},
		{
			name:         "blank title passes the tags but not Validate",
			req:          &api.GenerateRequest{Task: domain.NewTaskContext("   ", "In Progress")},
			wantErr:      true,
			missingField: true,
		},
		{
			name:         "blank stage passes the tags but not Validate",
			req:          &api.GenerateRequest{Task: domain.NewTaskContext("Fix login bug", "\t")},
			wantErr:      true,
			missingField: true,
		},
		{
			name:    "process request",
			req:     &api.ProcessRequest{Content: &content},
			wantErr: false,
		},
		{
			name:    "process request with empty content",
			req:     &api.ProcessRequest{Content: &empty},
			wantErr: false,
		},
		{
			name:    "process request without content",
			req:     &api.ProcessRequest{},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := shared.ValidateRequest(tc.req)

			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var validationErrs validator.ValidationErrors
			if tc.missingField {
				assert.ErrorIs(t, err, domain.ErrMissingField)
				assert.False(t, errors.As(err, &validationErrs), "struct tags should have passed")
			} else {
				assert.True(t, errors.As(err, &validationErrs), "expected validator errors, got %v", err)
			}
		})
	}
}
