// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and code lookups

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/HumanBot000/BoilerGen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "cyclic_dependency",
			code:    errors.ErrCyclicDependency,
			message: "cyclic dependency detected among templates",
			wantStr: "[CYCLIC_DEPENDENCY] cyclic dependency detected among templates",
		},
		{
			name:    "already_exists",
			code:    errors.ErrAlreadyExists,
			message: "output directory already exists",
			wantStr: "[ALREADY_EXISTS] output directory already exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrMissingDependency, "missing dependency '%s' required by template '%s'", "base", "auth")
	assert.Equal(t, "missing dependency 'base' required by template 'auth'", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("permission denied")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrPermission, "cannot clear output directory")

		assert.Equal(t, errors.ErrPermission, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[PERMISSION] cannot clear output directory: permission denied", err.Error())
		assert.True(t, stderrors.Is(err, baseErr))
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "internal error"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "internal %s", "error"))
	})
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrTemplateNotFound, "template not found").
		WithDetail("id", "flask-main").
		WithDetail("root", "/templates")

	assert.Equal(t, "flask-main", err.Details["id"])
	assert.Equal(t, "/templates", err.Details["root"])
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTagInvalid, "error 1")
	err2 := errors.New(errors.ErrTagInvalid, "error 2")
	err3 := errors.New(errors.ErrInternal, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{
			name:     "matching_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrNotFound,
			expected: true,
		},
		{
			name:     "different_code",
			err:      errors.New(errors.ErrNotFound, "not found"),
			code:     errors.ErrInternal,
			expected: false,
		},
		{
			name:     "wrapped_by_fmt",
			err:      fmt.Errorf("outer: %w", errors.New(errors.ErrHookFailed, "hook")),
			code:     errors.ErrHookFailed,
			expected: true,
		},
		{
			name:     "standard_error",
			err:      stderrors.New("standard error"),
			code:     errors.ErrNotFound,
			expected: false,
		},
		{
			name:     "nil_error",
			err:      nil,
			code:     errors.ErrNotFound,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCodeAndDetails(t *testing.T) {
	err := errors.New(errors.ErrMissingConfigValue, "missing").WithDetail("key", "debug")
	wrapped := fmt.Errorf("context: %w", err)

	assert.Equal(t, errors.ErrMissingConfigValue, errors.GetErrorCode(wrapped))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))

	details := errors.GetErrorDetails(wrapped)
	require.NotNil(t, details)
	assert.Equal(t, "debug", details["key"])
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}
