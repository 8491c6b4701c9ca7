package errors

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	// Test creating a new error
	err := New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())

	// Test creating a new formatted error
	err = Newf("formatted %s", "error")
	assert.NotNil(t, err)
	assert.Equal(t, "formatted error", err.Error())

	// Check that the error is an ApplicationError
	var appErr *ApplicationError
	assert.True(t, As(err, &appErr))
	assert.Equal(t, "formatted error", appErr.Error())
	assert.Equal(t, Unknown, appErr.Kind())
}

func TestWrapping(t *testing.T) {
	// Test wrapping an error
	origErr := New("original error")
	wrappedErr := Wrap(origErr, "wrapped")
	assert.NotNil(t, wrappedErr)
	assert.Equal(t, "wrapped: original error", wrappedErr.Error())

	// Test unwrapping
	unwrappedErr := Unwrap(wrappedErr)
	assert.Equal(t, origErr, unwrappedErr)

	// Test wrapped formatted error
	wrappedFormatted := Wrapf(origErr, "formatted %s", "wrapper")
	assert.NotNil(t, wrappedFormatted)
	assert.Equal(t, "formatted wrapper: original error", wrappedFormatted.Error())

	// Test wrapping nil returns nil
	assert.Nil(t, Wrap(nil, "wrapper"))
	assert.Nil(t, Wrapf(nil, "formatted %s", "wrapper"))

	// Test deeper wrapping
	deepWrapped := Wrap(wrappedErr, "deeper")
	assert.Equal(t, "deeper: wrapped: original error", deepWrapped.Error())

	// Test Is function
	assert.True(t, Is(wrappedErr, origErr))
	assert.True(t, Is(deepWrapped, origErr))
}

func TestFileError(t *testing.T) {
	fileErr := NewFileError("cannot rename", "/photos/a.jpg", FileAccessDenied, os.ErrPermission)
	assert.Equal(t, "cannot rename: /photos/a.jpg: permission denied", fileErr.Error())
	assert.Equal(t, "/photos/a.jpg", fileErr.Path())
	assert.True(t, IsFileAccessDenied(fileErr))
	assert.False(t, IsFileNotFound(fileErr))
	assert.True(t, Is(fileErr, os.ErrPermission))

	// Without path falls back to the base message
	noPath := NewFileError("source missing", "", FileNotFound, nil)
	assert.Equal(t, "source missing", noPath.Error())
	assert.True(t, IsFileNotFound(noPath))

	// Predicates see through fmt wrapping
	wrapped := fmt.Errorf("batch: %w", noPath)
	assert.True(t, IsFileNotFound(wrapped))
}

func TestConfigError(t *testing.T) {
	configErr := NewConfigError("invalid value", "defaults.digit_padding", InvalidConfig, nil)
	assert.Equal(t, "invalid value: defaults.digit_padding", configErr.Error())
	assert.Equal(t, "defaults.digit_padding", configErr.Param())
	assert.True(t, IsInvalidConfig(configErr))

	parseErr := NewConfigError("error parsing config file", "config.yaml", InvalidConfig, New("bad yaml"))
	assert.Equal(t, "error parsing config file: config.yaml: bad yaml", parseErr.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError(EmptyPrefix, "prefix must not be empty")
	assert.Equal(t, "prefix must not be empty", err.Error())
	assert.True(t, IsValidation(err))
	assert.Equal(t, EmptyPrefix, ReasonOf(err))
	assert.Equal(t, ValidationFailed, err.Kind())

	wrapped := Wrap(err, "preview")
	assert.True(t, IsValidation(wrapped))
	assert.Equal(t, EmptyPrefix, ReasonOf(wrapped))

	assert.Equal(t, Reason(""), ReasonOf(New("plain")))
	assert.False(t, IsValidation(nil))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, FileNotFound, KindOf(NewFileError("gone", "x", FileNotFound, nil)))
	assert.Equal(t, InvalidConfig, KindOf(Wrap(NewConfigError("bad", "settings.log_level", InvalidConfig, nil), "load")))
	assert.Equal(t, NoFiles, ReasonOf(NewValidationError(NoFiles, "no files")))
	assert.Equal(t, InvalidState, KindOf(NewKind(InvalidState, "stale")))
	assert.Equal(t, Unknown, KindOf(fmt.Errorf("plain")))
}
