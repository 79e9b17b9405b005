package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/agentstation/sherlock/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "namespace",
			ID:       "common",
		}
		assert.Equal(t, "namespace common not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("locale", "fr")
		wrapped := errors.Join(errors.New("failed"), base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	err := pkgerrors.NewAlreadyExistsError("key", "common.title")
	assert.Equal(t, "key common.title already exists", err.Error())
	assert.True(t, pkgerrors.IsAlreadyExists(fmt.Errorf("add: %w", err)))
	assert.False(t, pkgerrors.IsNotFound(err))
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "path",
			Message: "must contain {locale}",
		}
		assert.Equal(t, "validation failed for field path: must contain {locale}", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Message: "invalid configuration",
		}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestConfigError(t *testing.T) {
	inner := errors.New("no such file")
	err := pkgerrors.NewConfigError("project", "cannot read .i18n-sherlockrc", inner)
	assert.Equal(t, "configuration error in project: cannot read .i18n-sherlockrc", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := &pkgerrors.ConfigError{Message: "missing"}
	assert.Equal(t, "configuration error: missing", bare.Error())
}

func TestParseError(t *testing.T) {
	inner := errors.New("unexpected end of JSON input")
	err := pkgerrors.NewParseError("json", "locales/fr/common.json", inner.Error(), inner)
	assert.Equal(t, "parse error in json file locales/fr/common.json: unexpected end of JSON input", err.Error())
	assert.True(t, pkgerrors.IsMalformed(err))
	assert.ErrorIs(t, err, inner)

	noFile := pkgerrors.NewParseError("xliff", "", "no units", nil)
	assert.Equal(t, "xliff parse error: no units", noFile.Error())
}

func TestIOError(t *testing.T) {
	inner := errors.New("permission denied")
	err := pkgerrors.NewIOError("write", "/tmp/fr.json", inner)
	assert.Equal(t, "IO error during write of /tmp/fr.json: permission denied", err.Error())
	assert.ErrorIs(t, err, inner)

	noPath := pkgerrors.NewIOError("walk", "", nil)
	assert.Equal(t, "IO error during walk: ", noPath.Error())
}

func TestFileError(t *testing.T) {
	parse := pkgerrors.WrapParse("json", "fr/common.json", errors.New("bad"))
	err := pkgerrors.NewFileError("fr", "common", "fr/common.json", parse)
	assert.Equal(t, "fr/common (fr/common.json): parse error in json file fr/common.json: bad", err.Error())
	assert.True(t, pkgerrors.IsMalformed(err))

	var fe *pkgerrors.FileError
	require.True(t, errors.As(pkgerrors.Join(errors.New("other"), err), &fe))
	assert.Equal(t, "common", fe.Namespace)
}

func TestIsCanceled(t *testing.T) {
	assert.True(t, pkgerrors.IsCanceled(fmt.Errorf("sync: %w", pkgerrors.ErrCanceled)))
	assert.False(t, pkgerrors.IsCanceled(errors.New("other")))
}

func TestWrapHelpers(t *testing.T) {
	assert.NoError(t, pkgerrors.WrapValidation("field", nil))
	assert.NoError(t, pkgerrors.WrapIO("read", "path", nil))
	assert.NoError(t, pkgerrors.WrapParse("json", "file", nil))

	v := pkgerrors.WrapValidation("locales", errors.New("unknown tag"))
	assert.True(t, pkgerrors.IsValidationError(v))

	io := pkgerrors.WrapIO("read", "x.json", errors.New("boom"))
	var ioErr *pkgerrors.IOError
	require.True(t, errors.As(io, &ioErr))
	assert.Equal(t, "read", ioErr.Operation)
}

func TestResourceError(t *testing.T) {
	cause := errors.New("permission denied")
	err := pkgerrors.NewResourceError("write", "report", "fr", cause)
	assert.Equal(t, "failed to write report fr: permission denied", err.Error())
	assert.ErrorIs(t, err, cause)

	noID := pkgerrors.NewResourceError("load", "locale", "", cause)
	assert.Equal(t, "failed to load locale: permission denied", noID.Error())

	assert.NoError(t, pkgerrors.WrapResource("load", "locale", "fr", nil))
	require.Error(t, pkgerrors.WrapResource("load", "locale", "fr", cause))
}
