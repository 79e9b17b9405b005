package notify

import (
	"bytes"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/internal/cmd/hints"
	"github.com/agentstation/sherlock/pkg/errors"
)

func TestErrorType(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{errors.NewNotFoundError("locale", "de"), "not_found"},
		{errors.NewConfigError("config", "no base locale", nil), "config"},
		{errors.NewParseError("json", "fr/common.json", "unexpected end", nil), "parse"},
		{errors.NewValidationError("key", "", "must not be empty"), "validation"},
		{errors.WrapIO("write", "fr/common.json", fs.ErrPermission), "permission_denied"},
		{errors.New("boom"), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ErrorType(tt.err))
	}
}

func TestSuccessWithHints(t *testing.T) {
	var alertsBuf, hintsBuf bytes.Buffer
	cfg := DefaultConfig()
	cfg.OutputFormat = "table"
	cfg.UseColor = false
	cfg.AlertWriter = &alertsBuf
	cfg.HintWriter = &hintsBuf
	n := New(cfg)

	require.NoError(t, n.Success("Added 2 key(s)", hints.Context{Command: "sync"}))
	assert.Equal(t, "✓ Added 2 key(s)\n", alertsBuf.String())
	assert.Contains(t, hintsBuf.String(), "Run: sherlock stats")
}

func TestQuiet(t *testing.T) {
	var buf bytes.Buffer
	cfg := DefaultConfig()
	cfg.OutputFormat = "table"
	cfg.ShowAlerts = false
	cfg.ShowHints = false
	cfg.AlertWriter = &buf
	cfg.HintWriter = &buf
	n := New(cfg)

	require.NoError(t, n.Error(errors.NewNotFoundError("locale", "de"), hints.Context{Command: "audit"}))
	assert.Empty(t, buf.String())
}
