package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/sherlock/internal/cmd/table"
	"github.com/agentstation/sherlock/pkg/errors"
)

type row struct {
	Locale   string  `json:"locale"`
	Coverage float64 `json:"translation_coverage"`
	Hidden   string  `json:"-"`
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
		ok   bool
	}{
		{"json", FormatJSON, true},
		{"YAML", FormatYAML, true},
		{"", "", true},
		{"wide", FormatWide, true},
		{"xml", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if !tt.ok {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatJSON).Format(&buf, row{Locale: "fr", Coverage: 50}))
	assert.JSONEq(t, `{"locale": "fr", "translation_coverage": 50}`, buf.String())
}

func TestYAMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatYAML).Format(&buf, map[string]int{"missing": 2}))
	assert.Equal(t, "missing: 2\n", buf.String())
}

func TestTableFormatterStructSlice(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewFormatter(FormatTable).Format(&buf, []row{{Locale: "fr", Coverage: 50, Hidden: "secret"}}))

	out := buf.String()
	assert.Contains(t, out, "fr")
	assert.Contains(t, out, "50")
	assert.NotContains(t, out, "secret")
}

func TestPrintUsesRowsForTables(t *testing.T) {
	rows := func(wide bool) table.Data {
		cols := []string{"Locale"}
		if wide {
			cols = append(cols, "Extra")
		}
		return table.Data{Headers: cols, Rows: [][]string{{"es"}}}
	}

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, FormatTable, row{Locale: "ignored"}, rows))
	assert.Contains(t, buf.String(), "es")
	assert.NotContains(t, buf.String(), "ignored")

	buf.Reset()
	require.NoError(t, Print(&buf, FormatJSON, row{Locale: "fr"}, rows))
	assert.Contains(t, buf.String(), `"locale": "fr"`)
}
