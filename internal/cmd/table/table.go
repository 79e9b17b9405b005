// Package table converts command results into rows for table output.
package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/internal/cmd/emoji"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// Empty reports whether the table has no rows.
func (d Data) Empty() bool {
	return len(d.Rows) == 0
}

// StatsToTableData converts coverage statistics to table format.
func StatsToTableData(res *sherlock.StatsResult, wide bool) Data {
	headers := []string{"Locale", "Keys", "Translated", "Key Coverage", "Coverage"}
	align := []Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight}
	if wide {
		headers = append(headers, "Identical Allowed")
		align = append(align, AlignCenter)
	}

	rows := make([][]string, 0, len(res.Locales)+1)
	for _, l := range res.Locales {
		row := []string{
			l.Locale,
			fmt.Sprintf("%d/%d", l.Present, l.Total),
			strconv.Itoa(l.Translated),
			Percent(l.KeyCoverage),
			Percent(l.Coverage),
		}
		if wide {
			row = append(row, Check(l.IdenticalAllowed))
		}
		rows = append(rows, row)
	}
	total := []string{"overall", "-", fmt.Sprintf("%d/%d", res.Overall.Covered, res.Overall.Required), "-", Percent(res.Overall.Coverage)}
	if wide {
		total = append(total, "")
	}
	rows = append(rows, total)

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// AuditToTableData lists the missing keys of an audit, then its orphans.
func AuditToTableData(res *sherlock.AuditResult) Data {
	rows := make([][]string, 0, len(res.Items)+len(res.Orphans))
	for _, it := range res.Items {
		rows = append(rows, []string{emoji.Missing, it.Namespace, it.Path.String(), Truncate(it.Value, 60)})
	}
	for _, o := range res.Orphans {
		rows = append(rows, []string{emoji.Removed, o.Namespace, o.Path.String(), Truncate(o.Value, 60)})
	}
	return Data{
		Headers: []string{"", "Namespace", "Key", "Base Value"},
		Rows:    rows,
	}
}

// ChangesToTableData lists the files an operation touched or would touch.
func ChangesToTableData(res *sherlock.ChangeResult) Data {
	var rows [][]string
	for _, l := range res.Locales {
		for _, f := range l.Files {
			rows = append(rows, []string{
				l.Locale,
				f.Namespace,
				Count(f.Added),
				Count(f.Updated),
				Count(f.Removed),
				Count(len(f.Collisions)),
				fileState(res.DryRun, l.Canceled, f),
			})
		}
	}
	return Data{
		Headers:         []string{"Locale", "Namespace", "Added", "Updated", "Removed", "Collisions", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft},
	}
}

func fileState(dryRun, canceled bool, f *sherlock.FileChange) string {
	switch {
	case f.Written:
		return emoji.Success + " written"
	case dryRun:
		return "dry run"
	case canceled:
		return "canceled"
	case f.Changes() == 0:
		return "unchanged"
	default:
		return emoji.Error + " not written"
	}
}

// ExportToTableData lists the export file of each locale.
func ExportToTableData(res *sherlock.ExportResult) Data {
	rows := make([][]string, 0, len(res.Files))
	for _, f := range res.Files {
		status := emoji.Success + " written"
		switch {
		case f.Skipped != "":
			status = "skipped: " + string(f.Skipped)
		case !f.Written:
			status = "dry run"
		}
		path := f.Path
		if path == "" {
			path = "-"
		}
		rows = append(rows, []string{f.Locale, f.Format, Count(f.Missing), Count(f.Untranslated), path, status})
	}
	return Data{
		Headers:         []string{"Locale", "Format", "Missing", "Untranslated", "File", "Status"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignLeft, AlignLeft},
	}
}

// FindToTableData lists the value each locale holds for a found text.
func FindToTableData(res *sherlock.FindResult) Data {
	if res.Match != nil {
		rows := [][]string{{"(base)", res.Match.String(), res.Value}}
		for _, tr := range res.Translations {
			value := tr.Value
			if tr.Missing {
				value = emoji.Missing + " missing"
			}
			rows = append(rows, []string{tr.Locale, res.Match.String(), value})
		}
		return Data{Headers: []string{"Locale", "Key", "Value"}, Rows: rows}
	}

	rows := make([][]string, 0, len(res.Orphans))
	for _, o := range res.Orphans {
		rows = append(rows, []string{o.Locale, o.Namespace + "." + o.Path.String(), o.Value})
	}
	return Data{Headers: []string{"Locale", "Orphaned Key", "Value"}, Rows: rows}
}

// FailuresToTableData lists files that could not be read or written.
func FailuresToTableData(failures sherlock.Failures) Data {
	rows := make([][]string, 0, len(failures))
	for _, f := range failures {
		rows = append(rows, []string{f.Locale, f.Namespace, f.Path, f.Message})
	}
	return Data{Headers: []string{"Locale", "Namespace", "File", "Error"}, Rows: rows}
}

// Percent formats a percentage with one decimal.
func Percent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64) + "%"
}

// Count formats a counter, showing zero as a dash.
func Count(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}

// Check formats a boolean as a check mark.
func Check(b bool) string {
	if b {
		return emoji.Success
	}
	return ""
}

// Truncate shortens s to at most n runes, marking the cut with an ellipsis.
// Newlines are flattened so a value stays on one row.
func Truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
