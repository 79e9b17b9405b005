// Package preview renders pending locale file changes before they are
// written.
package preview

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/agentstation/sherlock"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Printer writes file changes as line diffs of the persisted JSON.
type Printer struct {
	w       io.Writer
	added   *color.Color
	removed *color.Color
	header  *color.Color
}

// New returns a Printer writing to w.
func New(w io.Writer, useColor bool) *Printer {
	p := &Printer{
		w:       w,
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		header:  color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.added, p.removed, p.header} {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes the diff of every file of res.
func (p *Printer) Print(res *sherlock.ChangeResult) error {
	for _, lc := range res.Locales {
		for _, fc := range lc.Files {
			if err := p.PrintFile(fc); err != nil {
				return err
			}
		}
	}
	return nil
}

// PrintFile writes the changed lines of one file. Unchanged lines are
// omitted.
func (p *Printer) PrintFile(fc *sherlock.FileChange) error {
	var b strings.Builder
	b.WriteString(p.header.Sprintf("--- %s\n", fc.Path))
	for _, d := range LineDiff(before(fc), tree.Encode(fc.After)) {
		var c *color.Color
		var prefix string
		switch d.Type {
		case diffpatch.DiffInsert:
			c, prefix = p.added, "+ "
		case diffpatch.DiffDelete:
			c, prefix = p.removed, "- "
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			b.WriteString(c.Sprint(prefix + strings.TrimSuffix(line, "\n")))
			b.WriteByte('\n')
		}
	}
	_, err := fmt.Fprint(p.w, b.String())
	return err
}

// LineDiff diffs two documents line by line.
func LineDiff(from, to []byte) []diffpatch.Diff {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(from), string(to))
	return dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
}

// MergePatch returns the RFC 7386 merge patch turning the file's current
// content into its new content.
func MergePatch(fc *sherlock.FileChange) ([]byte, error) {
	patch, err := jsonpatch.CreateMergePatch(before(fc), tree.Encode(fc.After))
	if err != nil {
		return nil, errors.WrapResource("diff", "file", fc.Path, err)
	}
	return patch, nil
}

func before(fc *sherlock.FileChange) []byte {
	if fc.Before == nil {
		return []byte("{}\n")
	}
	return tree.Encode(fc.Before)
}

// Patch is the merge patch of one file.
type Patch struct {
	Locale    string         `json:"locale" yaml:"locale"`
	Namespace string         `json:"namespace" yaml:"namespace"`
	Path      string         `json:"path" yaml:"path"`
	Patch     map[string]any `json:"patch" yaml:"patch"`
}

// Patches returns the merge patch of every file of res that has changes.
func Patches(res *sherlock.ChangeResult) ([]Patch, error) {
	var out []Patch
	for _, lc := range res.Locales {
		for _, fc := range lc.Files {
			if fc.Changes() == 0 {
				continue
			}
			data, err := MergePatch(fc)
			if err != nil {
				return nil, err
			}
			p := Patch{Locale: fc.Locale, Namespace: fc.Namespace, Path: fc.Path}
			if err := json.Unmarshal(data, &p.Patch); err != nil {
				return nil, errors.WrapParse("json", fc.Path, err)
			}
			out = append(out, p)
		}
	}
	return out, nil
}
