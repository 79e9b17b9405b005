package sherlock

import (
	"context"
	"os"
	"path/filepath"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/exchange"
	"github.com/agentstation/sherlock/pkg/logging"
)

// SkipReason explains why no export file was produced for a locale.
type SkipReason string

const (
	// SkipComplete means nothing is missing or untranslated.
	SkipComplete SkipReason = "fully-translated"
	// SkipIdenticalAllowed means the locale may equal the base and gets no
	// exchange document.
	SkipIdenticalAllowed SkipReason = "identical-allowed"
	// SkipExists means the file exists and overwriting was not forced.
	SkipExists SkipReason = "exists"
)

// ExportFile describes the export of one locale.
type ExportFile struct {
	Locale       string     `json:"locale" yaml:"locale"`
	Path         string     `json:"path,omitempty" yaml:"path,omitempty"`
	Format       string     `json:"format" yaml:"format"`
	Missing      int        `json:"missing" yaml:"missing"`
	Untranslated int        `json:"untranslated" yaml:"untranslated"`
	Skipped      SkipReason `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Written      bool       `json:"written" yaml:"written"`

	// Diff is the exported translation work.
	Diff *differ.Node `json:"-" yaml:"-"`
}

// ExportResult lists the export of each requested locale.
type ExportResult struct {
	DryRun   bool         `json:"dry_run" yaml:"dry_run"`
	Files    []ExportFile `json:"files" yaml:"files"`
	Failures Failures     `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Written returns the number of files written.
func (r *ExportResult) Written() int {
	n := 0
	for _, f := range r.Files {
		if f.Written {
			n++
		}
	}
	return n
}

// ExportMissing writes, for every target locale, the keys that are missing
// or untranslated: a flat annotated report by default, an exchange document
// with AsXLIFF. Locales that need nothing get no file.
func (c *client) ExportMissing(ctx context.Context, args []string, opts ...RunOption) (*ExportResult, error) {
	ctx = c.withLogger(ctx)
	ro := NewRunOptions(opts...)
	targets, err := c.targets(args)
	if err != nil {
		return nil, err
	}

	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}
	loaded, targetFailures, err := c.loadTargets(ctx, base, targets)
	if err != nil {
		return nil, err
	}

	res := &ExportResult{DryRun: ro.DryRun, Failures: append(failures, targetFailures...)}
	for _, locale := range targets {
		identical := c.project.IdenticalAllowed(locale)
		d := c.diffLocale(differ.New(differ.WithIdenticalAllowed(identical)), base, loaded[locale], locale, ro.Filter)

		f := ExportFile{
			Locale:       locale,
			Format:       "json",
			Missing:      d.Count(differ.StatusMissingKey),
			Untranslated: d.Count(differ.StatusUntranslated),
			Diff:         d,
		}
		name := locale + constants.ReportSuffix
		if ro.XLIFF {
			f.Format = "xliff"
			name = locale + constants.XLIFFExtension
		}

		switch {
		case d == nil:
			f.Skipped = SkipComplete
		case ro.XLIFF && identical:
			f.Skipped = SkipIdenticalAllowed
		case ro.XLIFF && len(exchange.NewDocument(d, c.project.BaseLocale, locale).Units()) == 0:
			// Only raw values remain and those are not translatable.
			f.Skipped = SkipComplete
		default:
			f.Path = filepath.Join(ro.OutputDir, name)
			if _, err := os.Stat(f.Path); err == nil && !ro.Force {
				f.Skipped = SkipExists
			}
		}

		if f.Skipped == "" && !ro.DryRun {
			if err := c.writeExport(ctx, &f, c.project.BaseLocale, ro.XLIFF); err != nil {
				res.Failures = append(res.Failures, Failure{Locale: locale, Path: f.Path, Err: err, Message: err.Error()})
			}
		}
		res.Files = append(res.Files, f)
	}
	return res, nil
}

func (c *client) writeExport(ctx context.Context, f *ExportFile, baseLocale string, xliff bool) error {
	data := exchange.EncodeFlatReport(f.Diff)
	if xliff {
		var err error
		if data, err = exchange.Encode(exchange.NewDocument(f.Diff, baseLocale, f.Locale)); err != nil {
			return errors.WrapResource("export", "document", f.Locale, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(f.Path), constants.DirPermissions); err != nil {
		return errors.WrapIO("create", filepath.Dir(f.Path), err)
	}
	if err := os.WriteFile(f.Path, data, constants.FilePermissions); err != nil {
		return errors.WrapIO("write", f.Path, err)
	}
	f.Written = true
	logging.FromContext(ctx).Info().Str("locale", f.Locale).Str("file", f.Path).Msg("Export written")
	return nil
}
