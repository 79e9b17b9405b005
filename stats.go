package sherlock

import (
	"context"
	"math"

	"github.com/agentstation/sherlock/pkg/differ"
)

// LocaleStats is the coverage of one target locale.
type LocaleStats struct {
	Locale           string  `json:"locale" yaml:"locale"`
	IdenticalAllowed bool    `json:"identical_allowed" yaml:"identical_allowed"`
	Total            int     `json:"total" yaml:"total"`
	Present          int     `json:"present" yaml:"present"`
	Translated       int     `json:"translated" yaml:"translated"`
	KeyCoverage      float64 `json:"key_coverage" yaml:"key_coverage"`
	Coverage         float64 `json:"translation_coverage" yaml:"translation_coverage"`
}

// Overall summarizes translation coverage across locales.
type Overall struct {
	Required int     `json:"required" yaml:"required"`
	Covered  int     `json:"covered" yaml:"covered"`
	Coverage float64 `json:"coverage" yaml:"coverage"`
}

// StatsResult reports coverage for every configured target locale.
type StatsResult struct {
	BaseLocale string        `json:"base_locale" yaml:"base_locale"`
	Keys       int           `json:"keys" yaml:"keys"`
	Files      int           `json:"files" yaml:"files"`
	Locales    []LocaleStats `json:"locales" yaml:"locales"`
	Overall    Overall       `json:"overall" yaml:"overall"`
	Failures   Failures      `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Comparisons returns the number of key comparisons the report performed.
func (r *StatsResult) Comparisons() int {
	return r.Keys * len(r.Locales)
}

// Stats computes key coverage (keys present) and translation coverage (keys
// present and different from the base, or present at all for locales that
// may equal the base). Files that fail to parse count as absent.
func (c *client) Stats(ctx context.Context) (*StatsResult, error) {
	ctx = c.withLogger(ctx)
	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}
	targets, err := c.project.Targets(c.project.Locales)
	if err != nil {
		return nil, err
	}
	loaded, targetFailures, err := c.loadTargets(ctx, base, targets)
	if err != nil {
		return nil, err
	}

	res := &StatsResult{
		BaseLocale: c.project.BaseLocale,
		Keys:       base.Root().CountLeaves(),
		Files:      len(base.Present()),
		Failures:   append(failures, targetFailures...),
	}
	var overall differ.Summary
	for _, locale := range targets {
		target := loaded[locale]
		res.Files += len(target.Present())

		identical := c.project.IdenticalAllowed(locale)
		d := differ.New(differ.WithIdenticalAllowed(identical))
		var sum differ.Summary
		for _, ns := range base.Present() {
			sum = sum.Add(differ.Summarize(base.Tree(ns), d.Diff(base.Tree(ns), target.Tree(ns))))
		}
		overall = overall.Add(sum)

		res.Locales = append(res.Locales, LocaleStats{
			Locale:           locale,
			IdenticalAllowed: identical,
			Total:            sum.Total,
			Present:          sum.Present(),
			Translated:       sum.Translated(),
			KeyCoverage:      round(sum.KeyCoverage()),
			Coverage:         round(sum.TranslationCoverage()),
		})
	}
	res.Overall = Overall{
		Required: overall.Total,
		Covered:  overall.Translated(),
		Coverage: round(overall.TranslationCoverage()),
	}
	return res, nil
}

// round keeps one decimal.
func round(f float64) float64 {
	return math.Round(f*10) / 10
}
