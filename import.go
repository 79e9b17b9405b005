package sherlock

import (
	"context"
	"fmt"
	"os"

	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/exchange"
	"github.com/agentstation/sherlock/pkg/logging"
)

// ImportResult reports the translations taken from an exchange document.
type ImportResult struct {
	ChangeResult
	File         string               `json:"file" yaml:"file"`
	Translations []exchange.Change    `json:"translations" yaml:"translations"`
	Diagnostics  exchange.Diagnostics `json:"diagnostics" yaml:"diagnostics"`
}

// Import reads a translated exchange document and writes its translations
// into the files of locale, one value at a time. A document that cannot be
// read or holds no units aborts the import before anything is written.
func (c *client) Import(ctx context.Context, locale, file string, opts ...RunOption) (*ImportResult, error) {
	ctx = logging.WithLocale(c.withLogger(ctx), locale)
	ro := NewRunOptions(opts...)
	if locale == c.project.BaseLocale {
		return nil, errors.NewValidationError("locale", locale, "is the base locale")
	}
	if _, err := c.project.Targets([]string{locale}); err != nil {
		return nil, err
	}

	doc, err := readDocument(file)
	if err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)
	for _, f := range doc.Files {
		if f.TargetLanguage != "" && f.TargetLanguage != locale {
			log.Warn().Str("document", f.TargetLanguage).Msg("Document targets a different locale")
		}
	}

	base, failures, err := c.loadBase(ctx)
	if err != nil {
		return nil, err
	}
	cs, diag := exchange.FromDocument(doc, base.Root())
	if len(diag.Malformed) > 0 {
		log.Warn().Strs("ids", diag.Malformed).Msg("Skipped units without a namespace")
	}
	if len(diag.UnknownNamespaces) > 0 {
		log.Warn().Strs("namespaces", diag.UnknownNamespaces).Msg("Skipped units of unknown namespaces")
	}

	res := &ImportResult{
		ChangeResult: ChangeResult{DryRun: ro.DryRun, Failures: failures},
		File:         file,
		Translations: cs.Changes(),
		Diagnostics:  diag,
	}
	if cs.Len() == 0 {
		return res, nil
	}

	target, err := c.store.Load(ctx, locale, cs.Namespaces())
	if err != nil {
		return nil, errors.WrapResource("load", "locale", locale, err)
	}
	res.Failures = append(res.Failures, failuresOf(target)...)

	lc := LocaleChanges{Locale: locale}
	for _, ns := range cs.Namespaces() {
		if target.Failed(ns) != nil {
			continue
		}
		before := target.Tree(ns)
		changes, conflicts := exchange.Placeable(cs.For(ns), before)
		for _, ch := range conflicts {
			log.Warn().Str("id", ch.ID()).Msg("Skipped unit that would replace existing structure")
			res.Diagnostics.Conflicts = append(res.Diagnostics.Conflicts, ch.ID())
		}
		fc := &FileChange{
			Locale:    locale,
			Namespace: ns,
			Path:      c.store.Pattern().Path(locale, ns),
			Before:    before,
			After:     exchange.ApplyChanges(before, changes),
		}
		for _, ch := range changes {
			switch existing := before.Get(ch.Path); {
			case existing == nil:
				fc.Added++
			case existing.IsLeaf() && existing.Value() == ch.Value:
			default:
				fc.Updated++
			}
		}
		if fc.Changes() > 0 {
			lc.Files = append(lc.Files, fc)
		}
	}

	question := fmt.Sprintf("Apply %d translation(s) to %d file(s) of %s?", lc.Changes(), len(lc.Files), locale)
	if err := c.apply(ctx, ro, &res.ChangeResult, &lc, question); err != nil {
		return nil, err
	}
	res.Locales = append(res.Locales, lc)
	return res, nil
}

func readDocument(file string) (*exchange.Document, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, errors.WrapIO("read", file, err)
	}
	defer f.Close()

	doc, err := exchange.Decode(f)
	if err != nil {
		return nil, errors.WrapResource("import", "document", file, err)
	}
	return doc, nil
}
