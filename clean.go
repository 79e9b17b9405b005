package sherlock

import (
	"context"
	"fmt"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/reconciler"
)

// CleanResult reports the orphaned values removed from each locale.
type CleanResult struct {
	ChangeResult
	Orphans []differ.Orphan `json:"orphans" yaml:"orphans"`
}

// Clean removes values the base locale does not have from the files of the
// target locales. Nodes left empty are removed too. Each locale is confirmed
// separately before its files are written.
func (c *client) Clean(ctx context.Context, args []string, opts ...RunOption) (*CleanResult, error) {
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

	res := &CleanResult{ChangeResult: ChangeResult{DryRun: ro.DryRun, Failures: append(failures, targetFailures...)}}
	for _, locale := range targets {
		target := loaded[locale]
		lc := LocaleChanges{Locale: locale}
		for _, ns := range target.Present() {
			found := differ.FindOrphans(locale, ns, base.Tree(ns), target.Tree(ns))
			if len(found) == 0 {
				continue
			}
			res.Orphans = append(res.Orphans, found...)
			after, removed := reconciler.Clean(target.Tree(ns), found)
			lc.Files = append(lc.Files, &FileChange{
				Locale:    locale,
				Namespace: ns,
				Path:      c.store.Pattern().Path(locale, ns),
				Before:    target.Tree(ns),
				After:     after,
				Removed:   removed,
			})
		}

		question := fmt.Sprintf("Remove %d orphaned key(s) from %d file(s) of %s?", lc.Changes(), len(lc.Files), locale)
		if err := c.apply(ctx, ro, &res.ChangeResult, &lc, question); err != nil {
			return nil, err
		}
		res.Locales = append(res.Locales, lc)
	}
	return res, nil
}
