package sherlock

import (
	"context"
	"fmt"

	"github.com/agentstation/sherlock/pkg/logging"
	"github.com/agentstation/sherlock/pkg/reconciler"
)

// SyncResult reports the structure merged into each target locale.
type SyncResult struct {
	ChangeResult
}

// Sync adds the keys the base locale has and the targets lack, keeping every
// value the targets already hold. Each locale is confirmed separately and
// written only after the confirmation. Files that fail to parse are skipped.
func (c *client) Sync(ctx context.Context, args []string, opts ...RunOption) (*SyncResult, error) {
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

	res := &SyncResult{ChangeResult{DryRun: ro.DryRun, Failures: append(failures, targetFailures...)}}
	for _, locale := range targets {
		target := loaded[locale]
		lc := LocaleChanges{Locale: locale}
		for _, ns := range base.Present() {
			if target.Failed(ns) != nil {
				continue
			}
			before := target.Tree(ns)
			merged := reconciler.Sync(base.Tree(ns), before)
			if !merged.HasChanges() && len(merged.Collisions) == 0 {
				continue
			}
			lc.Files = append(lc.Files, &FileChange{
				Locale:     locale,
				Namespace:  ns,
				Path:       c.store.Pattern().Path(locale, ns),
				Before:     before,
				After:      merged.Tree,
				Added:      merged.Added,
				Collisions: merged.Collisions,
			})
		}

		log := logging.FromContext(logging.WithLocale(ctx, locale))
		log.Debug().Int("files", len(lc.Files)).Int("added", lc.Changes()).Msg("Missing structure computed")

		question := fmt.Sprintf("Add %d key(s) to %d file(s) of %s?", lc.Changes(), len(lc.Files), locale)
		if err := c.apply(ctx, ro, &res.ChangeResult, &lc, question); err != nil {
			return nil, err
		}
		res.Locales = append(res.Locales, lc)
	}
	return res, nil
}
