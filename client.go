// Package sherlock keeps the locale files of a project in line with its base
// locale. It audits target locales for missing and untranslated keys,
// exports the work left to translators, merges missing structure, imports
// translated exchange documents and removes orphaned keys.
//
// Every operation reads the locale files through a per-client store, so a
// file is parsed at most once per client. Writes happen only after every
// read and classification is done and, for destructive operations, after
// the configured Confirmer approves.
//
// Example usage:
//
//	project, err := config.Discover(".", "")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sh, err := sherlock.New(project, sherlock.WithConfirmer(sherlock.AlwaysConfirm))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Report what French still needs
//	audit, err := sh.Audit(ctx, "fr", sherlock.IncludeOrphans(true))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(audit.Diff)
//
//	// Add the missing structure to every target locale
//	result, err := sh.Sync(ctx, []string{"all"}, sherlock.AutoApprove(true))
package sherlock

import (
	"context"

	"github.com/agentstation/sherlock/internal/config"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/locales"
	"github.com/agentstation/sherlock/pkg/logging"
)

// Compile-time interface check to ensure proper implementation.
var _ Client = (*client)(nil)

// Auditor reports what a target locale lacks.
type Auditor interface {
	Audit(ctx context.Context, locale string, opts ...RunOption) (*AuditResult, error)
	Stats(ctx context.Context) (*StatsResult, error)
	Find(ctx context.Context, text string) (*FindResult, error)
}

// Exporter writes the translation work of target locales to files.
type Exporter interface {
	ExportMissing(ctx context.Context, locales []string, opts ...RunOption) (*ExportResult, error)
}

// Updater changes target locale files.
type Updater interface {
	Sync(ctx context.Context, locales []string, opts ...RunOption) (*SyncResult, error)
	Import(ctx context.Context, locale, file string, opts ...RunOption) (*ImportResult, error)
	Add(ctx context.Context, namespace, key, text string, opts ...RunOption) (*AddResult, error)
	Clean(ctx context.Context, locales []string, opts ...RunOption) (*CleanResult, error)
}

// Client reconciles the locale files of one project.
type Client interface {
	// Project returns the configuration the client was built with
	Project() *config.Project

	// Auditor provides read-only reports
	Auditor

	// Exporter provides translation exports
	Exporter

	// Updater provides operations that write locale files
	Updater

	// Hooks provides access to event callback registration
	Hooks
}

// client is the internal implementation of the Client interface.
type client struct {
	options *options
	project *config.Project
	store   *locales.Store
	*hooks
}

// New creates a Client for project.
func New(project *config.Project, opts ...Option) (Client, error) {
	if project == nil {
		return nil, errors.NewValidationError("project", nil, "is required")
	}
	if err := project.Validate(); err != nil {
		return nil, err
	}

	o := defaults().apply(opts...)
	c := &client{
		options: o,
		project: project,
		store: locales.NewStore(project.Pattern(),
			locales.WithLogger(o.logger),
			locales.WithConcurrency(o.concurrency),
		),
		hooks: newHooks(),
	}

	o.logger.Debug().
		Str("base", project.BaseLocale).
		Strs("locales", project.Locales).
		Str("pattern", project.Path).
		Msg("Client created")
	return c, nil
}

// Project returns the configuration the client was built with.
func (c *client) Project() *config.Project {
	return c.project
}

// loadBase loads every namespace of the base locale. Namespaces that fail
// to parse are reported and left out of the returned locale.
func (c *client) loadBase(ctx context.Context) (*locales.Locale, Failures, error) {
	base, err := c.store.Load(ctx, c.project.BaseLocale, nil)
	if err != nil {
		return nil, nil, errors.WrapResource("load", "locale", c.project.BaseLocale, err)
	}
	if len(base.Present()) == 0 && base.Failures() == nil {
		return nil, nil, errors.NewNotFoundError("base locale files for", c.project.BaseLocale)
	}
	return base, failuresOf(base), nil
}

// loadTargets loads the base namespaces of each target locale concurrently.
func (c *client) loadTargets(ctx context.Context, base *locales.Locale, targets []string) (map[string]*locales.Locale, Failures, error) {
	loaded, err := c.store.LoadAll(ctx, targets, base.Present())
	if err != nil {
		return nil, nil, errors.WrapResource("load", "locales", "", err)
	}
	var failures Failures
	for _, locale := range targets {
		failures = append(failures, failuresOf(loaded[locale])...)
	}
	return loaded, failures, nil
}

// withLogger attaches the client logger unless the caller supplied one.
func (c *client) withLogger(ctx context.Context) context.Context {
	if _, ok := logging.Lookup(ctx); ok {
		return ctx
	}
	return logging.WithLogger(ctx, c.options.logger)
}

// targets expands locale arguments against the project configuration.
func (c *client) targets(args []string) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.NewValidationError("locales", args, "at least one locale is required")
	}
	return c.project.Targets(args)
}

// confirm asks the configured Confirmer unless the run is auto-approved.
func (c *client) confirm(ctx context.Context, ro *RunOptions, question string) (bool, error) {
	if ro.AutoApprove {
		return true, nil
	}
	ok, err := c.options.confirmer.Confirm(ctx, question)
	if err != nil {
		return false, err
	}
	if !ok {
		logging.FromContext(ctx).Info().Str("question", question).Msg("Declined by operator")
	}
	return ok, nil
}

// write persists changes one file at a time. A failed file is reported and
// the remaining files are still written; only cancellation stops the loop.
func (c *client) write(ctx context.Context, changes []*FileChange) (Failures, error) {
	var failures Failures
	for _, ch := range changes {
		if err := ctx.Err(); err != nil {
			return failures, err
		}
		if ch.Changes() == 0 {
			continue
		}
		if err := c.store.Write(ctx, ch.Locale, ch.Namespace, ch.After); err != nil {
			failures = append(failures, failureOf(ch.Locale, ch.Namespace, ch.Path, err))
			continue
		}
		ch.Written = true
		c.triggerWrite(*ch)
	}
	return failures, nil
}
