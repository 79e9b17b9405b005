package sherlock

import (
	"context"
	"fmt"

	"github.com/agentstation/sherlock/pkg/differ"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/locales"
	"github.com/agentstation/sherlock/pkg/reconciler"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Item is one diff entry of a locale.
type Item struct {
	Namespace string    `json:"namespace" yaml:"namespace"`
	Path      tree.Path `json:"path" yaml:"path"`
	differ.Entry
}

// Key returns the namespace-qualified dot path of the item.
func (i Item) Key() string {
	return append(tree.Path{i.Namespace}, i.Path...).String()
}

// Failure is a file that could not be read or written.
type Failure struct {
	Locale    string `json:"locale" yaml:"locale"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Path      string `json:"path" yaml:"path"`
	Err       error  `json:"-" yaml:"-"`
	Message   string `json:"error" yaml:"error"`
}

// Error implements the error interface.
func (f Failure) Error() string {
	return fmt.Sprintf("%s/%s (%s): %s", f.Locale, f.Namespace, f.Path, f.Message)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error {
	return f.Err
}

func failureOf(locale, namespace, path string, err error) Failure {
	var fe *errors.FileError
	if errors.As(err, &fe) {
		locale, namespace, path, err = fe.Locale, fe.Namespace, fe.Path, fe.Err
	}
	return Failure{Locale: locale, Namespace: namespace, Path: path, Err: err, Message: err.Error()}
}

func failuresOf(l *locales.Locale) Failures {
	var out Failures
	for _, ns := range l.Namespaces {
		if err := l.Failed(ns); err != nil {
			out = append(out, failureOf(l.Name, ns, "", err))
		}
	}
	return out
}

// Failures lists files skipped by an operation.
type Failures []Failure

// Err joins the failures into one error, or returns nil.
func (f Failures) Err() error {
	errs := make([]error, len(f))
	for i := range f {
		errs[i] = f[i]
	}
	return errors.Join(errs...)
}

// FileChange is the planned or applied rewrite of one locale file.
type FileChange struct {
	Locale    string `json:"locale" yaml:"locale"`
	Namespace string `json:"namespace" yaml:"namespace"`
	Path      string `json:"path" yaml:"path"`

	// Before is nil when the file does not exist yet.
	Before *tree.Tree `json:"-" yaml:"-"`
	After  *tree.Tree `json:"-" yaml:"-"`

	Added      int                    `json:"added,omitempty" yaml:"added,omitempty"`
	Updated    int                    `json:"updated,omitempty" yaml:"updated,omitempty"`
	Removed    int                    `json:"removed,omitempty" yaml:"removed,omitempty"`
	Collisions []reconciler.Collision `json:"collisions,omitempty" yaml:"collisions,omitempty"`
	Written    bool                   `json:"written" yaml:"written"`
}

// Changes returns the number of values the change touches.
func (c FileChange) Changes() int {
	return c.Added + c.Updated + c.Removed
}

// LocaleChanges groups the file changes of one locale.
type LocaleChanges struct {
	Locale   string        `json:"locale" yaml:"locale"`
	Files    []*FileChange `json:"files,omitempty" yaml:"files,omitempty"`
	Canceled bool          `json:"canceled,omitempty" yaml:"canceled,omitempty"`
}

// Changes returns the number of values touched across the files.
func (l LocaleChanges) Changes() int {
	n := 0
	for _, f := range l.Files {
		n += f.Changes()
	}
	return n
}

// Written reports whether any file of the locale was written.
func (l LocaleChanges) Written() bool {
	for _, f := range l.Files {
		if f.Written {
			return true
		}
	}
	return false
}

// ChangeResult is shared by the operations that rewrite locale files.
type ChangeResult struct {
	DryRun   bool            `json:"dry_run" yaml:"dry_run"`
	Locales  []LocaleChanges `json:"locales" yaml:"locales"`
	Failures Failures        `json:"failures,omitempty" yaml:"failures,omitempty"`
}

// Changes returns the number of values touched across every locale.
func (r *ChangeResult) Changes() int {
	n := 0
	for _, l := range r.Locales {
		n += l.Changes()
	}
	return n
}

// HasChanges reports whether any locale needs or received changes.
func (r *ChangeResult) HasChanges() bool {
	return r.Changes() > 0
}

// Canceled reports whether the operator declined any locale.
func (r *ChangeResult) Canceled() bool {
	for _, l := range r.Locales {
		if l.Canceled {
			return true
		}
	}
	return false
}

// apply confirms and writes the files of one locale. Nothing is written in
// dry-run mode or when the operator declines.
func (c *client) apply(ctx context.Context, ro *RunOptions, res *ChangeResult, lc *LocaleChanges, question string) error {
	if lc.Changes() == 0 {
		return nil
	}
	c.triggerPending(*lc)
	if ro.DryRun {
		return nil
	}
	ok, err := c.confirm(ctx, ro, question)
	if err != nil {
		return err
	}
	if !ok {
		lc.Canceled = true
		return nil
	}
	failures, err := c.write(ctx, lc.Files)
	res.Failures = append(res.Failures, failures...)
	return err
}

// applyAll reports every planned locale before writing any of them. The
// changes are written without confirmation.
func (c *client) applyAll(ctx context.Context, ro *RunOptions, res *ChangeResult, planned []*LocaleChanges) error {
	for _, lc := range planned {
		if lc.Changes() > 0 {
			c.triggerPending(*lc)
		}
	}
	if ro.DryRun {
		return nil
	}
	for _, lc := range planned {
		failures, err := c.write(ctx, lc.Files)
		res.Failures = append(res.Failures, failures...)
		if err != nil {
			return err
		}
	}
	return nil
}
