package locales

import (
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Locale is the set of namespace trees loaded for one locale.
type Locale struct {
	// Name is the locale identifier.
	Name string

	// Namespaces lists the requested namespaces in load order, including
	// absent and failed ones.
	Namespaces []string

	trees    map[string]*tree.Tree
	failures map[string]error
}

func newLocale(name string) *Locale {
	return &Locale{
		Name:     name,
		trees:    make(map[string]*tree.Tree),
		failures: make(map[string]error),
	}
}

func (l *Locale) put(namespace string, t *tree.Tree) {
	l.Namespaces = append(l.Namespaces, namespace)
	if t != nil {
		l.trees[namespace] = t
	}
}

func (l *Locale) fail(namespace string, err error) {
	l.Namespaces = append(l.Namespaces, namespace)
	l.failures[namespace] = err
}

// Tree returns the tree of a namespace, or nil when its file is absent or
// failed to load.
func (l *Locale) Tree(namespace string) *tree.Tree {
	return l.trees[namespace]
}

// Has reports whether the namespace file exists and was parsed.
func (l *Locale) Has(namespace string) bool {
	_, ok := l.trees[namespace]
	return ok
}

// Failed returns the load error of a namespace, if any.
func (l *Locale) Failed(namespace string) error {
	return l.failures[namespace]
}

// Failures returns every load error joined, or nil.
func (l *Locale) Failures() error {
	var errs []error
	for _, ns := range l.Namespaces {
		if err := l.failures[ns]; err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Present returns the namespaces that were loaded, in load order.
func (l *Locale) Present() []string {
	var out []string
	for _, ns := range l.Namespaces {
		if l.Has(ns) {
			out = append(out, ns)
		}
	}
	return out
}

// Root returns a node whose children are the loaded namespace trees.
func (l *Locale) Root() *tree.Tree {
	root := tree.NewNode()
	for _, ns := range l.Present() {
		root.Put(ns, l.trees[ns])
	}
	return root
}
