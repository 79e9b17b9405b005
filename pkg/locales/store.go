package locales

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/karrick/godirwalk"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/agentstation/sherlock/pkg/constants"
	"github.com/agentstation/sherlock/pkg/errors"
	"github.com/agentstation/sherlock/pkg/logging"
	"github.com/agentstation/sherlock/pkg/tree"
)

// Store reads and writes locale trees for one invocation. Reads are cached
// by absolute file path and never invalidated, so every file is parsed at
// most once per Store.
type Store struct {
	pattern     Pattern
	cache       *gocache.Cache
	logger      *zerolog.Logger
	concurrency int
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for read and write diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConcurrency bounds how many locales LoadAll reads at once.
func WithConcurrency(n int) Option {
	return func(s *Store) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// NewStore creates a Store for pattern.
func NewStore(pattern Pattern, opts ...Option) *Store {
	s := &Store{
		pattern:     pattern,
		cache:       gocache.New(gocache.NoExpiration, 0),
		logger:      logging.Default(),
		concurrency: constants.MaxConcurrentLoads,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pattern returns the path pattern of the store.
func (s *Store) Pattern() Pattern {
	return s.pattern
}

// Discover lists the namespaces that have a file for locale, in lexical
// order. A missing directory yields no namespaces.
func (s *Store) Discover(ctx context.Context, locale string) ([]string, error) {
	sc := s.pattern.scope(locale)
	if _, err := os.Stat(sc.dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var names []string
	err := godirwalk.Walk(sc.dir, &godirwalk.Options{
		Unsorted: false,
		Callback: func(path string, de *godirwalk.Dirent) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !de.IsRegular() {
				return nil
			}
			rel, err := filepath.Rel(sc.dir, path)
			if err != nil {
				return nil
			}
			if ns, ok := sc.namespace(filepath.ToSlash(rel)); ok {
				names = append(names, ns)
			}
			return nil
		},
	})
	if err != nil {
		return nil, errors.WrapIO("walk", sc.dir, err)
	}
	slices.Sort(names)
	return names, nil
}

// Read returns the tree of one namespace file. A missing file yields a nil
// tree and no error. A file that does not hold a JSON object is reported as
// a *errors.FileError wrapping a parse error.
func (s *Store) Read(ctx context.Context, locale, namespace string) (*tree.Tree, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path := s.pattern.Path(locale, namespace)
	key, err := filepath.Abs(path)
	if err != nil {
		key = path
	}
	if cached, ok := s.cache.Get(key); ok {
		return cached.(*tree.Tree).Clone(), nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("locale", locale).Str("namespace", namespace).Msg("file missing, treating as absent")
		return nil, nil
	}
	if err != nil {
		return nil, errors.NewFileError(locale, namespace, path, errors.WrapIO("read", path, err))
	}

	t, err := tree.Parse(data)
	if err == nil && !t.IsNode() {
		err = errors.New("top-level value must be an object")
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("file", path).Msg("cannot parse locale file")
		return nil, errors.NewFileError(locale, namespace, path, errors.WrapParse("json", path, err))
	}

	s.cache.Set(key, t, gocache.NoExpiration)
	s.logger.Debug().Str("file", path).Int("values", t.CountLeaves()).Msg("loaded locale file")
	return t.Clone(), nil
}

// Load reads the given namespaces of locale, or every discovered namespace
// when namespaces is nil. Files that cannot be read are recorded as
// failures on the result; only discovery and cancellation abort Load.
func (s *Store) Load(ctx context.Context, locale string, namespaces []string) (*Locale, error) {
	if namespaces == nil {
		var err error
		namespaces, err = s.Discover(ctx, locale)
		if err != nil {
			return nil, err
		}
	}

	l := newLocale(locale)
	for _, ns := range namespaces {
		t, err := s.Read(ctx, locale, ns)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			l.fail(ns, err)
			continue
		}
		l.put(ns, t)
	}
	return l, nil
}

// LoadAll loads several locales concurrently with the same namespace list.
func (s *Store) LoadAll(ctx context.Context, locales []string, namespaces []string) (map[string]*Locale, error) {
	results := make([]*Locale, len(locales))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, locale := range locales {
		g.Go(func() error {
			l, err := s.Load(gctx, locale, namespaces)
			if err != nil {
				return err
			}
			results[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]*Locale, len(locales))
	for i, locale := range locales {
		out[locale] = results[i]
	}
	return out, nil
}

// Write persists t as the namespace file of locale, creating directories
// as needed. Later reads of the same file return the written tree.
func (s *Store) Write(ctx context.Context, locale, namespace string, t *tree.Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := s.pattern.Path(locale, namespace)
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return errors.NewFileError(locale, namespace, path, errors.WrapIO("create", filepath.Dir(path), err))
	}
	if err := os.WriteFile(path, tree.Encode(t), constants.FilePermissions); err != nil {
		return errors.NewFileError(locale, namespace, path, errors.WrapIO("write", path, err))
	}
	if key, err := filepath.Abs(path); err == nil {
		s.cache.Set(key, t.Clone(), gocache.NoExpiration)
	}
	s.logger.Debug().Str("file", path).Msg("wrote locale file")
	return nil
}
