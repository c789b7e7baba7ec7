// pkg/resolve/resolver.go
package resolve

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/arc-language/depfind/pkg/platform"
	"github.com/arc-language/depfind/pkg/registry"
	"github.com/arc-language/depfind/pkg/search"
)

// Resolver locates a dependency's artifacts for one platform. It holds no
// results between calls: every call walks the filesystem again.
type Resolver struct {
	conv   *platform.Conventions
	logger *zap.Logger
}

// Option configures a Resolver
type Option func(*Resolver)

// WithLogger sets the logger used to trace candidate attempts
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Resolver for platform id. An id without registered
// conventions is rejected here, before any search happens.
func New(id platform.ID, opts ...Option) (*Resolver, error) {
	conv, err := platform.Lookup(id)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		conv:   conv,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(zap.String("platform", conv.ID.String()))

	return r, nil
}

// Platform returns the platform the resolver searches for
func (r *Resolver) Platform() platform.ID {
	return r.conv.ID
}

// Conventions returns the naming rules in effect
func (r *Resolver) Conventions() *platform.Conventions {
	return r.conv
}

// HeaderPath returns the first header directory of dep found under its
// candidate roots. For each root the versioned directory pattern is tried
// first, then the marker: a root holding the marker directory is itself
// the header path.
func (r *Resolver) HeaderPath(dep *registry.Entry) (string, error) {
	target, err := dep.Target(r.conv.ID)
	if err != nil {
		return "", err
	}
	p, err := target.HeaderMatcher()
	if err != nil {
		return "", fmt.Errorf("%s headers: %w", dep.Name, err)
	}
	marker, err := target.MarkerMatcher()
	if err != nil {
		return "", fmt.Errorf("%s header marker: %w", dep.Name, err)
	}
	if p == nil && marker == nil {
		return "", fmt.Errorf("%s defines no header pattern for %s", dep.Name, r.conv.ID)
	}

	tried := make([]Candidate, 0, len(target.HeaderRoots))
	for _, root := range target.HeaderRoots {
		if p != nil {
			tried = append(tried, Candidate{Root: root, Pattern: p.String()})
			if dir, ok := search.LocateDir(root, p); ok {
				r.matched(dep.Name, KindHeaders, dir)
				return dir, nil
			}
			r.logger.Debug("no match", zap.String("root", root), zap.String("pattern", p.String()))
		}

		if marker != nil {
			tried = append(tried, Candidate{Root: root, Pattern: target.HeaderMarker + "/"})
			if _, ok := search.LocateDir(root, marker); ok {
				r.matched(dep.Name, KindHeaders, root)
				return root, nil
			}
			r.logger.Debug("no marker", zap.String("root", root), zap.String("marker", target.HeaderMarker))
		}
	}

	return "", r.exhausted(dep.Name, KindHeaders, tried)
}

// LibraryPath returns the first library directory of dep found under its
// candidate roots.
func (r *Resolver) LibraryPath(dep *registry.Entry) (string, error) {
	target, err := dep.Target(r.conv.ID)
	if err != nil {
		return "", err
	}
	p, err := target.LibDirMatcher()
	if err != nil {
		return "", fmt.Errorf("%s library directory: %w", dep.Name, err)
	}
	if p == nil {
		return "", fmt.Errorf("%s defines no library directory pattern for %s", dep.Name, r.conv.ID)
	}

	return r.firstDir(dep.Name, KindLibraryDir, target.LibDirRoots, p)
}

// LibraryName finds the library file for the logical name (e.g. "system")
// and derives its linker-ready name.
func (r *Resolver) LibraryName(dep *registry.Entry, name string) (*Library, error) {
	if name == "" {
		return nil, fmt.Errorf("%s: library name is required", dep.Name)
	}

	target, err := dep.Target(r.conv.ID)
	if err != nil {
		return nil, err
	}

	glob := r.conv.LibraryPrefix + target.LibraryStem(name) + "*"
	p, err := search.Glob(glob)
	if err != nil {
		return nil, fmt.Errorf("%s library %s: %w", dep.Name, name, err)
	}

	tried := make([]Candidate, 0, len(target.LibraryRoots))
	for _, root := range target.LibraryRoots {
		tried = append(tried, Candidate{Root: root, Pattern: glob})

		path, ok := search.LocateFileRecurse(root, p)
		if !ok {
			r.logger.Debug("no match", zap.String("root", root), zap.String("pattern", glob))
			continue
		}

		lib := &Library{
			Name: LinkName(path, r.conv.LibraryPrefix, r.conv.SuffixDelimiter),
			Path: path,
			Dir:  filepath.Dir(path),
		}
		lib.Version = ParseVersion(lib.Name)

		r.logger.Debug("matched library",
			zap.String("dependency", dep.Name),
			zap.String("path", path),
			zap.String("link_name", lib.Name))
		return lib, nil
	}

	return nil, r.exhausted(dep.Name, KindLibrary, tried)
}

func (r *Resolver) firstDir(dep string, kind Kind, roots []string, p *search.Pattern) (string, error) {
	tried := make([]Candidate, 0, len(roots))
	for _, root := range roots {
		tried = append(tried, Candidate{Root: root, Pattern: p.String()})

		dir, ok := search.LocateDir(root, p)
		if !ok {
			r.logger.Debug("no match", zap.String("root", root), zap.String("pattern", p.String()))
			continue
		}

		r.matched(dep, kind, dir)
		return dir, nil
	}

	return "", r.exhausted(dep, kind, tried)
}

func (r *Resolver) matched(dep string, kind Kind, dir string) {
	r.logger.Debug("matched directory",
		zap.String("dependency", dep),
		zap.String("kind", string(kind)),
		zap.String("path", dir))
}

func (r *Resolver) exhausted(dep string, kind Kind, tried []Candidate) error {
	err := &ExhaustedError{
		Dependency: dep,
		Kind:       kind,
		Platform:   r.conv.ID,
		Tried:      tried,
	}
	r.logger.Warn("resolution exhausted",
		zap.String("dependency", dep),
		zap.String("kind", string(kind)),
		zap.Int("candidates", len(tried)))
	return err
}
