// pkg/registry/registry.go
package registry

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arc-language/depfind/pkg/platform"
	"github.com/arc-language/depfind/pkg/search"
)

// ErrUnknownDependency indicates a dependency with no definition
var ErrUnknownDependency = errors.New("unknown dependency")

//go:embed deps/*.toml
var depsFS embed.FS

// Entry represents a single deps/<name>.toml definition
type Entry struct {
	Name      string            `toml:"name"`
	Platforms map[string]Target `toml:"platforms"`
}

// Target holds the candidate roots and name patterns for one platform.
// Roots are tried in order; the first one that matches wins.
type Target struct {
	HeaderRoots   []string `toml:"header_roots"`
	HeaderPattern string   `toml:"header_pattern"`
	HeaderRegexp  string   `toml:"header_regexp"`
	// HeaderMarker names a directory (e.g. "boost") whose presence makes the
	// root itself the header path, for unversioned installs
	HeaderMarker string `toml:"header_marker"`

	LibDirRoots   []string `toml:"libdir_roots"`
	LibDirPattern string   `toml:"libdir_pattern"`

	LibraryRoots []string `toml:"library_roots"`
	// LibraryTemplate turns a logical name into a file stem, "boost_%s"
	LibraryTemplate string `toml:"library_template"`
}

// Registry provides lookup into the compiled-in dependency definitions
type Registry struct {
	entries map[string]*Entry
}

// New loads every definition embedded in the binary
func New() (*Registry, error) {
	sub, err := fs.Sub(depsFS, "deps")
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}
	return FromFS(sub)
}

// FromFS loads every *.toml file at the top of fsys
func FromFS(fsys fs.FS) (*Registry, error) {
	files, err := fs.Glob(fsys, "*.toml")
	if err != nil {
		return nil, fmt.Errorf("registry: %w", err)
	}

	r := &Registry{entries: make(map[string]*Entry, len(files))}
	for _, file := range files {
		data, err := fs.ReadFile(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("registry: reading %s: %w", file, err)
		}

		var entry Entry
		if _, err := toml.Decode(string(data), &entry); err != nil {
			return nil, fmt.Errorf("registry: failed to parse '%s': %w", file, err)
		}
		if entry.Name == "" {
			entry.Name = strings.TrimSuffix(path.Base(file), ".toml")
		}
		if _, dup := r.entries[entry.Name]; dup {
			return nil, fmt.Errorf("registry: dependency '%s' defined twice", entry.Name)
		}
		r.entries[entry.Name] = &entry
	}

	return r, nil
}

// Load returns the definition for name
func (r *Registry) Load(name string) (*Entry, error) {
	entry, ok := r.entries[name]
	if !ok {
		return nil, fmt.Errorf("registry: %w '%s'", ErrUnknownDependency, name)
	}
	return entry, nil
}

// Names returns every known dependency, sorted
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.entries))
	for name := range r.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Target returns the definition for platform id
func (e *Entry) Target(id platform.ID) (*Target, error) {
	t, ok := e.Platforms[string(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %s has no definition for %s", platform.ErrUnsupportedPlatform, e.Name, id)
	}
	return &t, nil
}

// HeaderMatcher compiles the header directory pattern. A regular
// expression takes precedence over a glob when both are set.
func (t *Target) HeaderMatcher() (*search.Pattern, error) {
	switch {
	case t.HeaderRegexp != "":
		return search.Regexp(t.HeaderRegexp)
	case t.HeaderPattern != "":
		return search.Glob(t.HeaderPattern)
	default:
		return nil, nil
	}
}

// MarkerMatcher matches the header marker directory literally, nil when unset
func (t *Target) MarkerMatcher() (*search.Pattern, error) {
	if t.HeaderMarker == "" {
		return nil, nil
	}
	return search.Regexp(regexp.QuoteMeta(t.HeaderMarker))
}

// LibDirMatcher compiles the library directory pattern, nil when unset
func (t *Target) LibDirMatcher() (*search.Pattern, error) {
	if t.LibDirPattern == "" {
		return nil, nil
	}
	return search.Glob(t.LibDirPattern)
}

// LibraryStem interpolates name into the library template
func (t *Target) LibraryStem(name string) string {
	if t.LibraryTemplate == "" {
		return name
	}
	return fmt.Sprintf(t.LibraryTemplate, name)
}
