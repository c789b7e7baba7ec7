// pkg/resolve/errors.go
package resolve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/depfind/pkg/platform"
)

// ErrNotFound indicates that no candidate root produced a match
var ErrNotFound = errors.New("not found")

// Kind names what a resolution was looking for
type Kind string

const (
	KindHeaders    Kind = "headers"
	KindLibraryDir Kind = "library directory"
	KindLibrary    Kind = "library"
)

// Candidate is one (root, pattern) pair a resolution tried
type Candidate struct {
	Root    string
	Pattern string
}

// ExhaustedError reports a resolution where every candidate came up empty.
// It unwraps to ErrNotFound.
type ExhaustedError struct {
	Dependency string
	Kind       Kind
	Platform   platform.ID
	Tried      []Candidate
}

func (e *ExhaustedError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s error: could not locate %s on %s", e.Dependency, e.Kind, e.Platform)
	if len(e.Tried) == 0 {
		b.WriteString(" (no candidate roots)")
		return b.String()
	}
	b.WriteString(", tried")
	for i, c := range e.Tried {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, " %s in %s", c.Pattern, c.Root)
	}
	return b.String()
}

func (e *ExhaustedError) Unwrap() error {
	return ErrNotFound
}
