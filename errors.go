// errors.go
package depfind

import (
	"errors"
	"fmt"

	"github.com/arc-language/depfind/pkg/platform"
	"github.com/arc-language/depfind/pkg/resolve"
)

var (
	// ErrNotFound indicates a dependency that no candidate root provides
	ErrNotFound = resolve.ErrNotFound

	// ErrPlatformNotSupported indicates the platform is not supported
	ErrPlatformNotSupported = platform.ErrUnsupportedPlatform

	// ErrStaticUnsupported indicates the platform cannot link statically
	ErrStaticUnsupported = errors.New("static linking not supported")

	// ErrVersionMismatch indicates located headers outside the configured version range
	ErrVersionMismatch = errors.New("version mismatch")
)

// Error wraps an error with additional context
type Error struct {
	Op         string // Operation that failed
	Dependency string // Dependency name if applicable
	Err        error  // Underlying error
}

func (e *Error) Error() string {
	if e.Dependency != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Dependency, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
