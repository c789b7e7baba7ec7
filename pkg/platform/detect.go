// pkg/platform/detect.go
package platform

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ErrUnsupportedPlatform indicates a platform with no registered conventions.
var ErrUnsupportedPlatform = errors.New("unsupported platform")

// ID identifies a platform family with its own search roots and naming rules
type ID string

const (
	// POSIX covers Linux and the BSDs
	POSIX ID = "posix"
	// Darwin is POSIX-like but installs into Homebrew prefixes
	Darwin ID = "darwin"
	// Windows uses MSVC conventions and Program Files roots
	Windows ID = "windows"
)

// aliases maps the names other tools use for a platform to its ID
var aliases = map[string]ID{
	"posix":   POSIX,
	"linux":   POSIX,
	"linux2":  POSIX,
	"freebsd": POSIX,
	"netbsd":  POSIX,
	"openbsd": POSIX,
	"darwin":  Darwin,
	"macos":   Darwin,
	"windows": Windows,
	"win32":   Windows,
}

// Detect returns the platform the process is running on
func Detect() (ID, error) {
	return fromGOOS(runtime.GOOS)
}

func fromGOOS(goos string) (ID, error) {
	switch goos {
	case "linux", "freebsd", "netbsd", "openbsd":
		return POSIX, nil
	case "darwin":
		return Darwin, nil
	case "windows":
		return Windows, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Parse converts a user-supplied platform name to an ID
func Parse(s string) (ID, error) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedPlatform, s)
	}
	return id, nil
}

// String returns the platform name
func (id ID) String() string {
	return string(id)
}
