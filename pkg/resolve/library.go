// pkg/resolve/library.go
package resolve

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Library represents a located library file
type Library struct {
	Name    string          // Linker-ready name (e.g., "boost_system-gcc43-mt-1_39")
	Path    string          // Absolute path to the matched file
	Dir     string          // Directory holding the file, for the library search path
	Version *semver.Version // Version tag parsed from the name, nil if absent
}

// LinkName turns a library file name into the name a linker expects:
// a leading prefix token is removed and everything from the first suffix
// delimiter on is dropped.
//
//	LinkName("libboost_system-gcc43-mt-1_39.so", "lib", ".") == "boost_system-gcc43-mt-1_39"
//	LinkName("libssl.so.3", "lib", ".") == "ssl"
func LinkName(file, prefix, delim string) string {
	name := filepath.Base(file)
	if prefix != "" {
		name = strings.TrimPrefix(name, prefix)
	}
	if delim != "" {
		if i := strings.Index(name, delim); i >= 0 {
			name = name[:i]
		}
	}
	return name
}

// versionTag matches the underscore-separated version Boost bakes into its
// directory and file names: 1_42, 1_39_0.
var versionTag = regexp.MustCompile(`(\d+)_(\d+)(?:_(\d+))?`)

// ParseVersion extracts the last version tag from name. It returns nil when
// name carries none.
func ParseVersion(name string) *semver.Version {
	matches := versionTag.FindAllStringSubmatch(name, -1)
	if len(matches) == 0 {
		return nil
	}
	m := matches[len(matches)-1]

	raw := m[1] + "." + m[2]
	if m[3] != "" {
		raw += "." + m[3]
	}
	v, err := semver.NewVersion(raw)
	if err != nil {
		return nil
	}
	return v
}

var libVersionDefine = regexp.MustCompile(`(?m)^\s*#\s*define\s+BOOST_LIB_VERSION\s+"([0-9_]+)"`)

// HeaderVersion reads the version of the header tree rooted at dir: from
// the directory name when it carries a tag (boost-1_42), otherwise from
// BOOST_LIB_VERSION in dir/boost/version.hpp. It returns nil when neither
// is available.
func HeaderVersion(dir string) *semver.Version {
	if v := ParseVersion(filepath.Base(dir)); v != nil {
		return v
	}

	data, err := os.ReadFile(filepath.Join(dir, "boost", "version.hpp"))
	if err != nil {
		return nil
	}
	m := libVersionDefine.FindSubmatch(data)
	if m == nil {
		return nil
	}
	return ParseVersion(string(m[1]))
}
