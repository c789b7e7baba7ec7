// pkg/platform/conventions.go
package platform

import "fmt"

// Conventions describes how a platform names libraries and which literal
// compiler/linker settings every build on it receives.
type Conventions struct {
	ID ID

	// LibraryPrefix leads library file names ("lib" in libboost_system.a)
	LibraryPrefix string
	// SuffixDelimiter starts the extension/version tail of a library file name
	SuffixDelimiter string

	StaticExtensions []string
	SharedExtensions []string

	// CCFlags and Libs are appended by every setup
	CCFlags []string
	Libs    []string

	// StaticLinkFlags turn on static linking; nil means unsupported
	StaticLinkFlags []string

	NetworkLibs []string
	RandomLibs  []string

	// SystemDeps are registry dependencies whose include and library
	// directories every target gets (the Windows SDK)
	SystemDeps []string
}

var table = map[ID]*Conventions{
	POSIX: {
		ID:               POSIX,
		LibraryPrefix:    "lib",
		SuffixDelimiter:  ".",
		StaticExtensions: []string{".a"},
		SharedExtensions: []string{".so"},
		CCFlags:          []string{"-O3"},
		Libs:             []string{"pthread"},
		StaticLinkFlags: []string{
			"-static",
			"-static-libgcc",
			"`g++ -print-file-name=libstdc++.a`",
		},
	},
	Darwin: {
		ID:               Darwin,
		LibraryPrefix:    "lib",
		SuffixDelimiter:  ".",
		StaticExtensions: []string{".a"},
		SharedExtensions: []string{".dylib"},
		CCFlags:          []string{"-O3"},
		Libs:             []string{"pthread"},
	},
	Windows: {
		ID:               Windows,
		LibraryPrefix:    "lib",
		SuffixDelimiter:  ".",
		StaticExtensions: []string{".lib"},
		SharedExtensions: []string{".dll"},
		CCFlags: []string{
			"/EHsc",   // exception support
			"/w",      // no warnings
			"/Ox",     // full optimization
			"/DWIN32", // some headers test for it
		},
		NetworkLibs: []string{"ws2_32"},
		RandomLibs:  []string{"advapi32"},
		SystemDeps:  []string{"winsdk"},
	},
}

// Lookup returns the conventions registered for id
func Lookup(id ID) (*Conventions, error) {
	c, ok := table[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedPlatform, string(id))
	}
	return c, nil
}

// Supported lists every platform with registered conventions
func Supported() []ID {
	return []ID{POSIX, Darwin, Windows}
}

// StaticSupported reports whether the platform can link statically
func (c *Conventions) StaticSupported() bool {
	return len(c.StaticLinkFlags) > 0
}
