// pkg/env/types.go
package env

// Environment is the build configuration handed to the external build
// driver: ordered value lists per key plus the parallel job count.
// Lists only ever grow; nothing here removes or reorders an entry.
type Environment struct {
	vars map[string][]string
	jobs int
}

// CompilerFlags holds compiler and linker flags
type CompilerFlags struct {
	IncludeFlags []string // -I flags
	LibraryFlags []string // -L flags
	LinkFlags    []string // -l flags
	CCFlags      []string // passed through from CCFLAGS
	LDFlags      []string // passed through from LINKFLAGS
}

// All returns every flag in compiler command-line order
func (f *CompilerFlags) All() []string {
	all := make([]string, 0, len(f.CCFlags)+len(f.IncludeFlags)+len(f.LibraryFlags)+len(f.LinkFlags)+len(f.LDFlags))
	all = append(all, f.CCFlags...)
	all = append(all, f.IncludeFlags...)
	all = append(all, f.LibraryFlags...)
	all = append(all, f.LinkFlags...)
	all = append(all, f.LDFlags...)
	return all
}
