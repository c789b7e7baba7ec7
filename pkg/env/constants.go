// pkg/env/constants.go
package env

// Standard keys, named after the SCons construction variables the values
// end up in.
const (
	IncludePath = "CPPPATH"   // header search directories
	LibraryPath = "LIBPATH"   // library search directories
	Libraries   = "LIBS"      // libraries to link, linker-ready names
	CCFlags     = "CCFLAGS"   // compiler flags
	LinkFlags   = "LINKFLAGS" // linker flags
)

// DefaultJobs is the parallel job count used when none is configured
const DefaultJobs = 2

// StandardKeys returns the keys every Environment defines up front
func StandardKeys() []string {
	return []string{IncludePath, LibraryPath, Libraries, CCFlags, LinkFlags}
}
