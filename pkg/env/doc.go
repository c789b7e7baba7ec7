// pkg/env/doc.go

/*
Package env holds the build environment that depfind fills in for an
external build driver.

It handles:
  - Ordered, append-only value lists (CPPPATH, LIBPATH, LIBS, CCFLAGS, LINKFLAGS)
  - Generating compiler and linker flags
  - Recording linked libraries
  - Writing and reading snapshots in yaml, json or toml

Basic Usage:

	import "github.com/arc-language/depfind/pkg/env"

	e := env.New()
	e.Append(env.IncludePath, "/usr/include/boost-1_42")
	e.AddLibrary("boost_system-gcc43-mt-1_39", "/usr/lib")

	for _, flag := range e.Flags().All() {
		fmt.Println(flag) // -I/usr/include/boost-1_42 ...
	}

	if err := e.Snapshot("posix").Save("build/env.yaml"); err != nil {
		return err
	}

An Environment is not safe for concurrent use. depfind fills it in during
setup, before any build job starts.
*/
package env
