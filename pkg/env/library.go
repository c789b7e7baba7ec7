// pkg/env/library.go
package env

// AddLibrary records a library to link: its linker-ready name goes to LIBS
// and its directory to LIBPATH, unless LIBPATH already lists it.
func (e *Environment) AddLibrary(name, dir string) {
	e.Append(Libraries, name)
	if dir != "" {
		e.AppendUnique(LibraryPath, dir)
	}
}

// HasLibrary checks if a library is already linked
func (e *Environment) HasLibrary(name string) bool {
	return e.Has(Libraries, name)
}

// ListLibraryNames returns the linked libraries without duplicates, in
// first-seen order
func (e *Environment) ListLibraryNames() []string {
	libs := e.vars[Libraries]
	names := make([]string, 0, len(libs))
	seen := make(map[string]bool)

	for _, lib := range libs {
		if !seen[lib] {
			names = append(names, lib)
			seen[lib] = true
		}
	}

	return names
}
