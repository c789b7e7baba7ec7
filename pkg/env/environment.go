// pkg/env/environment.go
package env

import (
	"sort"
	"strings"
)

// New creates an Environment with every standard key defined and empty
func New() *Environment {
	e := &Environment{
		vars: make(map[string][]string),
		jobs: DefaultJobs,
	}
	e.DefineKeys()
	return e
}

// DefineKeys makes sure the standard keys exist. Existing values are kept.
func (e *Environment) DefineKeys() {
	if e.vars == nil {
		e.vars = make(map[string][]string)
	}
	for _, key := range StandardKeys() {
		if _, ok := e.vars[key]; !ok {
			e.vars[key] = []string{}
		}
	}
}

// Append adds values to the end of key's list. Empty strings are skipped.
func (e *Environment) Append(key string, values ...string) {
	if e.vars == nil {
		e.DefineKeys()
	}
	for _, v := range values {
		if v == "" {
			continue
		}
		e.vars[key] = append(e.vars[key], v)
	}
}

// AppendUnique appends the values that key does not already hold
func (e *Environment) AppendUnique(key string, values ...string) {
	for _, v := range values {
		if !e.Has(key, v) {
			e.Append(key, v)
		}
	}
}

// Values returns a copy of key's list
func (e *Environment) Values(key string) []string {
	src := e.vars[key]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Has reports whether key's list contains value
func (e *Environment) Has(key, value string) bool {
	for _, v := range e.vars[key] {
		if v == value {
			return true
		}
	}
	return false
}

// Keys returns every defined key, sorted
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.vars))
	for k := range e.vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// SetJobs sets the number of parallel build jobs. Values below 1 are ignored.
func (e *Environment) SetJobs(n int) {
	if n > 0 {
		e.jobs = n
	}
}

// Jobs returns the number of parallel build jobs
func (e *Environment) Jobs() int {
	return e.jobs
}

// Flags renders the environment as compiler and linker flags
func (e *Environment) Flags() *CompilerFlags {
	flags := &CompilerFlags{
		CCFlags: e.Values(CCFlags),
		LDFlags: e.Values(LinkFlags),
	}
	for _, dir := range e.vars[IncludePath] {
		flags.IncludeFlags = append(flags.IncludeFlags, "-I"+dir)
	}
	for _, dir := range e.vars[LibraryPath] {
		flags.LibraryFlags = append(flags.LibraryFlags, "-L"+dir)
	}
	for _, lib := range e.vars[Libraries] {
		flags.LinkFlags = append(flags.LinkFlags, "-l"+lib)
	}
	return flags
}

// String renders the flags on one line
func (e *Environment) String() string {
	return strings.Join(e.Flags().All(), " ")
}
