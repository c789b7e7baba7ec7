// pkg/search/doc.go

/*
Package search finds header directories and library files on disk.

It has no state and never returns filesystem errors: a root that does not
exist, a directory that cannot be read or a broken symlink all read as
"not found", and the caller moves on to its next candidate root.

Basic Usage:

	p, err := search.Glob("boost-[0-9]_[0-9][0-9]")
	if err != nil {
		return err
	}

	dir, ok := search.LocateDir("/usr/include", p)
	if ok {
		fmt.Println(dir) // /usr/include/boost-1_42
	}

	lib, ok := search.LocateFileRecurse("/usr/lib", search.MustGlob("libboost_system*"))

Patterns are anchored to the whole base name. Glob handles '*', '?' and
bracket classes; Regexp accepts a regular expression and anchors it.
*/
package search
