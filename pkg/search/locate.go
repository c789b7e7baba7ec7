// pkg/search/locate.go
package search

import (
	"io/fs"
	"os"
	"path/filepath"
)

// readDir lists a directory in name order
var readDir = os.ReadDir

// LocateDir returns the first immediate child directory of root whose name
// matches p. Children are tested in name order. A symlink to a directory
// counts as a directory. A missing or unreadable root is simply not found.
func LocateDir(root string, p *Pattern) (string, bool) {
	if root == "" || p == nil {
		return "", false
	}

	entries, err := readDir(root)
	if err != nil {
		return "", false
	}

	for _, entry := range entries {
		if !p.Match(entry.Name()) {
			continue
		}
		path := filepath.Join(root, entry.Name())
		if isDir(path, entry) {
			return path, true
		}
	}

	return "", false
}

// LocateFileRecurse walks the tree under root and returns the first file
// whose base name matches p.
//
// Each directory is handled top-down: its files are tested in name order,
// then its subdirectories are descended in name order. Subdirectories that
// cannot be read are skipped. Directory symlinks are followed one level only;
// inside a tree reached through a symlink no further directory links are
// followed, which keeps self-referential links from looping.
func LocateFileRecurse(root string, p *Pattern) (string, bool) {
	if root == "" || p == nil {
		return "", false
	}

	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return "", false
	}

	return walk(root, p, false)
}

func walk(dir string, p *Pattern, viaLink bool) (string, bool) {
	entries, err := readDir(dir)
	if err != nil {
		return "", false
	}

	type subdir struct {
		path string
		link bool
	}
	var subdirs []subdir

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		isLink := entry.Type()&fs.ModeSymlink != 0

		if isDir(path, entry) {
			if isLink && viaLink {
				continue
			}
			subdirs = append(subdirs, subdir{path: path, link: isLink})
			continue
		}

		if !isRegular(path, entry) {
			continue
		}
		if p.Match(entry.Name()) {
			return path, true
		}
	}

	for _, sd := range subdirs {
		if found, ok := walk(sd.path, p, viaLink || sd.link); ok {
			return found, true
		}
	}

	return "", false
}

// isDir reports whether entry is a directory, resolving a symlink once.
func isDir(path string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// isRegular reports whether entry is a regular file, resolving a symlink once.
// Broken links and special files are not candidates.
func isRegular(path string, entry fs.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
