package findfolder

import (
	"errors"
	"os"
	"path/filepath"
)

// Finder runs the directional searches. The zero value is ready to use.
type Finder struct {
	// Visit, if set, is called with every directory about to be probed.
	Visit func(dir string)
}

// CheckParents probes path and then up to depth of its ancestors for an
// entry named name.
func CheckParents(name, path string, depth uint8) (string, error) {
	return Finder{}.CheckParents(name, path, depth)
}

// CheckKids probes path and then its subdirectories, up to depth levels
// below it, for an entry named name. The descent is depth-first in
// directory listing order.
func CheckKids(name, path string, depth uint8) (string, error) {
	return Finder{}.CheckKids(name, path, depth)
}

// CheckParents resolves path to an absolute path before ascending, so a
// relative start such as "." still reaches its real ancestors.
func (f Finder) CheckParents(name, path string, depth uint8) (string, error) {
	start, err := filepath.Abs(path)
	if err != nil {
		return "", &IOError{Op: "abs", Path: path, Err: err}
	}
	return f.ascend(name, start, depth)
}

func (f Finder) ascend(name, path string, depth uint8) (string, error) {
	found, err := f.CheckDir(name, path)
	if !errors.Is(err, ErrNotFound) || depth == 0 {
		return found, err
	}

	parent := filepath.Dir(path)
	if parent == path {
		// Filesystem root
		return "", ErrNotFound
	}
	return f.ascend(name, parent, depth-1)
}

func (f Finder) CheckKids(name, path string, depth uint8) (string, error) {
	found, err := f.CheckDir(name, path)
	if !errors.Is(err, ErrNotFound) || depth == 0 {
		return found, err
	}

	entries, err := readDir(path)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())

		// Stat follows symlinks so linked directories are descended too.
		info, err := os.Stat(entryPath)
		if err != nil {
			return "", &IOError{Op: "stat", Path: entryPath, Err: err}
		}
		if !info.IsDir() {
			continue
		}

		// A failing subtree is abandoned; its siblings are still tried.
		if found, err := f.CheckKids(name, entryPath, depth-1); err == nil {
			return found, nil
		}
	}
	return "", ErrNotFound
}
