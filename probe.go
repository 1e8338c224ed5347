package findfolder

import (
	"io/fs"
	"os"
	"path/filepath"
)

// readDir lists the immediate entries of dir in the order the
// filesystem yields them. The handle is closed before returning.
func readDir(dir string) ([]fs.DirEntry, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, &IOError{Op: "open", Path: dir, Err: err}
	}
	defer f.Close()

	entries, err := f.ReadDir(-1)
	if err != nil {
		return nil, &IOError{Op: "readdir", Path: dir, Err: err}
	}
	return entries, nil
}

// CheckDir looks at the immediate entries of path for one named exactly name
// and returns its full path.
func CheckDir(name, path string) (string, error) {
	return Finder{}.CheckDir(name, path)
}

// CheckDir is the package-level CheckDir with f.Visit notified of path.
func (f Finder) CheckDir(name, path string) (string, error) {
	if f.Visit != nil {
		f.Visit(path)
	}

	entries, err := readDir(path)
	if err != nil {
		return "", err
	}

	for _, entry := range entries {
		if entry.Name() == name {
			return filepath.Join(path, entry.Name()), nil
		}
	}
	return "", ErrNotFound
}
