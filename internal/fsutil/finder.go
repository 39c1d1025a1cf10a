// Package fsutil provides file system utility functions.
package fsutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FindFilesByExtension recursively searches root for files ending with
// extension and returns their paths in lexical order.
func FindFilesByExtension(root string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// ExpandPaths replaces every directory in paths with the files below it that
// end with extension. Other entries, including ones that do not exist, are
// kept as given so that the caller reports them when reading.
func ExpandPaths(paths []string, extension string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil || !info.IsDir() {
			out = append(out, p)
			continue
		}
		files, err := FindFilesByExtension(p, extension)
		if err != nil {
			return nil, err
		}
		out = append(out, files...)
	}
	return out, nil
}
