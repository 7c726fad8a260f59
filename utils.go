package daynight

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// filesInDir returns all regular files and symlinks found directly in directory dirPath, sorted by
// name. Names starting with a dot are skipped.
func filesInDir(dirPath string) (files []string, err error) {
	// Open the directory.
	dirInfo, err := os.Stat(dirPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dirPath, err)
	}
	if !dirInfo.IsDir() {
		return nil, fmt.Errorf("not a directory: %q", dirPath)
	}
	dir, err := os.Open(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access %q: %w", dirPath, err)
	}
	defer closeWithErrCheck(dir, &err)

	// Iterate over all entries in dir.
	files = make([]string, 0, 100)
	var entries []os.DirEntry
	for entries, err = dir.ReadDir(100); len(entries) > 0; entries, err = dir.ReadDir(100) {
		for _, entry := range entries {
			name := entry.Name()
			// Must be a regular file or a symlink and must not be hidden.
			if (!entry.Type().IsRegular() && (entry.Type()&os.ModeSymlink == 0)) ||
					strings.HasPrefix(name, ".") {
				continue
			}
			files = append(files, filepath.Join(dirPath, name))
		}
	}
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to list %q: %w", dirPath, err)
	}
	sort.Strings(files)

	return files, nil
}

// closeWithErrCheck calls c.Close(). If it returns an error, and (*e == nil), e is set to that
// error.
func closeWithErrCheck(c io.Closer, e *error) {
	err := c.Close()
	if err != nil && *e == nil {
		*e = err
	}
}
