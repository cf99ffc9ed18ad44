// Package enumerate lists the files a batch operation will process.
package enumerate

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	// ErrNotFound is returned when the source directory does not exist.
	ErrNotFound = errors.New("source directory does not exist")
	// ErrNotDirectory is returned when the source path exists but is not a directory.
	ErrNotDirectory = errors.New("source path is not a directory")
)

// Filter restricts enumeration to file names ending with a suffix, e.g.
// ".jpg". Matching is case-insensitive: ".JPG" and ".jpg" select the same
// files. The empty filter matches every file.
type Filter string

// Matches reports whether name satisfies the filter.
func (f Filter) Matches(name string) bool {
	if f == "" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(name), strings.ToLower(string(f)))
}

// List returns the names of the regular files directly inside dir that match
// the filter, sorted lexically by name. Subdirectories are never descended
// into. An empty result is valid, not an error.
func List(dir string, filter Filter) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, dir)
		}
		return nil, fmt.Errorf("failed to stat source directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read source directory: %w", err)
	}

	// os.ReadDir returns entries sorted by name.
	var names []string
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		if filter.Matches(entry.Name()) {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}
