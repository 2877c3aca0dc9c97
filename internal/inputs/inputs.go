// Copyright 2026 katsuya1128. All rights reserved.

// Package inputs resolves the PDF paths and glob patterns given on the
// command line into a list of files. Expansion happens up front so that a
// typo fails the run before any slow scanning starts.
package inputs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrNoMatch is returned when a pattern resolves to no regular file.
var ErrNoMatch = errors.New("pattern matched nothing")

// Expand resolves each pattern (a plain path or a doublestar glob such as
// "in/**/*.pdf") to the regular files it names. Results keep argument order;
// matches of a single pattern are sorted. Paths are cleaned.
func Expand(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}

		var files []string
		for _, m := range matches {
			fi, err := os.Stat(m)
			if err != nil || !fi.Mode().IsRegular() {
				continue
			}
			files = append(files, filepath.Clean(m))
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrNoMatch, pattern)
		}

		sort.Strings(files)
		out = append(out, files...)
	}
	return out, nil
}
