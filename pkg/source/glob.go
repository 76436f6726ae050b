package source

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs expands paths and glob patterns into a deduplicated, sorted
// list of file paths. A pattern that matches nothing is passed through as a
// literal path, so the caller gets a useful open error instead of a silent
// no-op. The stdin alias "-" is passed through untouched.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var paths []string
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		paths = append(paths, path)
	}

	for _, pattern := range patterns {
		if pattern == Stdin {
			add(pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}

		for _, match := range matches {
			add(match)
		}
	}

	// Sort for deterministic ordering
	sort.Strings(paths)

	return paths, nil
}
