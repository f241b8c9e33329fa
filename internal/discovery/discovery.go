// Package discovery finds listing files under a project root.
package discovery

import (
	"fmt"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// listingPatterns defines the canonical glob patterns for listing files.
// Order matters only for documentation; results are deduplicated and sorted.
var listingPatterns = []string{
	"listings/**/*.md",
	"listings/**/*.yaml",
	"listings/**/*.yml",
	"**/*.listing.md",
}

// DiscoverListings returns the relative paths of all listing files under
// root, minus any matching an exclude pattern. Paths are sorted for
// deterministic output.
func DiscoverListings(root string, excludes []string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("error reading root directory: %w", err)
	}

	fsys := os.DirFS(root)
	seen := make(map[string]bool)
	var files []string

	for _, pattern := range listingPatterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("error matching pattern %s: %w", pattern, err)
		}
		for _, match := range matches {
			if seen[match] || excluded(match, excludes) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// excluded reports whether path matches any exclude pattern. Invalid
// patterns are ignored rather than failing the whole scan.
func excluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, path); err == nil && ok {
			return true
		}
	}
	return false
}
