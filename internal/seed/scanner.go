package seed

import (
	"os"
	"path/filepath"
	"strings"
)

// FindHostDirs enumerates candidate host directories under baseDir in
// lexicographic name order. Hidden entries and *.tmp leftovers are
// skipped, as is anything that is not a directory. A missing or
// non-directory baseDir yields an empty result, not an error.
func FindHostDirs(baseDir string) []string {
	info, err := os.Stat(baseDir)
	if err != nil || !info.IsDir() {
		return nil
	}
	entries, err := os.ReadDir(baseDir)
	if err != nil {
		return nil
	}

	var dirs []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") || strings.HasSuffix(name, ".tmp") {
			continue
		}
		full := filepath.Join(baseDir, name)
		// Stat rather than entry.IsDir so symlinked host dirs count.
		st, err := os.Stat(full)
		if err != nil || !st.IsDir() {
			continue
		}
		dirs = append(dirs, full)
	}
	return dirs
}
