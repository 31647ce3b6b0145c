// Package seed implements validation of autoinstall NoCloud seed
// directories: per-host meta-data and user-data checks plus run
// orchestration.
package seed

import (
	"errors"
	"io/fs"
	"os"
	"strings"
)

// ReadText returns the full content of the file at path. A missing file
// yields an empty string rather than an error; invalid UTF-8 byte
// sequences are replaced with U+FFFD. Any other read failure is
// returned to the caller.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	return strings.ToValidUTF8(string(data), "�"), nil
}

// ParseKeyValues parses simple "key: value" line-oriented text (like the
// sample meta-data files). Blank lines, #-comment lines and lines
// without a ':' separator are ignored. Later duplicate keys overwrite
// earlier ones.
func ParseKeyValues(text string) map[string]string {
	result := make(map[string]string)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, val, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		result[strings.TrimSpace(key)] = strings.TrimSpace(val)
	}
	return result
}
