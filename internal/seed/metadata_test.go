package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeMetaData(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), MetaDataFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidateMeta_Valid(t *testing.T) {
	path := writeMetaData(t, "instance-id: web01-2024\nlocal-hostname: web01\n")
	assert.Empty(t, ValidateMeta(path))
}

func TestValidateMeta_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), MetaDataFile)
	assert.Equal(t, []string{"meta-data missing or empty"}, ValidateMeta(path))
}

func TestValidateMeta_EmptyFile(t *testing.T) {
	path := writeMetaData(t, "")
	assert.Equal(t, []string{"meta-data missing or empty"}, ValidateMeta(path))
}

func TestValidateMeta_MissingKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "missing instance-id only",
			content: "local-hostname: web01\n",
			want:    []string{"meta-data: missing instance-id"},
		},
		{
			name:    "missing local-hostname only",
			content: "instance-id: web01-2024\n",
			want:    []string{"meta-data: missing local-hostname"},
		},
		{
			name:    "both missing, both reported",
			content: "# nothing useful\nother-key: value\n",
			want: []string{
				"meta-data: missing instance-id",
				"meta-data: missing local-hostname",
			},
		},
		{
			name:    "whitespace-only values count as missing",
			content: "instance-id:   \nlocal-hostname: web01\n",
			want:    []string{"meta-data: missing instance-id"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeMetaData(t, tt.content)
			assert.Equal(t, tt.want, ValidateMeta(path))
		})
	}
}

func TestValidateMeta_PrefixAdvisory(t *testing.T) {
	path := writeMetaData(t, "instance-id: db-2024\nlocal-hostname: web01\n")
	assert.Equal(t,
		[]string{"meta-data: instance-id should start with local-hostname (hint from sample)"},
		ValidateMeta(path))
}

func TestValidateMeta_PrefixAdvisorySkippedWhenKeyMissing(t *testing.T) {
	// The naming convention is only checked when both keys are present.
	path := writeMetaData(t, "instance-id: db-2024\n")
	assert.Equal(t, []string{"meta-data: missing local-hostname"}, ValidateMeta(path))
}
