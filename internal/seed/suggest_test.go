package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestMatch(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		candidates []string
		want       string
	}{
		{
			name:       "near miss matches",
			target:     "identity",
			candidates: []string{"version", "identiti", "storage"},
			want:       "identiti",
		},
		{
			name:       "transposition costs two edits, below cutoff",
			target:     "identity",
			candidates: []string{"idenitty"},
			want:       "",
		},
		{
			name:       "nothing close",
			target:     "identity",
			candidates: []string{"version", "storage", "network"},
			want:       "",
		},
		{
			name:       "exact candidate wins",
			target:     "identity",
			candidates: []string{"identiti", "identity"},
			want:       "identity",
		},
		{
			name:       "no candidates",
			target:     "identity",
			candidates: nil,
			want:       "",
		},
		{
			name:       "tie resolves to earliest",
			target:     "identity",
			candidates: []string{"identitx", "identitz"},
			want:       "identitx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BestMatch(tt.target, tt.candidates, suggestThreshold))
		})
	}
}

func TestBestMatch_Deterministic(t *testing.T) {
	candidates := []string{"identitx", "identitz", "identiti"}
	first := BestMatch("identity", candidates, suggestThreshold)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, BestMatch("identity", candidates, suggestThreshold))
	}
}
