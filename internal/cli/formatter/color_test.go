package formatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		filled   int
		percent  string
	}{
		{"empty", 0, 0, "  0%"},
		{"half", 0.5, 5, " 50%"},
		{"full", 1, 10, "100%"},
		{"clamped above", 1.7, 10, "100%"},
		{"clamped below", -0.2, 0, "  0%"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bar := ProgressBar(tc.fraction, 10)
			assert.Equal(t, tc.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tc.filled, strings.Count(bar, "░"))
			assert.True(t, strings.HasSuffix(bar, tc.percent), bar)
		})
	}

	assert.Empty(t, ProgressBar(0.5, 0))
}

func TestHeader(t *testing.T) {
	h := Header("Steps")
	assert.Contains(t, h, "STEPS")
	assert.Contains(t, h, "─────")
}

func TestBullets(t *testing.T) {
	out := Bullets([]string{"one", "two"})
	assert.Equal(t, 2, strings.Count(out, "•"))
	assert.Contains(t, out, "one\n")
}
