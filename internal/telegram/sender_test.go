package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "exact", truncate("exact", 5))

	got := truncate(strings.Repeat("a", 10), 8)
	assert.Equal(t, "aaaaa...", got)
	assert.Len(t, []rune(got), 8)

	// Counted in runes, not bytes, so multibyte text never splits
	got = truncate(strings.Repeat("⛏", 10), 6)
	assert.Equal(t, "⛏⛏⛏...", got)
	assert.Len(t, []rune(got), 6)
}
