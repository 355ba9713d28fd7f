package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	t.Run("converts CR to LF and collapses blank lines", func(t *testing.T) {
		got := Normalize("line one\r\rline two\n\n\n\n\nline three")
		assert.Equal(t, "line one\n\nline two\n\nline three", got)
	})

	t.Run("collapses horizontal whitespace", func(t *testing.T) {
		got := Normalize("a  \t  b")
		assert.Equal(t, "a b", got)
	})

	t.Run("converts bullet glyphs to hyphens", func(t *testing.T) {
		got := Normalize("• first\n· second\n▪ third\n● fourth")
		assert.Equal(t, "- first\n- second\n- third\n- fourth", got)
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		assert.Equal(t, "x", Normalize("  \n x \t\n "))
	})
}

func TestClamp(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		assert.Equal(t, "hello", Clamp("hello", 100))
	})

	t.Run("empty text stays empty", func(t *testing.T) {
		assert.Equal(t, "", Clamp("", 10))
	})

	t.Run("long text is cut and flagged", func(t *testing.T) {
		long := strings.Repeat("a", 500)
		got := Clamp(long, 100)

		assert.True(t, strings.HasSuffix(got, TruncationMarker))
		assert.LessOrEqual(t, len(got), 100+len(TruncationMarker))
		assert.Equal(t, strings.Repeat("a", 100), strings.TrimSuffix(got, TruncationMarker))
	})
}

func TestLooksScannedOrEmpty(t *testing.T) {
	assert.True(t, looksScannedOrEmpty(""))
	assert.True(t, looksScannedOrEmpty(strings.Repeat(" \n\t", 500)))
	assert.True(t, looksScannedOrEmpty("short scanned residue"))
	assert.False(t, looksScannedOrEmpty(strings.Repeat("resume text ", 50)))
}
