package controllers

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExperienceExcerpt(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		assert.Equal(t, "two rounds, both DSA", experienceExcerpt("two rounds, both DSA"))
	})

	t.Run("exact length passes through", func(t *testing.T) {
		text := strings.Repeat("a", experienceExcerptLen)
		assert.Equal(t, text, experienceExcerpt(text))
	})

	t.Run("long text is trimmed with ellipsis", func(t *testing.T) {
		text := strings.Repeat("a", experienceExcerptLen+50)
		got := experienceExcerpt(text)
		assert.Equal(t, strings.Repeat("a", experienceExcerptLen)+"...", got)
	})

	t.Run("multi-byte rune on the boundary stays whole", func(t *testing.T) {
		// 199 ASCII bytes, then a 3-byte rune straddling the cut point.
		text := strings.Repeat("a", experienceExcerptLen-1) + "राउंड में सिस्टम डिज़ाइन पूछा गया"
		got := experienceExcerpt(text)

		assert.True(t, utf8.ValidString(got), "excerpt contains a split rune: %q", got)
		assert.False(t, strings.ContainsRune(got, utf8.RuneError))
		assert.Equal(t, strings.Repeat("a", experienceExcerptLen-1)+"...", got)
	})
}
