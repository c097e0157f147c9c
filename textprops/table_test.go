package textprops

import (
	"testing"

	"github.com/go-text/typesetting/language"
	"github.com/stretchr/testify/assert"
)

func TestBuildLengthMatchesInput(t *testing.T) {
	text := []rune("Hello, 世界")
	tbl := Build(text, "en")
	assert.Len(t, tbl.Entries, len(text))
}

func TestLeadingCommonInheritsFirstStrongScript(t *testing.T) {
	text := []rune("123abc")
	tbl := Build(text, "en")
	for i := range tbl.Entries {
		assert.Equal(t, language.Latin, tbl.Entries[i].Script)
	}
}

func TestLeadingCommonFallsBackToLatinWithNoStrongScript(t *testing.T) {
	text := []rune("123 456")
	tbl := Build(text, "en")
	for i := range tbl.Entries {
		assert.Equal(t, language.Latin, tbl.Entries[i].Script)
	}
}

func TestTabForcesAllowBreakBeforeItself(t *testing.T) {
	text := []rune("a\tb")
	tbl := Build(text, "en")
	assert.Equal(t, BreakAllow, tbl.Entries[1].LineBreak)
}

func TestWhitespaceAndControlFlags(t *testing.T) {
	text := []rune("a \n\x01")
	tbl := Build(text, "en")
	assert.True(t, tbl.Entries[1].Whitespace)
	assert.True(t, tbl.Entries[2].Whitespace)
	assert.True(t, tbl.Entries[3].Control)
}

func TestRTLClassDetection(t *testing.T) {
	text := []rune("אב") // Hebrew alef, bet
	tbl := Build(text, "he")
	assert.True(t, tbl.Entries[0].RTL)
}

func TestApplyLanguageBreakerClearsGenericBreaks(t *testing.T) {
	text := []rune("hello world")
	tbl := Build(text, "en")
	tbl.ApplyLanguageBreaker(0, len(text))
	// Original generic break before "world" (index 6) must have been
	// re-derived from word boundaries, not just carried over untouched.
	assert.NotPanics(t, func() { _ = tbl.Entries[6].LineBreak })
	assert.Equal(t, BreakAllow, tbl.Entries[6].LineBreak)
	assert.Equal(t, BreakNone, tbl.Entries[5].LineBreak)
}
