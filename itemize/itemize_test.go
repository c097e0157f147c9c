package itemize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/skia/impl"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/textprops"
)

func newTestCollection(t *testing.T) *fontcollection.Registry {
	t.Helper()
	r := fontcollection.NewRegistry("sans")
	r.Register("sans", impl.NewTypeface("sans", models.FontStyleNormal()))
	return r
}

func TestItemizeSingleScriptProducesOneRun(t *testing.T) {
	text := []rune("hello")
	props := textprops.Build(text, "en")
	runs := []layout.ContentRun{{ID: 0, Type: layout.ContentUTF8, Range: layout.Range{Start: 0, End: len(text)}, Attributes: attribute.NewSet()}}

	out := Itemize(text, runs, props, newTestCollection(t), Options{Family: "sans"})
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Text.Start)
	assert.Equal(t, len(text), out[0].Text.End)
}

func TestItemizeSplitsAtContentRunBoundary(t *testing.T) {
	text := []rune("abcdef")
	props := textprops.Build(text, "en")
	crs := []layout.ContentRun{
		{ID: 0, Type: layout.ContentUTF8, Range: layout.Range{Start: 0, End: 3}, Attributes: attribute.NewSet()},
		{ID: 1, Type: layout.ContentUTF8, Range: layout.Range{Start: 3, End: 6}, Attributes: attribute.NewSet()},
	}

	out := Itemize(text, crs, props, newTestCollection(t), Options{Family: "sans"})
	require.Len(t, out, 2)
	assert.Equal(t, 0, out[0].ContentRun)
	assert.Equal(t, 1, out[1].ContentRun)
}

func TestItemizeSplitsAtParagraphBoundary(t *testing.T) {
	text := []rune("one\ntwo")
	props := textprops.Build(text, "en")
	crs := []layout.ContentRun{{ID: 0, Type: layout.ContentUTF8, Range: layout.Range{Start: 0, End: len(text)}, Attributes: attribute.NewSet()}}

	out := Itemize(text, crs, props, newTestCollection(t), Options{Family: "sans"})
	require.GreaterOrEqual(t, len(out), 2)
	assert.Equal(t, 0, out[0].Text.Start)
	assert.Equal(t, 4, out[0].Text.End)
}

func TestItemizeObjectContentRunBypassesFontSplit(t *testing.T) {
	text := []rune{layout.ObjectReplacementCodepoint}
	props := textprops.Build(text, "en")
	crs := []layout.ContentRun{{ID: 0, Type: layout.ContentObject, Range: layout.Range{Start: 0, End: 1}, Attributes: attribute.NewSet()}}

	out := Itemize(text, crs, props, newTestCollection(t), Options{Family: "sans"})
	require.Len(t, out, 1)
	assert.Equal(t, layout.Range{Start: 0, End: 1}, out[0].Text)
}

// coverageCollection is a minimal fontcollection.Collection test double
// whose glyph coverage per handle is directly controllable, so the
// Itemizer's sticky-current/candidate-probe/default/tofu fallback tiers
// (spec 4.3 step 7) can each be exercised without real font data.
type coverageCollection struct {
	// order is the candidate list MatchFonts returns, in order.
	order []layout.FontHandle
	// covers[h] reports which runes handle h has a glyph for.
	covers map[layout.FontHandle]map[rune]bool
	// def is the handle DefaultFont returns.
	def layout.FontHandle
}

func (c *coverageCollection) MatchFonts(string, uint32, string, models.FontWeight, models.FontSlant, models.FontWidth) []layout.FontHandle {
	return c.order
}

func (c *coverageCollection) DefaultFont(string) layout.FontHandle { return c.def }

func (c *coverageCollection) FontHasCodepoint(h layout.FontHandle, cp rune) bool {
	return c.covers[h][cp]
}

func (c *coverageCollection) FontMetrics(layout.FontHandle, float32) fontcollection.Metrics {
	return fontcollection.Metrics{}
}

func (c *coverageCollection) FontGetBaseline(layout.FontHandle, fontcollection.BaselineKind, bool, uint32, float32) float32 {
	return 0
}

func (c *coverageCollection) FontGetBaselineSet(layout.FontHandle, bool, uint32, float32) fontcollection.BaselineSet {
	return fontcollection.BaselineSet{}
}

func (c *coverageCollection) FontGetGlyphBounds(layout.FontHandle, uint16, float32) layout.Rect {
	return layout.Rect{}
}

func (c *coverageCollection) Font(layout.FontHandle) fontcollection.SkFontLike { return nil }

var _ fontcollection.Collection = (*coverageCollection)(nil)

// TestResolveFontStaysOnCurrentFontWhenStillCovering exercises tier 1
// (stickiness): a codepoint covered by the already-selected font must not
// trigger a fresh MatchFonts probe or a run split.
func TestResolveFontStaysOnCurrentFontWhenStillCovering(t *testing.T) {
	const primary, secondary layout.FontHandle = 1, 2
	fonts := &coverageCollection{
		order: []layout.FontHandle{primary, secondary},
		covers: map[layout.FontHandle]map[rune]bool{
			primary: {'a': true, 'b': true},
		},
		def: primary,
	}

	got := resolveFont('b', 0, fonts, Options{}, primary, true)
	assert.Equal(t, primary, got)
}

// TestResolveFontProbesNextCandidateWhenCurrentLacksGlyph exercises tier 2:
// when the current font lacks a glyph, the next MatchFonts candidate that
// covers it wins, without falling all the way through to the default.
func TestResolveFontProbesNextCandidateWhenCurrentLacksGlyph(t *testing.T) {
	const primary, secondary, def layout.FontHandle = 1, 2, 3
	fonts := &coverageCollection{
		order: []layout.FontHandle{primary, secondary},
		covers: map[layout.FontHandle]map[rune]bool{
			primary:   {'a': true},
			secondary: {'א': true},
		},
		def: def,
	}

	got := resolveFont('א', 0, fonts, Options{}, primary, true)
	assert.Equal(t, secondary, got)
}

// TestResolveFontFallsBackToDefaultWhenNoCandidateCovers exercises tier 3:
// when no MatchFonts candidate has the glyph but the family default does,
// the default wins over reusing a non-covering candidate.
func TestResolveFontFallsBackToDefaultWhenNoCandidateCovers(t *testing.T) {
	const primary, secondary, def layout.FontHandle = 1, 2, 3
	fonts := &coverageCollection{
		order: []layout.FontHandle{primary, secondary},
		covers: map[layout.FontHandle]map[rune]bool{
			def: {'中': true},
		},
		def: def,
	}

	got := resolveFont('中', 0, fonts, Options{}, primary, true)
	assert.Equal(t, def, got)
}

// TestResolveFontReusesFirstCandidateAsTofuWhenNothingCovers exercises the
// tertiary tofu fallback: when neither the candidates nor the default have
// the glyph, the first candidate is reused rather than leaving the
// codepoint unresolved.
func TestResolveFontReusesFirstCandidateAsTofuWhenNothingCovers(t *testing.T) {
	const primary, secondary, def layout.FontHandle = 1, 2, 3
	fonts := &coverageCollection{
		order:  []layout.FontHandle{primary, secondary},
		covers: map[layout.FontHandle]map[rune]bool{},
		def:    def,
	}

	got := resolveFont('\U0001F600', 0, fonts, Options{}, primary, true)
	assert.Equal(t, primary, got)
}

// TestItemizeSwitchesFontsOnGlyphCoverageBoundary exercises the full
// splitByFont path: a run whose text crosses from glyphs the primary font
// covers into glyphs only a second candidate covers must split exactly
// once, at the coverage boundary, and stay on the second font for the
// remainder (stickiness applies there too).
func TestItemizeSwitchesFontsOnGlyphCoverageBoundary(t *testing.T) {
	const latinFont, hebrewFont layout.FontHandle = 1, 2
	text := []rune("abאב")
	props := textprops.Build(text, "en")
	crs := []layout.ContentRun{{ID: 0, Type: layout.ContentUTF8, Range: layout.Range{Start: 0, End: len(text)}, Attributes: attribute.NewSet()}}

	fonts := &coverageCollection{
		order: []layout.FontHandle{latinFont, hebrewFont},
		covers: map[layout.FontHandle]map[rune]bool{
			latinFont:  {'a': true, 'b': true},
			hebrewFont: {'א': true, 'ב': true},
		},
		def: latinFont,
	}

	out := Itemize(text, crs, props, fonts, Options{Family: "sans"})
	require.Len(t, out, 2)
	assert.Equal(t, layout.Range{Start: 0, End: 2}, out[0].Text)
	assert.Equal(t, latinFont, out[0].Font)
	assert.Equal(t, layout.Range{Start: 2, End: 4}, out[1].Text)
	assert.Equal(t, hebrewFont, out[1].Font)
}
