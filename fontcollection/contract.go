// Package fontcollection implements the external font-collection contract
// of spec section 6: CSS fonts-3 style matching, per-font metrics and
// baseline lookup, and the glue that hands a shaping context to the
// shaper driver. It is the one piece of the OUT OF SCOPE "Font Collection
// service" spec.md leaves as an external collaborator's contract that
// this module still needs a concrete, usable implementation of to drive
// its own tests end to end.
//
// Ported from: skia-source/modules/skparagraph/src/font_collection.go
// (the teacher's FontCollection, itself modeled on SkParagraph's
// FontCollection/TypefaceFontProvider), rebuilt against the spec's
// handle-based contract instead of returning concrete SkTypeface values.
package fontcollection

import (
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/skia/models"
)

// BaselineKind indexes the baseline-set array in spec section 6.
type BaselineKind int

const (
	BaselineAlphabetic BaselineKind = iota
	BaselineIdeographic
	BaselineCentral
	BaselineHanging
	BaselineMathematical
	BaselineMiddle
	BaselineTextTop
	BaselineTextBottom

	baselineCount
)

// BaselineSet is the {alphabetic, ideographic, ...} array spec section 6
// names for font_get_baseline_set.
type BaselineSet [baselineCount]float32

// Metrics mirrors spec section 6's font_metrics contract, already scaled
// by font size.
type Metrics struct {
	Ascender, Descender, LineGap   float32
	XHeight, CapHeight             float32
	UnderlineOffset, UnderlineSize float32
	StrikeoutOffset, StrikeoutSize float32
}

// Collection is the font-collection contract a build consumes. It is a
// read-only, scoped resource per spec section 5: safe to share across
// threads once populated, never mutated concurrently with a build.
type Collection interface {
	// MatchFonts returns an ordered list of font handles for the given
	// {language, script, family, weight, style, stretch}, following the
	// CSS fonts-3 matching algorithm (stretch -> style -> weight
	// narrowing, with the 400/500 weight tie-break).
	MatchFonts(language string, script uint32, family string, weight models.FontWeight, style models.FontSlant, stretch models.FontWidth) []layout.FontHandle

	// DefaultFont is the last-resort fallback for family.
	DefaultFont(family string) layout.FontHandle

	FontHasCodepoint(h layout.FontHandle, cp rune) bool

	FontMetrics(h layout.FontHandle, fontSize float32) Metrics

	FontGetBaseline(h layout.FontHandle, which BaselineKind, rtl bool, script uint32, fontSize float32) float32
	FontGetBaselineSet(h layout.FontHandle, rtl bool, script uint32, fontSize float32) BaselineSet

	FontGetGlyphBounds(h layout.FontHandle, gid uint16, fontSize float32) layout.Rect

	// Font returns the underlying shaping-capable font for h, used by
	// the shaper driver to actually invoke the external shaper. This is
	// the "hands shaping context to a shaper" half of the contract.
	Font(h layout.FontHandle) SkFontLike
}

// SkFontLike is the minimal surface shapedriver needs from a resolved
// font: the same interfaces.SkFont contract skia/impl.Font already
// satisfies, named locally so fontcollection does not force every caller
// to import skia/interfaces just to implement Collection.
type SkFontLike interface {
	Typeface() interface {
		UnicharToGlyph(rune) uint16
		UniqueID() uint32
	}
	Size() float32
}
