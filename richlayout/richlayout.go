// Package richlayout is the end-to-end build entry point spec 2's
// "Pipeline ... strictly in build order" and spec 6's external build
// contract describe: it owns the sequencing the four component packages
// never do for themselves, taking a copied text buffer plus its content
// runs and handing back a fully queried Layout.
//
// Ported from: skia/shaper/harfbuzz.go's Shape method, which is the
// teacher's own single-call entry point driving iteration, shaping and
// line emission in one pass; generalized here into four explicit stages
// (Text Property Table, Itemizer, Shaper Driver, Line Layouter) since
// this module splits what the teacher's Shape did in one loop into
// separately testable packages.
package richlayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/itemize"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/linelayout"
	"github.com/textkit/richlayout/shapedriver"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/textprops"
)

// Build runs the full pipeline over text: Text Property Table, Itemizer,
// Shaper Driver (once per emitted ShapingRun), then Line Layouter. The
// returned Layout is read-only per spec 3's Lifecycle note.
//
// Build-wide font/wrap/align parameters are read from params.Attributes
// (spec 4.1's attribute chain); per-content-run attribute overrides are
// a finer resolution the Itemizer does not yet support (see DESIGN.md),
// so every content run in a single Build call shares the font/wrap
// parameters resolved here.
func Build(text []rune, contentRuns []layout.ContentRun, params layout.Params, fonts fontcollection.Collection) *layout.Layout {
	attrs := params.Attributes

	lang, _ := attrs.Get(attribute.KindLanguage)
	props := textprops.Build(text, lang.Text)

	itemOpts := resolveItemizeOptions(attrs)
	runs := itemize.Itemize(text, contentRuns, props, fonts, itemOpts)

	l := &layout.Layout{
		Params:      params,
		Text:        text,
		ContentRuns: contentRuns,
		ShapingRuns: runs,
	}

	letterSpacing, wordSpacing := resolveSpacing(attrs)
	driver := shapedriver.NewDriver()
	for _, run := range runs {
		driver.ShapeRun(l, text, run, contentRuns, props, fonts, letterSpacing, wordSpacing)
	}

	llOpts := resolveLineLayoutOptions(attrs, params, fonts, itemOpts)
	linelayout.Build(l, props, fonts, llOpts)

	return l
}

// resolveItemizeOptions reads the build-wide font selection attributes
// (size is a Line Layouter concern; family/weight/style/stretch/
// language/direction are the Itemizer's) out of the resolved chain.
func resolveItemizeOptions(attrs attribute.Set) itemize.Options {
	family, _ := attrs.Get(attribute.KindFontFamily)
	weight, _ := attrs.Get(attribute.KindFontWeight)
	style, _ := attrs.Get(attribute.KindFontStyle)
	stretch, _ := attrs.Get(attribute.KindFontStretch)
	lang, _ := attrs.Get(attribute.KindLanguage)
	dir, _ := attrs.Get(attribute.KindTextDirection)

	base := itemize.BaseDirectionLTR
	if dir.Enum == attribute.DirectionRTL {
		base = itemize.BaseDirectionRTL
	}

	return itemize.Options{
		Direction: base,
		Language:  lang.Text,
		Family:    family.Text,
		Weight:    models.FontWeight(weight.Int).Clamped(),
		Style:     models.FontSlant(style.Enum),
		Stretch:   models.FontWidth(stretch.Int).Clamped(),
	}
}

func resolveSpacing(attrs attribute.Set) (letterSpacing, wordSpacing float32) {
	ls, _ := attrs.Get(attribute.KindLetterSpacing)
	ws, _ := attrs.Get(attribute.KindWordSpacing)
	return ls.Scalar, ws.Scalar
}

// resolveLineLayoutOptions reads the Line Layouter's wrap/overflow/align/
// line-height attributes out of the chain, and measures the ellipsis
// glyph sequence through the same itemize->shape pipeline when overflow
// is ELLIPSIS so Truncate has a real reserved width rather than 0.
func resolveLineLayoutOptions(attrs attribute.Set, params layout.Params, fonts fontcollection.Collection, itemOpts itemize.Options) linelayout.Options {
	fontSize, _ := attrs.Get(attribute.KindFontSize)
	wrap, _ := attrs.Get(attribute.KindWrapMode)
	overflow, _ := attrs.Get(attribute.KindOverflowMode)
	align, _ := attrs.Get(attribute.KindHorizontalAlign)
	lineHeight, _ := attrs.Get(attribute.KindLineHeight)
	objectAlign, _ := attrs.Get(attribute.KindObjectAlign)
	decoration, _ := attrs.Get(attribute.KindDecoration)

	opts := linelayout.Options{
		MaxWidth:         params.Width,
		MaxHeight:        params.Height,
		WrapMode:         linelayout.WrapMode(wrap.Enum),
		Overflow:         linelayout.OverflowMode(overflow.Enum),
		Align:            linelayout.HorizontalAlign(align.Enum),
		LineHeightMode:   linelayout.LineHeightMode(lineHeight.Enum),
		LineHeight:       lineHeight.Scalar,
		FontSize:         fontSize.Scalar,
		ObjectAlign:      objectAlign.Enum,
		IgnoreMustBreaks: params.Flags&layout.FlagIgnoreMustLineBreaks != 0,
		Decoration:       decoration.Decoration,
	}
	if opts.Overflow == linelayout.OverflowEllipsis {
		opts.EllipsisWidth = measureEllipsisWidth(fonts, itemOpts, fontSize.Scalar)
	}
	return opts
}

// ellipsisText is the single-codepoint U+2026 HORIZONTAL ELLIPSIS
// sequence spec 4.5.5 reserves truncation budget for.
var ellipsisText = []rune{'…'}

func measureEllipsisWidth(fonts fontcollection.Collection, itemOpts itemize.Options, fontSize float32) float32 {
	props := textprops.Build(ellipsisText, itemOpts.Language)
	contentRuns := []layout.ContentRun{{Type: layout.ContentUTF8, Range: layout.Range{Start: 0, End: 1}, Attributes: attribute.NewSet()}}
	runs := itemize.Itemize(ellipsisText, contentRuns, props, fonts, itemOpts)

	l := &layout.Layout{Text: ellipsisText, ContentRuns: contentRuns}
	driver := shapedriver.NewDriver()
	var width float32
	for _, run := range runs {
		glyphStart := len(l.Glyphs)
		driver.ShapeRun(l, ellipsisText, run, contentRuns, props, fonts, 0, 0)
		for _, g := range l.Glyphs[glyphStart:] {
			width += g.AdvanceX
		}
	}
	return width
}
