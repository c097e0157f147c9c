// Package layout holds the core data-model entities of spec section 3 —
// the arrays a Layout owns once built, and the handles/ranges that cross-
// reference them. Every other package (itemize, shapedriver, linelayout,
// caret) reads or appends to these types rather than each inventing its
// own parallel representation, matching spec 9's "opaque handles +
// back-indices" design note: every cross-reference here is a plain int
// index into the owning array, never a pointer.
//
// Ported from: skia-source/modules/skparagraph (Cluster, Run, TextLine,
// Decoration, Placeholder) generalized from SkParagraph's font/paint
// specifics to the spec's font-handle/attribute-driven model.
package layout

import "github.com/textkit/richlayout/attribute"

// ContentType distinguishes a content run's payload kind.
type ContentType int

const (
	ContentUTF8 ContentType = iota
	ContentUTF32
	ContentObject
	ContentIcon
)

// ObjectReplacementCodepoint is U+FFFC, the single codepoint an
// object/icon content run occupies in the copied text buffer.
const ObjectReplacementCodepoint = 0xFFFC

// Range is an inclusive-exclusive [Start,End) index range, reused for
// text ranges, glyph ranges and cluster ranges alike.
type Range struct {
	Start, End int
}

func (r Range) Len() int { return r.End - r.Start }
func (r Range) Empty() bool { return r.End <= r.Start }

// ContentRun is the caller-supplied input unit: a text/object/icon span
// with its own attribute set. ContentRuns partition [0,N) of the copied
// text buffer in logical order; object/icon runs occupy exactly one
// ObjectReplacementCodepoint.
type ContentRun struct {
	ID         int
	Type       ContentType
	Range      Range
	Attributes attribute.Set
	// ObjectWidth/ObjectHeight are meaningful only for Object/Icon runs.
	ObjectWidth, ObjectHeight float32
}

// FontHandle is an opaque reference into a font collection, matching the
// contract in spec section 6 — this core never dereferences it, only
// carries it through to fontcollection calls.
type FontHandle int

// ShapingRun is a run of uniform {paragraph, bidi level, script,
// emoji-ness, content-run, font} emitted by the Itemizer in logical
// order (spec 3's Shaping run entity).
type ShapingRun struct {
	Text        Range
	BidiLevel   uint8
	RTL         bool
	Script      uint32
	Emoji       bool
	ContentRun  int
	Font        FontHandle
	Language    string
	Features    []attribute.FeatureValue
}

// Glyph is a single shaped glyph, pointing back at its owning Cluster by
// index. Glyphs within a shaping run are stored in logical order: for a
// right-to-left run the shaper's visual glyph sequence is reversed, and
// each glyph keeps the X position it had in visual order.
type Glyph struct {
	GlyphID  uint16
	X, Y     float32
	AdvanceX float32
	Cluster  int
}

// Cluster maps one contiguous codepoint range to one contiguous glyph
// range; clusters within a shaping run are stored in logical order.
type Cluster struct {
	TextOffset int
	TextCount  int
	GlyphOffset int
	GlyphCount  int
}

// LayoutRun is a shaping run promoted into a finalized line: a
// [ClusterRange) slice of a Layout's Clusters/Glyphs arrays plus the
// placement metadata computed in 4.5.4.
type LayoutRun struct {
	ShapingRunIndex int
	Direction       uint8 // 0 = LTR, 1 = RTL, matching ShapingRun.BidiLevel parity
	Script          uint32
	BidiLevel       uint8
	Clusters        Range
	Glyphs          Range
	Font            FontHandle
	ContentRun      int
	Bounds          Rect
	// ReferenceBaseline is the Y offset (from the line's dominant
	// baseline) this run's glyphs were shifted by during 4.5.4.
	ReferenceBaseline float32
	IsObject          bool
}

// Rect is an axis-aligned box in the layout's coordinate space.
type Rect struct {
	Left, Top, Right, Bottom float32
}

func (r Rect) Width() float32  { return r.Right - r.Left }
func (r Rect) Height() float32 { return r.Bottom - r.Top }

func (r Rect) Union(o Rect) Rect {
	if r == (Rect{}) {
		return o
	}
	if o == (Rect{}) {
		return r
	}
	out := r
	if o.Left < out.Left {
		out.Left = o.Left
	}
	if o.Top < out.Top {
		out.Top = o.Top
	}
	if o.Right > out.Right {
		out.Right = o.Right
	}
	if o.Bottom > out.Bottom {
		out.Bottom = o.Bottom
	}
	return out
}

// DecorationPosition/Style mirror attribute.DecorationValue's domain so
// linelayout doesn't need to import attribute just to describe the
// finalized decoration it computed.
type DecorationPosition = attribute.DecorationPosition
type DecorationStyle = attribute.DecorationStyle

// Decoration spans consecutive layout runs on a single line sharing the
// same content run, per spec 4.5.7.
type Decoration struct {
	OffsetX, OffsetY float32
	Length           float32
	PatternOffset    float32
	Thickness        float32
	Color            attribute.FillValue
	Position         DecorationPosition
	Style            DecorationStyle
	LayoutRun        int
}

// Line is a single finalized line of layout runs in visual order.
type Line struct {
	LayoutRuns Range
	Text       Range
	Glyphs     Range
	Decorations Range

	LastGraphemeOffset int

	Ascender, Descender, Baseline float32
	Bounds, CullingBounds         Rect
	Truncated                     bool
}

// Layout owns every array above once built; ownership is strict per
// spec 3's Lifecycle note — nothing here outlives the Layout, and the
// Layout is read-only after Build returns.
type Layout struct {
	Params Params

	Text    []rune
	Props   []int // reserved for a future textprops.Table back-reference index per codepoint

	ContentRuns []ContentRun
	ShapingRuns []ShapingRun

	Glyphs   []Glyph
	Clusters []Cluster

	LayoutRuns  []LayoutRun
	Lines       []Line
	Decorations []Decoration

	Bounds          Rect
	AdvanceY        float32
	ResolvedRTL     bool
}

// Reset truncates every array to length zero but keeps their capacity,
// per spec 3's "reset truncates length but retains capacity" invariant,
// so a caller rebuilding the same Layout repeatedly amortizes allocation.
func (l *Layout) Reset() {
	l.Text = l.Text[:0]
	l.Props = l.Props[:0]
	l.ContentRuns = l.ContentRuns[:0]
	l.ShapingRuns = l.ShapingRuns[:0]
	l.Glyphs = l.Glyphs[:0]
	l.Clusters = l.Clusters[:0]
	l.LayoutRuns = l.LayoutRuns[:0]
	l.Lines = l.Lines[:0]
	l.Decorations = l.Decorations[:0]
	l.Bounds = Rect{}
	l.AdvanceY = 0
	l.ResolvedRTL = false
}

// ParamFlags are the bit flags recognized by LayoutParams in spec
// section 6.
type ParamFlags uint32

const (
	FlagIgnoreMustLineBreaks ParamFlags = 1 << iota
	FlagIgnoreVerticalAlign
)

// Params is the external LayoutParams input to a build (spec section 6).
type Params struct {
	Width, Height float32
	Flags         ParamFlags
	ListMarkerCounter int
	Attributes    attribute.Set
}
