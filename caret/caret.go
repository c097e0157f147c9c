// Package caret implements the Caret Model of spec 4.6: grapheme-accurate
// text positions, the caret iterator that is the single primitive behind
// hit testing, caret rendering and selection-rectangle construction, and
// the selection-bounds algorithm itself. State here is read-only: every
// function takes an already-built Layout and Line and returns structured
// positions, never mutating the layout.
//
// Ported from: the visual-order, bidi-direction-carrying iteration shape
// of skia/shaper/harfbuzz.go's emitLine/reorderVisual, generalized from
// "walk runs to emit glyphs" into "walk runs to emit caret positions",
// plus gio's text/editor.go for the caret/selection naming this package
// borrows (Affinity, TextPosition).
package caret

import (
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/textprops"
)

// Affinity disambiguates a text position that can sit at two visual X
// coordinates: at a bidi run boundary, or at a line wrap.
type Affinity int

const (
	AffinityNone Affinity = iota
	AffinityTrailing
	AffinityLeading
	AffinityStartOfLine
	AffinityEndOfLine
)

// TextPosition is the {codepoint offset, affinity} pair spec 4.6 names.
type TextPosition struct {
	Offset   int
	Affinity Affinity
}

// NextGrapheme advances past the grapheme containing o, using the
// GraphemeBreak markers textprops.Build already computed. o = len(text)
// (one past the last codepoint) is a valid input and returned unchanged,
// since it is itself a valid insertion point.
func NextGrapheme(props *textprops.Table, o int) int {
	n := len(props.Entries)
	if o >= n {
		return n
	}
	i := o + 1
	for i < n && !props.Entries[i].GraphemeBreak {
		i++
	}
	return i
}

// PrevGrapheme walks back to the start of the grapheme immediately
// preceding o's grapheme.
func PrevGrapheme(props *textprops.Table, o int) int {
	start := AlignGrapheme(props, o)
	if start <= 0 {
		return 0
	}
	i := start - 1
	for i > 0 && !props.Entries[i].GraphemeBreak {
		i--
	}
	return i
}

// AlignGrapheme returns the start offset of the grapheme containing o,
// clamping out-of-range offsets silently per spec 7.
func AlignGrapheme(props *textprops.Table, o int) int {
	n := len(props.Entries)
	if o <= 0 {
		return 0
	}
	if o >= n {
		return n
	}
	i := o
	for i > 0 && !props.Entries[i].GraphemeBreak {
		i--
	}
	return i
}

// Movement selects hit-testing behavior that differs between placing a
// caret and extending a selection (spec 4.6's "snap a caret... selection
// may sit there, caret may not" rule).
type Movement int

const (
	MovementCaret Movement = iota
	MovementSelection
)

// CaretSide carries the structured position, owning layout-run/glyph
// index, and direction on one side of a caret step.
type CaretSide struct {
	Position  TextPosition
	LayoutRun int
	Glyph     int
	Direction uint8
}

// CaretStep is one grapheme boundary on a line in visual order: Left and
// Right are the text positions immediately before/after the boundary in
// visual space, each tagged with affinity so hit testing and selection
// can tell which side of a bidi seam they sit on.
type CaretStep struct {
	X, Advance  float32
	Left, Right CaretSide
}

// CaretIterator walks every grapheme boundary on line in visual order,
// per spec 4.6: between adjacent graphemes even inside a single shaped
// cluster (a ligature), interpolating X by grapheme count within the
// cluster rather than emitting only one step per cluster.
func CaretIterator(l *layout.Layout, props *textprops.Table, line *layout.Line) []CaretStep {
	var steps []CaretStep
	for ri := line.LayoutRuns.Start; ri < line.LayoutRuns.End; ri++ {
		run := l.LayoutRuns[ri]
		for _, ci := range visualClusterOrder(run) {
			c := l.Clusters[ci]
			steps = append(steps, graphemeStepsForCluster(l, props, ri, c, run.Direction)...)
		}
	}
	return steps
}

// visualClusterOrder returns a run's cluster indices in visual order:
// clusters are stored in logical order within a run (layout.Cluster's
// doc comment), so an RTL run's clusters are walked high-to-low.
func visualClusterOrder(run layout.LayoutRun) []int {
	n := run.Clusters.Len()
	if n <= 0 {
		return nil
	}
	order := make([]int, n)
	if run.Direction == 1 {
		for i := 0; i < n; i++ {
			order[i] = run.Clusters.End - 1 - i
		}
	} else {
		for i := 0; i < n; i++ {
			order[i] = run.Clusters.Start + i
		}
	}
	return order
}

// graphemeStepsForCluster splits one shaped cluster into one CaretStep
// per grapheme it contains, interpolating both X and advance evenly
// across the cluster's total glyph advance. A cluster spanning more than
// one grapheme happens only inside a ligature; the interpolation is the
// same approximation spec 4.6 and 4.6's selection-bounds algorithm both
// call for.
func graphemeStepsForCluster(l *layout.Layout, props *textprops.Table, runIdx int, c layout.Cluster, direction uint8) []CaretStep {
	var total float32
	for gi := c.GlyphOffset; gi < c.GlyphOffset+c.GlyphCount; gi++ {
		total += l.Glyphs[gi].AdvanceX
	}
	left := clusterLeftX(l, c)

	starts := graphemeStartsWithin(props, c.TextOffset, c.TextOffset+c.TextCount)
	count := len(starts) - 1
	if count < 1 {
		count = 1
		starts = []int{c.TextOffset, c.TextOffset + c.TextCount}
	}
	perGrapheme := total / float32(count)

	// A grapheme's own leading edge (where reading it begins) sits at its
	// visual-left side for LTR and its visual-right side for RTL, and its
	// trailing edge (where reading it ends) sits at the opposite side —
	// the same reversal bidi gives every other visual quantity in this
	// package. Hardcoding Left=Trailing/Right=Leading regardless of
	// direction put every LTR boundary's affinity backwards: the Leading
	// edge (start of the character, e.g. the left edge of 'a') was
	// tagged Trailing, and the Trailing edge (end of the character, e.g.
	// the right edge of 'c' at a bidi seam) was tagged Leading.
	leftAffinity, rightAffinity := AffinityLeading, AffinityTrailing
	if direction == 1 {
		leftAffinity, rightAffinity = AffinityTrailing, AffinityLeading
	}

	steps := make([]CaretStep, 0, count)
	for gi := 0; gi < count; gi++ {
		var x float32
		var leftOffset, rightOffset int
		if direction == 1 {
			x = left + float32(gi)*perGrapheme
			leftOffset = starts[count-gi]
			rightOffset = starts[count-gi-1]
		} else {
			x = left + float32(gi)*perGrapheme
			leftOffset = starts[gi]
			rightOffset = starts[gi+1]
		}

		steps = append(steps, CaretStep{
			X:       x,
			Advance: perGrapheme,
			Left: CaretSide{
				Position:  TextPosition{Offset: leftOffset, Affinity: leftAffinity},
				LayoutRun: runIdx,
				Glyph:     c.GlyphOffset,
				Direction: direction,
			},
			Right: CaretSide{
				Position:  TextPosition{Offset: rightOffset, Affinity: rightAffinity},
				LayoutRun: runIdx,
				Glyph:     c.GlyphOffset,
				Direction: direction,
			},
		})
	}
	return steps
}

// graphemeStartsWithin returns every grapheme-start offset in [start,end]
// inclusive of both ends, so the returned slice always has at least 2
// entries and len(result)-1 grapheme slots between them.
func graphemeStartsWithin(props *textprops.Table, start, end int) []int {
	starts := []int{start}
	for i := start + 1; i < end; i++ {
		if i < len(props.Entries) && props.Entries[i].GraphemeBreak {
			starts = append(starts, i)
		}
	}
	starts = append(starts, end)
	return starts
}

func clusterLeftX(l *layout.Layout, c layout.Cluster) float32 {
	if c.GlyphCount == 0 {
		return 0
	}
	left := l.Glyphs[c.GlyphOffset].X
	for gi := c.GlyphOffset + 1; gi < c.GlyphOffset+c.GlyphCount; gi++ {
		if l.Glyphs[gi].X < left {
			left = l.Glyphs[gi].X
		}
	}
	return left
}

// HitTest resolves an (x) coordinate on line to a TextPosition, per spec
// 4.6: before the line's visual-left edge snaps to start-of-line (for
// LTR-dominant lines) or end-of-line (for RTL), after the visual-right
// edge snaps the other way, and a coordinate inside the line resolves
// via CaretIterator, accepting the step whose advance midpoint contains
// x. CaretMovement-only callers get the trailing-edge-of-a-control-at-
// EOL snap to trailing affinity that spec 4.6 documents; selection
// movement does not.
func HitTest(l *layout.Layout, props *textprops.Table, line *layout.Line, x float32, movement Movement) TextPosition {
	lineRTL := lineIsRTL(l, line)

	if x < line.Bounds.Left {
		if lineRTL {
			return TextPosition{Offset: line.Text.End, Affinity: AffinityEndOfLine}
		}
		return TextPosition{Offset: line.Text.Start, Affinity: AffinityStartOfLine}
	}
	if x > line.Bounds.Right {
		if lineRTL {
			return TextPosition{Offset: line.Text.Start, Affinity: AffinityStartOfLine}
		}
		return TextPosition{Offset: line.Text.End, Affinity: AffinityEndOfLine}
	}

	steps := CaretIterator(l, props, line)
	for _, step := range steps {
		mid := step.X + step.Advance/2
		if x <= mid {
			pos := step.Left.Position
			if movement == MovementCaret && pos.Offset < len(props.Entries) && props.Entries[pos.Offset].Control && pos.Offset == line.Text.End-1 {
				pos.Affinity = AffinityTrailing
			}
			return pos
		}
	}
	if len(steps) > 0 {
		return steps[len(steps)-1].Right.Position
	}
	return TextPosition{Offset: line.Text.Start, Affinity: AffinityStartOfLine}
}

// PositionToX is the reverse of HitTest: it resolves a TextPosition back
// to its X coordinate on line, the query spec 4.6 names as part of
// caret_iterator being "the single primitive behind ... caret rendering
// ... and external caret-advancement" — callers advancing a caret
// programmatically (e.g. extending a selection by word) need to know
// where the resulting position actually renders, not just its offset.
// The bool result is false when pos does not land on any emitted step
// (an out-of-range offset, or an affinity that never occurs on line).
func PositionToX(l *layout.Layout, props *textprops.Table, line *layout.Line, pos TextPosition) (float32, bool) {
	switch pos.Affinity {
	case AffinityStartOfLine:
		if lineIsRTL(l, line) {
			return line.Bounds.Right, true
		}
		return line.Bounds.Left, true
	case AffinityEndOfLine:
		if lineIsRTL(l, line) {
			return line.Bounds.Left, true
		}
		return line.Bounds.Right, true
	}

	for _, step := range CaretIterator(l, props, line) {
		if step.Left.Position.Offset == pos.Offset && step.Left.Position.Affinity == pos.Affinity {
			return step.X, true
		}
		if step.Right.Position.Offset == pos.Offset && step.Right.Position.Affinity == pos.Affinity {
			return step.X + step.Advance, true
		}
	}
	return 0, false
}

func lineIsRTL(l *layout.Layout, line *layout.Line) bool {
	if line.LayoutRuns.Empty() {
		return false
	}
	return l.LayoutRuns[line.LayoutRuns.Start].Direction == 1
}

// SelectionBounds walks line's clusters in visual order and accumulates
// contiguous selected graphemes (those whose offset falls in
// [startOffset,endOffset)) into rectangles, flushing whenever the
// visual chain breaks (a gap) or direction reverses, per spec 4.6.
func SelectionBounds(l *layout.Layout, props *textprops.Table, line *layout.Line, startOffset, endOffset int) []layout.Rect {
	if startOffset > endOffset {
		startOffset, endOffset = endOffset, startOffset
	}
	steps := CaretIterator(l, props, line)

	var rects []layout.Rect
	var cur layout.Rect
	open := false
	var lastDirection uint8
	var lastVisualEnd float32 = -1

	flush := func() {
		if open {
			rects = append(rects, cur)
			open = false
		}
	}

	for _, step := range steps {
		selected := step.Left.Position.Offset >= startOffset && step.Left.Position.Offset < endOffset
		if !selected {
			flush()
			continue
		}
		r := layout.Rect{Left: step.X, Right: step.X + step.Advance}
		chainBroken := open && (step.Direction() != lastDirection || (lastVisualEnd >= 0 && r.Left != lastVisualEnd && r.Right != lastVisualEnd))
		if chainBroken {
			flush()
		}
		if !open {
			cur = r
			open = true
		} else {
			cur = cur.Union(r)
		}
		lastDirection = step.Direction()
		lastVisualEnd = r.Right
	}
	flush()
	return rects
}

func (s CaretStep) Direction() uint8 { return s.Left.Direction }
