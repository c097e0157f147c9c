// Package linelayout implements the Line Layouter of spec 4.5: word/char
// wrapping, UBA visual reordering, list-marker text construction, line
// metrics/baseline placement, overflow/truncation, alignment, and
// decoration grouping. It consumes a Layout already populated by the
// Itemizer and Shaper Driver (ShapingRuns/Glyphs/Clusters) and appends
// the finalized LayoutRuns/Lines/Decorations.
//
// Ported from: skia/shaper/harfbuzz.go's emitLine/reorderVisual driving
// shape, generalized from a single shape-and-emit pass into a separate
// post-shaping pass over an already-shaped Layout.
package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/textprops"
)

// Options configures a single Build call, gathered from the resolved
// attribute set driving the layout (spec 4.5 reads these from
// KindWrapMode, KindOverflowMode, KindHorizontalAlign, KindLineHeight).
type Options struct {
	MaxWidth      float32
	MaxHeight     float32
	WrapMode      WrapMode
	Overflow      OverflowMode
	Align         HorizontalAlign
	LineHeightMode LineHeightMode
	LineHeight    float32
	FontSize      float32
	ObjectAlign   int
	IgnoreMustBreaks bool
	EllipsisWidth float32
	Decoration    attribute.DecorationValue
}

// Build runs the full Line Layouter pipeline over l, which must already
// have its ShapingRuns/Glyphs/Clusters populated by the Itemizer and
// Shaper Driver. It appends LayoutRuns/Lines/Decorations to l and stops
// adding further lines once MaxHeight is exceeded (if MaxHeight > 0).
func Build(l *layout.Layout, props *textprops.Table, fonts fontcollection.Collection, opts Options) {
	spans := BreakLines(l, props, opts.MaxWidth, opts.WrapMode, opts.IgnoreMustBreaks)

	var advanceY float32
	for idx, span := range spans {
		if opts.MaxHeight > 0 && advanceY > opts.MaxHeight {
			break
		}
		line := buildOneLine(l, span, props, fonts, opts, idx == len(spans)-1)
		line.Bounds.Top = advanceY
		line.Bounds.Bottom = advanceY + line.Ascender + line.Descender
		line.CullingBounds = line.Bounds
		advanceY = line.Bounds.Bottom

		l.Lines = append(l.Lines, line)
	}
	l.AdvanceY = advanceY
}

func buildOneLine(l *layout.Layout, span LineSpan, props *textprops.Table, fonts fontcollection.Collection, opts Options, isLast bool) layout.Line {
	runStart := len(l.LayoutRuns)

	levels := make([]uint8, 0, span.RunEnd-span.RunStart)
	for ri := span.RunStart; ri < span.RunEnd; ri++ {
		levels = append(levels, l.ShapingRuns[ri].BidiLevel)
	}
	order := reorderVisual(levels)

	var lineWidth float32
	for _, logical := range order {
		ri := span.RunStart + logical
		run := l.ShapingRuns[ri]
		clusterRange := runClusterRangeWithinText(l, run.Text.Start, run.Text.End, span.TextStart, span.TextEnd)
		if clusterRange.Empty() {
			continue
		}
		glyphRange := glyphRangeForClusters(l, clusterRange)

		shiftGlyphsBy(l, glyphRange, lineWidth)
		bounds := boundsForGlyphs(l, glyphRange, lineWidth)
		layoutRun := layout.LayoutRun{
			ShapingRunIndex: ri,
			Direction:       directionBit(run.RTL),
			Script:          run.Script,
			BidiLevel:       run.BidiLevel,
			Clusters:        clusterRange,
			Glyphs:          glyphRange,
			Font:            run.Font,
			ContentRun:      run.ContentRun,
			Bounds:          bounds,
			IsObject:        isObjectRun(run, l),
		}
		l.LayoutRuns = append(l.LayoutRuns, layoutRun)
		lineWidth += bounds.Width()
	}
	runEnd := len(l.LayoutRuns)

	ascender, descender := FinalizeLineMetrics(l, runStart, runEnd, fonts, opts.FontSize, opts.LineHeightMode, opts.LineHeight)
	PositionRunBaselines(l, runStart, runEnd, ascender, descender, opts.ObjectAlign)

	line := layout.Line{
		LayoutRuns: layout.Range{Start: runStart, End: runEnd},
		Text:       layout.Range{Start: span.TextStart, End: span.TextEnd},
		Ascender:   ascender,
		Descender:  descender,
		Baseline:   ascender,
	}
	if runEnd > runStart {
		line.Glyphs = layout.Range{Start: l.LayoutRuns[runStart].Glyphs.Start, End: l.LayoutRuns[runEnd-1].Glyphs.End}
	}
	line.LastGraphemeOffset = lastGraphemeOffset(props, span.TextStart, span.TextEnd)

	Truncate(l, &line, opts.MaxWidth, opts.Overflow, opts.EllipsisWidth)
	AlignLine(l, &line, lineWidth, opts.MaxWidth, opts.Align, isLast)

	if len(opts.Decoration.Positions) > 0 {
		decos := BuildDecorations(l, &line, line.LayoutRuns.Start, line.LayoutRuns.End, fonts, opts.FontSize, opts.Decoration)
		start := len(l.Decorations)
		l.Decorations = append(l.Decorations, decos...)
		line.Decorations = layout.Range{Start: start, End: len(l.Decorations)}
	}

	return line
}

func directionBit(rtl bool) uint8 {
	if rtl {
		return 1
	}
	return 0
}

func isObjectRun(run layout.ShapingRun, l *layout.Layout) bool {
	if run.ContentRun < 0 || run.ContentRun >= len(l.ContentRuns) {
		return false
	}
	t := l.ContentRuns[run.ContentRun].Type
	return t == layout.ContentObject || t == layout.ContentIcon
}

// runClusterRangeWithinText narrows a ShapingRun's clusters to those
// that fall within [textStart,textEnd), since a line may only cover a
// prefix or suffix of a ShapingRun when a break lands mid-run.
func runClusterRangeWithinText(l *layout.Layout, runStart, runEnd, textStart, textEnd int) layout.Range {
	lo := runStart
	if textStart > lo {
		lo = textStart
	}
	hi := runEnd
	if textEnd < hi {
		hi = textEnd
	}
	if lo >= hi {
		return layout.Range{}
	}
	start, end := -1, -1
	for i, c := range l.Clusters {
		if c.TextOffset >= lo && c.TextOffset < hi {
			if start == -1 {
				start = i
			}
			end = i + 1
		}
	}
	if start == -1 {
		return layout.Range{}
	}
	return layout.Range{Start: start, End: end}
}

func glyphRangeForClusters(l *layout.Layout, clusterRange layout.Range) layout.Range {
	if clusterRange.Empty() {
		return layout.Range{}
	}
	start := l.Clusters[clusterRange.Start].GlyphOffset
	last := l.Clusters[clusterRange.End-1]
	end := last.GlyphOffset + last.GlyphCount
	return layout.Range{Start: start, End: end}
}

func boundsForGlyphs(l *layout.Layout, glyphRange layout.Range, xOffset float32) layout.Rect {
	var width float32
	for gi := glyphRange.Start; gi < glyphRange.End; gi++ {
		width += l.Glyphs[gi].AdvanceX
	}
	return layout.Rect{Left: xOffset, Right: xOffset + width}
}

// shiftGlyphsBy translates a shaper-emitted run's glyphs from their
// run-local X origin (shapedriver always starts each run at X=0) to
// their cumulative position on the line.
func shiftGlyphsBy(l *layout.Layout, glyphRange layout.Range, dx float32) {
	for gi := glyphRange.Start; gi < glyphRange.End; gi++ {
		l.Glyphs[gi].X += dx
	}
}

func lastGraphemeOffset(props *textprops.Table, start, end int) int {
	for i := end - 1; i >= start; i-- {
		if i < len(props.Entries) && props.Entries[i].GraphemeBreak {
			return i
		}
	}
	return start
}
