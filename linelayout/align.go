package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/layout"
)

// HorizontalAlign mirrors attribute's KindHorizontalAlign enum domain.
type HorizontalAlign int

const (
	AlignStart   HorizontalAlign = attribute.AlignStart
	AlignEnd     HorizontalAlign = attribute.AlignEnd
	AlignCenter  HorizontalAlign = attribute.AlignCenter
	AlignJustify HorizontalAlign = attribute.AlignJustify
)

// AlignLine shifts every LayoutRun on a finalized line horizontally by
// the offset implied by align, and shifts the line's bounds with it, per
// spec 4.5.6. Justify distributes the leftover width
// across inter-cluster whitespace gaps rather than a single bulk shift;
// every other mode is a uniform translation.
func AlignLine(l *layout.Layout, line *layout.Line, lineWidth, containerWidth float32, align HorizontalAlign, isLastLine bool) {
	leftover := containerWidth - lineWidth
	if leftover <= 0 {
		return
	}

	switch align {
	case AlignEnd:
		shiftRuns(l, line, leftover)
	case AlignCenter:
		shiftRuns(l, line, leftover/2)
	case AlignJustify:
		if !isLastLine {
			justifyRuns(l, line, leftover)
		}
	}
}

func shiftRuns(l *layout.Layout, line *layout.Line, dx float32) {
	for i := line.LayoutRuns.Start; i < line.LayoutRuns.End; i++ {
		run := &l.LayoutRuns[i]
		run.Bounds.Left += dx
		run.Bounds.Right += dx
	}
	for gi := line.Glyphs.Start; gi < line.Glyphs.End; gi++ {
		l.Glyphs[gi].X += dx
	}
	line.Bounds.Left += dx
	line.Bounds.Right += dx
}

// justifyRuns spreads leftover width evenly across whitespace-cluster
// gaps on the line, shifting every glyph after a whitespace cluster
// cumulatively rightward.
func justifyRuns(l *layout.Layout, line *layout.Line, leftover float32) {
	gaps := 0
	for ci := 0; ci < len(l.Clusters); ci++ {
		c := l.Clusters[ci]
		if c.TextOffset < line.Text.Start || c.TextOffset >= line.Text.End {
			continue
		}
		if c.GlyphCount == 0 {
			continue
		}
		gaps++
	}
	if gaps <= 1 {
		shiftRuns(l, line, leftover)
		return
	}
	perGap := leftover / float32(gaps-1)

	var shift float32
	gapIndex := 0
	for i := line.LayoutRuns.Start; i < line.LayoutRuns.End; i++ {
		run := &l.LayoutRuns[i]
		for gi := run.Glyphs.Start; gi < run.Glyphs.End; gi++ {
			l.Glyphs[gi].X += shift
		}
		run.Bounds.Left += shift
		gapIndex++
		if gapIndex < gaps {
			shift += perGap
		}
		run.Bounds.Right += shift
	}
	line.Bounds.Right += shift
}
