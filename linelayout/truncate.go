package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/layout"
)

// OverflowMode mirrors attribute's KindOverflowMode enum domain.
type OverflowMode int

const (
	OverflowClip     OverflowMode = attribute.OverflowClip
	OverflowEllipsis OverflowMode = attribute.OverflowEllipsis
)

// Truncate walks a finalized line's LayoutRuns in visual order,
// dropping whole runs once their cumulative width exceeds maxWidth, per
// spec 4.5.5. A run that straddles the limit is dropped entirely; runs
// are not shortened cluster by cluster. CLIP simply marks
// the line truncated and drops the overflowing runs outright; ELLIPSIS
// reserves space for an ellipsis glyph sequence and drops whatever does
// not fit alongside it. Truncation is never an error (spec 7) — it is
// reported purely via Line.Truncated.
func Truncate(l *layout.Layout, line *layout.Line, maxWidth float32, mode OverflowMode, ellipsisWidth float32) {
	if maxWidth <= 0 {
		return
	}
	budget := maxWidth
	if mode == OverflowEllipsis {
		budget -= ellipsisWidth
	}
	if budget < 0 {
		budget = 0
	}

	var width float32
	keepEnd := line.LayoutRuns.Start
	for i := line.LayoutRuns.Start; i < line.LayoutRuns.End; i++ {
		run := l.LayoutRuns[i]
		w := run.Bounds.Width()
		if width+w > budget {
			break
		}
		width += w
		keepEnd = i + 1
	}

	if keepEnd == line.LayoutRuns.End {
		return
	}

	line.Truncated = true
	line.LayoutRuns.End = keepEnd
	if keepEnd > line.LayoutRuns.Start {
		lastRun := l.LayoutRuns[keepEnd-1]
		if lastRun.Clusters.End > 0 && lastRun.Clusters.End <= len(l.Clusters) {
			c := l.Clusters[lastRun.Clusters.End-1]
			line.Text.End = c.TextOffset + c.TextCount
			line.Glyphs.End = c.GlyphOffset + c.GlyphCount
		}
	} else {
		line.Text.End = line.Text.Start
		line.Glyphs.End = line.Glyphs.Start
	}
}
