package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/layout"
)

// BuildDecorations groups consecutive LayoutRuns on a line that share a
// content run and carry a decoration attribute into Decoration records,
// per spec 4.5.7: decorations span the full width of their content-run
// group, not per-glyph. Their Y offset and thickness depend on position
// (under/over/through/bottom) and the font metrics of the group's first
// run; the pattern offset is the group's visual start.
func BuildDecorations(l *layout.Layout, line *layout.Line, lineRunStart, lineRunEnd int, fonts fontcollection.Collection, fontSize float32, deco attribute.DecorationValue) []layout.Decoration {
	if len(deco.Positions) == 0 {
		return nil
	}

	var out []layout.Decoration
	i := lineRunStart
	for i < lineRunEnd {
		run := l.LayoutRuns[i]
		cr := run.ContentRun
		j := i
		var groupBounds layout.Rect
		for j < lineRunEnd && l.LayoutRuns[j].ContentRun == cr {
			groupBounds = groupBounds.Union(l.LayoutRuns[j].Bounds)
			j++
		}

		m := fonts.FontMetrics(run.Font, fontSize)
		for _, pos := range deco.Positions {
			offsetY, thickness := decorationGeometry(pos, m, deco.Thickness)
			out = append(out, layout.Decoration{
				OffsetX:       groupBounds.Left,
				OffsetY:       offsetY,
				Length:        groupBounds.Width(),
				PatternOffset: groupBounds.Left,
				Thickness:     thickness,
				Color:         deco.Color,
				Position:      pos,
				Style:         deco.Style,
				LayoutRun:     i,
			})
		}
		i = j
	}
	return out
}

func decorationGeometry(pos attribute.DecorationPosition, m fontcollection.Metrics, override float32) (offsetY, thickness float32) {
	thickness = m.UnderlineSize
	if override > 0 {
		thickness = override
	}
	if thickness <= 0 {
		thickness = 1
	}
	switch pos {
	case attribute.DecorationUnder:
		offsetY = m.UnderlineOffset
	case attribute.DecorationOver:
		offsetY = -m.Ascender
	case attribute.DecorationThrough:
		offsetY = m.StrikeoutOffset
		if m.StrikeoutSize > 0 {
			thickness = m.StrikeoutSize
			if override > 0 {
				thickness = override
			}
		}
	case attribute.DecorationBottom:
		offsetY = m.Descender
	}
	return offsetY, thickness
}
