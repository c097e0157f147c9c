package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/layout"
)

// LineHeightMode mirrors attribute's KindLineHeight enum domain.
type LineHeightMode int

const (
	LineHeightNormal           LineHeightMode = attribute.LineHeightNormal
	LineHeightMetricsRelative  LineHeightMode = attribute.LineHeightMetricsRelative
	LineHeightFontSizeRelative LineHeightMode = attribute.LineHeightFontSizeRelative
	LineHeightAbsolute         LineHeightMode = attribute.LineHeightAbsolute
)

// FinalizeLineMetrics computes a Line's Ascender/Descender/Baseline from
// the per-run font metrics of every LayoutRun it contains, per spec
// 4.5.4: the line's ascender is the maximum ascender across its runs,
// the descender the maximum descender, and each object/icon run
// contributes its own height to the ascender instead of any font metric.
func FinalizeLineMetrics(l *layout.Layout, lineRunStart, lineRunEnd int, fonts fontcollection.Collection, fontSize float32, mode LineHeightMode, lineHeightValue float32) (ascender, descender float32) {
	for i := lineRunStart; i < lineRunEnd; i++ {
		run := l.LayoutRuns[i]
		if run.IsObject {
			h := run.Bounds.Height()
			if h > ascender {
				ascender = h
			}
			continue
		}
		m := fonts.FontMetrics(run.Font, fontSize)
		if m.Ascender > ascender {
			ascender = m.Ascender
		}
		if m.Descender > descender {
			descender = m.Descender
		}
	}

	switch mode {
	case LineHeightNormal:
		// Natural sum of max ascender/descender already computed above.
	case LineHeightMetricsRelative:
		total := (ascender + descender) * lineHeightValue
		extra := total - (ascender + descender)
		if extra > 0 {
			ascender += extra / 2
			descender += extra / 2
		}
	case LineHeightFontSizeRelative:
		total := fontSize * lineHeightValue
		extra := total - (ascender + descender)
		if extra > 0 {
			ascender += extra / 2
			descender += extra / 2
		}
	case LineHeightAbsolute:
		extra := lineHeightValue - (ascender + descender)
		if extra > 0 {
			ascender += extra / 2
			descender += extra / 2
		}
	}
	return ascender, descender
}

// PositionRunBaselines assigns ReferenceBaseline to every LayoutRun on a
// finalized line: text runs sit on the dominant (alphabetic) baseline at
// Y=0, and object/icon runs are shifted per the configured
// object-align-ref policy (spec 4.5.4): aligned to the line's ascender
// (before), its descender (after), or whichever side the object's own
// height fits without exceeding the line box.
func PositionRunBaselines(l *layout.Layout, lineRunStart, lineRunEnd int, ascender, descender float32, objectAlign int) {
	for i := lineRunStart; i < lineRunEnd; i++ {
		run := &l.LayoutRuns[i]
		if !run.IsObject {
			run.ReferenceBaseline = 0
			continue
		}
		h := run.Bounds.Height()
		switch objectAlign {
		case attribute.ObjectAlignBefore:
			run.ReferenceBaseline = -ascender
		case attribute.ObjectAlignAfter:
			run.ReferenceBaseline = descender - h
		case attribute.ObjectAlignBeforeOrAfter:
			if h <= ascender {
				run.ReferenceBaseline = -ascender
			} else {
				run.ReferenceBaseline = descender - h
			}
		default: // ObjectAlignAfterOrBefore
			if h <= descender {
				run.ReferenceBaseline = descender - h
			} else {
				run.ReferenceBaseline = -ascender
			}
		}
	}
}
