package linelayout

import (
	"github.com/textkit/richlayout/attribute"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/textprops"
)

// wrapState accumulates width while walking clusters in logical order,
// tracking trailing whitespace width separately per spec 4.5.1's
// run_width/run_end_whitespace_width distinction: trailing whitespace on
// a line does not count against the line's available width, since it is
// trimmed at paint time. lastAllowBreakWidth records the line's
// accumulated width at the most recent break opportunity, so that when
// the line later overflows, the clusters laid down after that point can
// be carried forward onto the next line at their already-known width
// instead of being re-measured.
type wrapState struct {
	width               float32
	trailingWhitespace  float32
	lastAllowBreakText  int
	lastAllowBreakWidth float32
	hasAllowBreak       bool
}

// clusterAdvance sums the advance of every glyph in a cluster.
func clusterAdvance(l *layout.Layout, c layout.Cluster) float32 {
	var total float32
	for gi := c.GlyphOffset; gi < c.GlyphOffset+c.GlyphCount; gi++ {
		total += l.Glyphs[gi].AdvanceX
	}
	return total
}

// BreakLines partitions l's ShapingRuns into lines, honoring the
// requested wrap mode, available width, and hard line breaks recorded in
// props, per spec 4.5.1. It returns, for each produced line, the
// [start,end) ShapingRun index range and [start,end) text range the
// line covers; line finalization (metrics, reordering, alignment,
// decorations) happens in later passes.
func BreakLines(l *layout.Layout, props *textprops.Table, maxWidth float32, wrapMode WrapMode, ignoreMustBreaks bool) []LineSpan {
	if len(l.ShapingRuns) == 0 {
		return []LineSpan{{}}
	}

	var lines []LineSpan
	var cur LineSpan
	cur.RunStart = 0
	cur.TextStart = l.ShapingRuns[0].Text.Start

	state := wrapState{}

	flush := func(textEnd int) {
		// The line takes every ShapingRun that starts before textEnd; a run
		// that the break splits also opens the next line.
		runEnd := cur.RunStart
		for runEnd < len(l.ShapingRuns) && l.ShapingRuns[runEnd].Text.Start < textEnd {
			runEnd++
		}
		next := runEnd
		for next > cur.RunStart && l.ShapingRuns[next-1].Text.End > textEnd {
			next--
		}
		cur.RunEnd = runEnd
		cur.TextEnd = textEnd
		lines = append(lines, cur)
		cur = LineSpan{RunStart: next, TextStart: textEnd}
		state = wrapState{}
	}

	for ri := range l.ShapingRuns {
		clusterRange := runClusterRange(l, ri)
		for ci := clusterRange.Start; ci < clusterRange.End; ci++ {
			c := l.Clusters[ci]
			adv := clusterAdvance(l, c)
			isWhitespace := c.TextOffset < len(props.Entries) && props.Entries[c.TextOffset].Whitespace

			mustBreakHere := !ignoreMustBreaks && c.TextOffset < len(props.Entries) &&
				props.Entries[c.TextOffset].LineBreak == textprops.BreakMust && c.TextOffset > cur.TextStart
			if mustBreakHere {
				flush(c.TextOffset)
				state.width += adv
				if isWhitespace {
					state.trailingWhitespace += adv
				} else {
					state.trailingWhitespace = 0
				}
				continue
			}

			projected := state.width + adv
			exceeds := wrapMode != WrapNone && maxWidth > 0 && projected-state.trailingWhitespaceIfTrailing(isWhitespace) > maxWidth

			if exceeds && state.width > 0 {
				if state.hasAllowBreak {
					carryOver := state.width - state.lastAllowBreakWidth
					flush(state.lastAllowBreakText)
					state.width = carryOver + adv
					if isWhitespace {
						state.trailingWhitespace = adv
					}
				} else if wrapMode == WrapWordChar {
					// WRAP_WORD_CHAR fallback: a single unbreakable token
					// exceeds the line width, so break at the character
					// boundary instead of overflowing indefinitely.
					flush(c.TextOffset)
					state.width = adv
				} else {
					state.width += adv
				}
			} else {
				state.width += adv
			}

			if isWhitespace {
				state.trailingWhitespace += adv
			} else {
				state.trailingWhitespace = 0
			}

			if c.TextOffset+c.TextCount <= len(props.Entries) {
				end := c.TextOffset + c.TextCount
				if end < len(props.Entries) && props.Entries[end].LineBreak == textprops.BreakAllow {
					state.hasAllowBreak = true
					state.lastAllowBreakText = end
					state.lastAllowBreakWidth = state.width
				}
			}
		}
	}

	flush(len(l.Text))
	return lines
}

func (s wrapState) trailingWhitespaceIfTrailing(isWhitespace bool) float32 {
	if isWhitespace {
		return s.trailingWhitespace
	}
	return 0
}

// runClusterRange finds the cluster index range shaped for ShapingRun
// index ri by scanning l.Clusters for clusters whose text offset lies in
// the run's text range.
// It relies on clusters being appended to l.Clusters in ShapingRun
// order, which shapedriver.Driver.ShapeRun guarantees.
func runClusterRange(l *layout.Layout, ri int) layout.Range {
	run := l.ShapingRuns[ri]
	start, end := -1, -1
	for i, c := range l.Clusters {
		if c.TextOffset >= run.Text.Start && c.TextOffset < run.Text.End {
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

// WrapMode is the resolved value of attribute.KindWrapMode, re-declared
// here as a plain int type so linelayout's exported signatures don't
// force every caller to import attribute just to pass a wrap mode.
type WrapMode int

const (
	WrapNone     WrapMode = attribute.WrapNone
	WrapWord     WrapMode = attribute.WrapWord
	WrapWordChar WrapMode = attribute.WrapWordChar
)

// LineSpan is a line's [RunStart,RunEnd) ShapingRun range and
// [TextStart,TextEnd) text range before visual reordering/finalization.
type LineSpan struct {
	RunStart, RunEnd   int
	TextStart, TextEnd int
}
