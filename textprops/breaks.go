package textprops

import (
	"github.com/go-text/typesetting/segmenter"
)

// markGraphemeBreaks sets GraphemeBreak true at the start offset of every
// grapheme cluster boundary, using the real Unicode grapheme segmenter
// rather than a naive per-codepoint assumption.
//
// Ported from: skia/shaper/harfbuzz.go's getLineBreakPoints, generalized
// from LineIterator to GraphemeIterator.
func markGraphemeBreaks(t *Table) {
	if len(t.Text) == 0 {
		return
	}
	var seg segmenter.Segmenter
	seg.Init(t.Text)
	iter := seg.GraphemeIterator()
	for iter.Next() {
		g := iter.Grapheme()
		if g.Offset >= 0 && g.Offset < len(t.Entries) {
			t.Entries[g.Offset].GraphemeBreak = true
		}
	}
}

// markWordBreaks sets WordBreak true at the start offset of every word
// segment, the same iteration shape as markGraphemeBreaks but over
// WordIterator.
func markWordBreaks(t *Table) {
	if len(t.Text) == 0 {
		return
	}
	var seg segmenter.Segmenter
	seg.Init(t.Text)
	iter := seg.WordIterator()
	for iter.Next() {
		w := iter.Word()
		if w.Offset >= 0 && w.Offset < len(t.Entries) {
			t.Entries[w.Offset].WordBreak = true
		}
	}
}

// markLineBreaks sets each entry's LineBreak to Allow at the rune
// immediately following a line-break opportunity reported by
// LineIterator, and upgrades the opportunity to Must when the segment
// ends in a hard line-break codepoint (paragraph separators, newlines,
// vertical tab / form feed, NEL) — the segmenter package does not
// distinguish mandatory from optional breaks in its public Line result,
// so the distinction is recovered here from the terminating codepoint.
func markLineBreaks(t *Table) {
	if len(t.Text) == 0 {
		return
	}
	var seg segmenter.Segmenter
	seg.Init(t.Text)
	iter := seg.LineIterator()
	for iter.Next() {
		line := iter.Line()
		end := line.Offset + len(line.Text)
		if end <= 0 || end > len(t.Entries) {
			continue
		}
		kind := BreakAllow
		if len(line.Text) > 0 && isHardBreakRune(line.Text[len(line.Text)-1]) {
			kind = BreakMust
		}
		if end == len(t.Entries) {
			// A break "after the last codepoint" has no following entry
			// to mark; record it against the last entry instead so
			// callers scanning entries still see the line-ending signal.
			t.Entries[end-1].LineBreak = kind
			continue
		}
		t.Entries[end].LineBreak = kind
	}
}

func isHardBreakRune(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x85, 0x2028, 0x2029:
		return true
	default:
		return false
	}
}

// markTabBreaks implements spec 4.2's "a TAB codepoint forces an
// allow-break before itself, in addition to whatever the language
// breaker says".
func markTabBreaks(t *Table) {
	for i, e := range t.Entries {
		if e.Codepoint == '\t' && e.LineBreak == BreakNone {
			t.Entries[i].LineBreak = BreakAllow
		}
	}
}
