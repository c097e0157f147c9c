// Package textprops computes, for each codepoint of an input buffer, the
// per-codepoint properties the Itemizer and Line Layouter consume:
// script, bidi class/resolved direction, grapheme/word/line-break
// opportunities, and the whitespace/control/punctuation/emoji flags.
//
// Ported from: skia-source/modules/skunicode/include/SkUnicode.h (the
// SkUnicode contract the teacher's paragraph layer consumed), rebuilt
// against real Unicode data via go-text/typesetting/segmenter and
// golang.org/x/text/unicode/bidi instead of the teacher's own
// impl/unicode_impl.go heuristic (which the teacher itself does not ship
// in this module — see DESIGN.md).
package textprops

import (
	"unicode"

	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"
)

// BreakKind classifies a line-break opportunity at a codepoint boundary.
type BreakKind uint8

const (
	BreakNone BreakKind = iota
	BreakAllow
	BreakMust
)

// Entry holds every per-codepoint property the downstream layers need.
type Entry struct {
	Codepoint rune

	Script language.Script

	// BidiClass is the codepoint's Unicode bidi character class.
	BidiClass bidi.Class
	// RTL is true when the codepoint's own bidi class is a right-to-left
	// class. It is not the result of paragraph-level bidi resolution;
	// the Itemizer's splitBidi performs the actual run splitting.
	RTL bool

	GraphemeBreak bool
	WordBreak     bool
	LineBreak     BreakKind

	Whitespace bool
	Control    bool
	Punctuation bool
	Emoji      bool
}

// Table is the parallel-array property table for a codepoint buffer; its
// length always equals len(Text) per spec 3's Codepoint-buffer invariant.
type Table struct {
	Text    []rune
	Entries []Entry
}

// Build computes the full property table for text. lang (BCP-47) is
// accepted but not read: scripts come from the codepoints alone, and
// Build does not call ApplyLanguageBreaker. The Itemizer applies its own
// font/script policy on top of this.
func Build(text []rune, lang string) *Table {
	t := &Table{
		Text:    text,
		Entries: make([]Entry, len(text)),
	}
	for i, r := range text {
		e := &t.Entries[i]
		e.Codepoint = r
		e.Script = language.LookupScript(r)
		e.BidiClass = bidi.LookupRune(r).Class()
		e.RTL = isRTLClass(e.BidiClass)
		e.Whitespace = unicode.IsSpace(r)
		e.Control = unicode.IsControl(r)
		e.Punctuation = unicode.IsPunct(r) || unicode.IsSymbol(r)
		e.Emoji = isEmoji(r)
	}

	resolveCommonScriptRuns(t.Entries)
	markGraphemeBreaks(t)
	markWordBreaks(t)
	markLineBreaks(t)
	markTabBreaks(t)

	return t
}

func isRTLClass(c bidi.Class) bool {
	switch c {
	case bidi.R, bidi.AL, bidi.RLE, bidi.RLO, bidi.RLI:
		return true
	default:
		return false
	}
}

// resolveCommonScriptRuns implements spec 4.2's script edge policy: a
// leading run of Common/Inherited inherits the first subsequent strong
// script (falling back to Latin if none), and any later Common/Inherited
// codepoint inherits the preceding resolved script.
func resolveCommonScriptRuns(entries []Entry) {
	firstStrong := language.Latin
	for _, e := range entries {
		if e.Script != language.Common && e.Script != language.Inherited && e.Script != language.Unknown {
			firstStrong = e.Script
			break
		}
	}
	prev := firstStrong
	for i := range entries {
		s := entries[i].Script
		if s == language.Common || s == language.Inherited || s == language.Unknown {
			entries[i].Script = prev
		} else {
			prev = s
		}
	}
}
