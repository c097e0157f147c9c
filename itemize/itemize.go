// Package itemize implements the Itemizer of spec 4.3: it walks the
// copied text buffer and its content runs, splitting them first by
// paragraph, then by bidi level, then by content run boundary, then by
// script and emoji-ness (both already resolved per-codepoint in the
// text property table), and finally by font coverage — emitting the
// ShapingRun sequence the Shaper Driver consumes.
//
// Ported from: skia/shaper/harfbuzz.go's shapeRunCollect driving logic
// and _examples/other_examples/29aeb523 (gio's shaperImpl.splitBidi /
// splitByScript), generalized from a single-direction-per-call shaper
// wrapper into a standalone, font-collection-driven itemizer.
package itemize

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/textkit/richlayout/fontcollection"
	"github.com/textkit/richlayout/layout"
	"github.com/textkit/richlayout/skia/models"
	"github.com/textkit/richlayout/textprops"
)

// BaseDirection is the caller-supplied paragraph direction fallback used
// when a paragraph contains no strong-direction codepoint at all.
type BaseDirection int

const (
	BaseDirectionLTR BaseDirection = iota
	BaseDirectionRTL
)

// Options configures a single Itemize call.
type Options struct {
	Direction BaseDirection
	Language  string
	Family    string
	Weight    models.FontWeight
	Style     models.FontSlant
	Stretch   models.FontWidth
}

// Itemize produces the ShapingRun sequence for text, partitioned by the
// given content runs, per spec 4.3's 7-step algorithm.
func Itemize(text []rune, contentRuns []layout.ContentRun, props *textprops.Table, fonts fontcollection.Collection, opts Options) []layout.ShapingRun {
	if opts.Weight == 0 {
		opts.Weight = models.FontWeightNormal
	}
	if opts.Stretch == 0 {
		opts.Stretch = models.FontWidthNormal
	}
	var out []layout.ShapingRun

	for _, para := range props.Paragraphs() {
		bidiRuns := splitBidi(text, para[0], para[1], opts.Direction)
		for _, br := range bidiRuns {
			contentSplit := splitByContentRun(br, contentRuns)
			for _, cr := range contentSplit {
				scriptSplit := splitByScriptAndEmoji(cr, props)
				for _, sr := range scriptSplit {
					out = append(out, splitByFont(sr, text, props, fonts, opts, contentRuns)...)
				}
			}
		}
	}
	return out
}

// bidiRun is an intermediate [start,end) span with a resolved direction,
// prior to content-run/script/font subdivision.
type bidiRun struct {
	start, end int
	rtl        bool
	level      uint8
}

// splitBidi resolves bidi runs within [start,end) using the Unicode
// bidirectional algorithm, following the same SetString/Order/Run
// pattern as the teacher's reference implementation of this step.
func splitBidi(text []rune, start, end int, base BaseDirection) []bidiRun {
	if start >= end {
		return nil
	}
	def := bidi.LeftToRight
	if base == BaseDirectionRTL {
		def = bidi.RightToLeft
	}

	var p bidi.Paragraph
	p.SetString(string(text[start:end]), bidi.DefaultDirection(def))
	ordering, err := p.Order()
	if err != nil || ordering.NumRuns() == 0 {
		return []bidiRun{{start: start, end: end, rtl: base == BaseDirectionRTL}}
	}

	runs := make([]bidiRun, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		s, e := run.Pos()
		rtl := run.Direction() == bidi.RightToLeft
		level := uint8(0)
		if rtl {
			level = 1
		}
		runs = append(runs, bidiRun{start: start + s, end: start + e + 1, rtl: rtl, level: level})
	}
	return runs
}

// splitByContentRun further divides a bidi run at every content-run
// boundary it crosses, so no emitted run ever spans two caller-supplied
// content runs (each of which may carry distinct attributes/object
// payloads).
func splitByContentRun(br bidiRun, contentRuns []layout.ContentRun) []bidiRunWithContent {
	var out []bidiRunWithContent
	pos := br.start
	for pos < br.end {
		ci := contentRunIndexAt(contentRuns, pos)
		if ci < 0 {
			pos++
			continue
		}
		segEnd := contentRuns[ci].Range.End
		if segEnd > br.end {
			segEnd = br.end
		}
		out = append(out, bidiRunWithContent{bidiRun: bidiRun{start: pos, end: segEnd, rtl: br.rtl, level: br.level}, contentRun: ci})
		pos = segEnd
	}
	return out
}

type bidiRunWithContent struct {
	bidiRun
	contentRun int
}

func contentRunIndexAt(contentRuns []layout.ContentRun, pos int) int {
	for i, cr := range contentRuns {
		if pos >= cr.Range.Start && pos < cr.Range.End {
			return i
		}
	}
	return -1
}

// splitByScriptAndEmoji further divides at every point where the text
// property table's already-resolved Script or Emoji flag changes,
// matching spec 4.3 steps 4-5. Script resolution itself (including the
// leading-common/inherited-script inheritance policy) already happened
// in textprops.Build, so this step is a plain linear scan for a change
// of value.
func splitByScriptAndEmoji(in bidiRunWithContent, props *textprops.Table) []bidiRunWithContent {
	if in.start >= in.end {
		return nil
	}
	var out []bidiRunWithContent
	segStart := in.start
	curScript := props.Entries[in.start].Script
	curEmoji := props.Entries[in.start].Emoji
	for i := in.start + 1; i < in.end; i++ {
		if props.Entries[i].Script != curScript || props.Entries[i].Emoji != curEmoji {
			out = append(out, bidiRunWithContent{bidiRun: bidiRun{start: segStart, end: i, rtl: in.rtl, level: in.level}, contentRun: in.contentRun})
			segStart = i
			curScript = props.Entries[i].Script
			curEmoji = props.Entries[i].Emoji
		}
	}
	out = append(out, bidiRunWithContent{bidiRun: bidiRun{start: segStart, end: in.end, rtl: in.rtl, level: in.level}, contentRun: in.contentRun})
	return out
}

// splitByFont performs the final, per-codepoint font resolution step: it
// walks the run looking up a font via fonts.MatchFonts/FontHasCodepoint,
// falling back to fonts.DefaultFont when no match covers a codepoint,
// and splits wherever the resolved font handle changes.
func splitByFont(in bidiRunWithContent, text []rune, props *textprops.Table, fonts fontcollection.Collection, opts Options, contentRuns []layout.ContentRun) []layout.ShapingRun {
	if in.start >= in.end {
		return nil
	}
	if contentRuns[in.contentRun].Type != layout.ContentUTF8 && contentRuns[in.contentRun].Type != layout.ContentUTF32 {
		return []layout.ShapingRun{{
			Text:       layout.Range{Start: in.start, End: in.end},
			BidiLevel:  in.level,
			RTL:        in.rtl,
			Script:     uint32(props.Entries[in.start].Script),
			Emoji:      false,
			ContentRun: in.contentRun,
			Font:       fonts.DefaultFont(opts.Family),
			Language:   opts.Language,
		}}
	}

	var out []layout.ShapingRun
	segStart := in.start
	segFont := resolveFont(text[in.start], props.Entries[in.start].Script, fonts, opts, 0, false)
	for i := in.start + 1; i < in.end; i++ {
		f := resolveFont(text[i], props.Entries[i].Script, fonts, opts, segFont, true)
		if f != segFont {
			out = append(out, layout.ShapingRun{
				Text:       layout.Range{Start: segStart, End: i},
				BidiLevel:  in.level,
				RTL:        in.rtl,
				Script:     uint32(props.Entries[segStart].Script),
				Emoji:      props.Entries[segStart].Emoji,
				ContentRun: in.contentRun,
				Font:       segFont,
				Language:   opts.Language,
			})
			segStart = i
			segFont = f
		}
	}
	out = append(out, layout.ShapingRun{
		Text:       layout.Range{Start: segStart, End: in.end},
		BidiLevel:  in.level,
		RTL:        in.rtl,
		Script:     uint32(props.Entries[segStart].Script),
		Emoji:      props.Entries[segStart].Emoji,
		ContentRun: in.contentRun,
		Font:       segFont,
		Language:   opts.Language,
	})
	return out
}

// resolveFont implements spec 4.3 step 7's font-fallback tiering for a
// single codepoint: keep using the run's current font if it still covers
// r (stickiness, avoiding gratuitous run splits across a run of glyphs a
// single font can already render); otherwise probe the CSS-matched
// candidate list in order; otherwise fall back to the family default;
// and if even the default lacks the glyph, reuse the first candidate
// (tofu) rather than leaving the codepoint unresolved, per spec 7's
// "silently pick the first candidate to emit tofu" fallback.
func resolveFont(r rune, script language.Script, fonts fontcollection.Collection, opts Options, current layout.FontHandle, hasCurrent bool) layout.FontHandle {
	if hasCurrent && fonts.FontHasCodepoint(current, r) {
		return current
	}

	candidates := fonts.MatchFonts(opts.Language, uint32(script), opts.Family, opts.Weight, opts.Style, opts.Stretch)
	for _, h := range candidates {
		if fonts.FontHasCodepoint(h, r) {
			return h
		}
	}

	def := fonts.DefaultFont(opts.Family)
	if fonts.FontHasCodepoint(def, r) {
		return def
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return def
}
