package textprops

// ApplyLanguageBreaker implements spec 4.2's language-specific breaker
// override: within [start,end) — a range whose language attribute and
// script match a language the caller wants dictionary-based breaking for
// (Japanese, Simplified/Traditional Chinese, Thai) — every generic
// allow-break is cleared, then a break is placed at the end of the
// trailing whitespace of each word, where "word" is the already-computed
// WordBreak boundary array (go-text/typesetting's segmenter already runs
// a dictionary-based UAX #29 word breaker for these scripts; this
// function's job is only to re-derive line-break opportunities from that
// word boundary, not to re-segment words itself).
func (t *Table) ApplyLanguageBreaker(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(t.Entries) {
		end = len(t.Entries)
	}
	for i := start; i < end; i++ {
		if t.Entries[i].LineBreak == BreakAllow {
			t.Entries[i].LineBreak = BreakNone
		}
	}

	wordStarts := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		if t.Entries[i].WordBreak {
			wordStarts = append(wordStarts, i)
		}
	}
	wordStarts = append(wordStarts, end)

	for wi := 0; wi+1 < len(wordStarts); wi++ {
		wordEnd := wordStarts[wi+1]
		// A whitespace-only word token immediately following this one
		// is folded in, so the break point lands after the trailing
		// whitespace rather than between the word and its whitespace.
		for wordEnd < end && wordEnd < len(t.Entries) && t.Entries[wordEnd].Whitespace {
			wordEnd++
		}
		switch {
		case wordEnd < len(t.Entries):
			t.Entries[wordEnd].LineBreak = BreakAllow
		case wordEnd > 0:
			t.Entries[wordEnd-1].LineBreak = BreakMust
		}
	}
}
