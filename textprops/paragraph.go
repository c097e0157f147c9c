package textprops

// ParagraphBreaks returns the rune offsets at which a new paragraph
// begins, derived from the same hard-break detection markLineBreaks
// already ran (a paragraph boundary is exactly a BreakMust line-break
// opportunity). The Itemizer uses this to run bidi resolution and
// script/emoji splitting independently per paragraph, per spec 4.3 step 1.
func (t *Table) ParagraphBreaks() []int {
	var breaks []int
	for i, e := range t.Entries {
		if e.LineBreak != BreakMust {
			continue
		}
		if i == len(t.Entries)-1 {
			// BreakMust recorded against the final entry means "the text
			// ends in a hard break", not a boundary with more text after
			// it — only interior BreakMust entries start a new paragraph.
			continue
		}
		breaks = append(breaks, i)
	}
	return breaks
}

// Paragraphs returns the [start,end) rune ranges of each paragraph in
// the table, always covering the whole text.
func (t *Table) Paragraphs() [][2]int {
	bounds := t.ParagraphBreaks()
	ranges := make([][2]int, 0, len(bounds)+1)
	start := 0
	for _, b := range bounds {
		ranges = append(ranges, [2]int{start, b})
		start = b
	}
	ranges = append(ranges, [2]int{start, len(t.Entries)})
	return ranges
}
