package textprops

// isEmoji reports whether r falls in one of the Unicode blocks that are
// overwhelmingly emoji-presentation codepoints. No example or ecosystem
// dependency in this module's stack ships an emoji property table, so
// this is a deliberate, documented range check rather than the full
// Unicode emoji-data.txt derived table a production build would load —
// see DESIGN.md for the justification.
func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F300 && r <= 0x1FAFF: // Misc symbols & pictographs .. Symbols and Pictographs Extended-A
		return true
	case r >= 0x2600 && r <= 0x27BF: // Misc symbols, Dingbats
		return true
	case r >= 0x2190 && r <= 0x21FF: // Arrows (subset overlaps emoji-keycap use)
		return false
	case r == 0x203C || r == 0x2049: // double/exclamation-question mark
		return true
	case r >= 0x2B00 && r <= 0x2BFF: // Misc Symbols and Arrows (emoji subset)
		return true
	case r >= 0x1F1E6 && r <= 0x1F1FF: // regional indicator symbols (flags)
		return true
	case r == 0x200D: // ZWJ, used to join emoji sequences
		return true
	case r == 0xFE0F || r == 0xFE0E: // variation selectors (emoji/text presentation)
		return true
	case r >= 0x1F000 && r <= 0x1F0FF: // Mahjong/playing cards (emoji-adjacent)
		return true
	default:
		return false
	}
}
