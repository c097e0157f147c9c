package linelayout

import "github.com/textkit/richlayout/attribute"

// alphabet is the 26-letter pattern spec 4.5.3 documents as the
// suspect-bug surface: the original source's alphabetic counter used
// pattern_count=2 (effectively cycling only 'a'/'b'-style two-letter
// patterns) where a full bijective base-26 counter was clearly intended.
// This implementation follows spec section 9's documented resolution:
// treat the full alphabet as the intended behavior rather than
// reproducing the two-letter truncation.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// BuildListMarker renders counter as text per kind, following spec
// 4.5.3's numeric/alphabetic counter construction algorithm.
//
// Ported from: spec 4.5.3's documented algorithm, generalized into a
// pure function operating on attribute.ListMarkerValue/Kind. original_source/
// kept no files to consult on the exact source text, so the full-alphabet
// interpretation is a recorded Open Question decision (see DESIGN.md).
func BuildListMarker(v attribute.ListMarkerValue, counter int) string {
	switch v.Kind {
	case attribute.ListMarkerNumeric:
		return formatNumericWithSymbols(counter, v.Symbols)
	case attribute.ListMarkerAlphabetic:
		return formatAlphabeticWithSymbols(counter, v.Symbols)
	case attribute.ListMarkerCodepoint:
		return string(v.Codepoint)
	default:
		return ""
	}
}

// formatNumericWithSymbols renders counter in the base implied by
// symbols' length (falling back to plain base-10 digits when symbols is
// empty), per spec 4.5.3's numeric counter construction.
func formatNumericWithSymbols(counter int, symbols string) string {
	if symbols == "" {
		return formatNumeric(counter)
	}
	digitSet := []rune(symbols)
	base := len(digitSet)
	if counter <= 0 {
		return string(digitSet[0])
	}
	var out []rune
	n := counter
	for n > 0 {
		out = append([]rune{digitSet[n%base]}, out...)
		n /= base
	}
	return string(out)
}

// formatAlphabeticWithSymbols is the bijective counter construction over
// a caller-supplied alphabet, falling back to the 26-letter Latin
// alphabet when symbols is empty.
func formatAlphabeticWithSymbols(counter int, symbols string) string {
	letters := []rune(symbols)
	if len(letters) == 0 {
		letters = []rune(alphabet)
	}
	if counter <= 0 {
		return string(letters[0])
	}
	base := len(letters)
	var out []rune
	n := counter
	for n > 0 {
		n--
		out = append([]rune{letters[n%base]}, out...)
		n /= base
	}
	return string(out)
}

func formatNumeric(counter int) string {
	if counter <= 0 {
		return "0"
	}
	digits := []byte{}
	n := counter
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}
