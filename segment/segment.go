package segment

import (
	"strings"
	"unicode/utf8"
)

// Split breaks text into its comparison parts. The rules are applied in order:
//
//  1. "" yields no parts.
//  2. A single character yields itself.
//  3. Text containing a comma is split on commas; pieces are trimmed and
//     empty pieces dropped. No further classification is done.
//  4. Text that is a whole number (see ParseNumber) yields itself.
//  5. Text without any digit yields itself.
//  6. Otherwise the text is cut into alternating runs of digits and
//     non-digits, left to right.
//
// The returned slice is never shared between calls.
func Split(text string) []string {
	switch {
	case text == "":
		return []string{}
	case utf8.RuneCountInString(text) == 1:
		return []string{text}
	case strings.Contains(text, ","):
		return splitList(text)
	case IsNumber(text), !hasDigit(text):
		return []string{text}
	default:
		return splitRuns(text)
	}
}

func splitList(text string) []string {
	pieces := strings.Split(text, ",")
	parts := make([]string, 0, len(pieces))

	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			parts = append(parts, piece)
		}
	}

	return parts
}

// splitRuns cuts text wherever the character class flips between digit and
// non-digit. Offsets are byte offsets, so multi-byte runes stay intact.
func splitRuns(text string) []string {
	var parts []string

	start := 0
	first, _ := utf8.DecodeRuneInString(text)
	inDigits := isDigit(first)

	for i, r := range text {
		if isDigit(r) == inDigits {
			continue
		}

		parts = append(parts, text[start:i])
		start = i
		inDigits = !inDigits
	}

	return append(parts, text[start:])
}
