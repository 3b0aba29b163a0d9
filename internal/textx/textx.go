// Package textx provides small text utilities shared across the pipeline.
package textx

import (
	"strings"
	"unicode"
)

// zeroWidth lists zero-width / formatting runes that extraction backends
// sometimes leave behind (BOM, ZWSP, ZWNJ, ZWJ, word joiner).
var zeroWidth = map[rune]bool{
	0xFEFF: true,
	'​': true,
	'‌': true,
	'‍': true,
	'⁠': true,
}

// SanitizeText removes control characters (outside tab/newline/carriage
// return) and zero-width characters, then trims surrounding whitespace.
func SanitizeText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if zeroWidth[r] {
			continue
		}
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Normalize collapses runs of horizontal whitespace to a single space while
// preserving line breaks and paragraph breaks (two or more consecutive
// newlines collapse to exactly one blank line), and strips zero-width/control
// noise via SanitizeText first.
func Normalize(s string) string {
	s = SanitizeText(s)
	lines := strings.Split(s, "\n")
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) == 0 {
			return
		}
		kept := make([]string, 0, len(current))
		for _, line := range current {
			if line = collapseSpaces(line); line != "" {
				kept = append(kept, line)
			}
		}
		if len(kept) > 0 {
			paragraphs = append(paragraphs, strings.Join(kept, "\n"))
		}
		current = current[:0]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return strings.Join(paragraphs, "\n\n")
}

func collapseSpaces(s string) string {
	fields := strings.FieldsFunc(s, unicode.IsSpace)
	return strings.Join(fields, " ")
}

// Tokenize lowercases text and splits on anything that is not a letter or
// digit, discarding empty tokens.
func Tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
