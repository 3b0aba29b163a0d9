// Package section implements the header/section segmentation shared by the
// Resume Structurer (C2) and Job Structurer (C3): a header line qualifies
// if it is at most 4 words and contains a keyword from the caller's
// dictionary; a section runs until the next qualifying header.
package section

import (
	"regexp"
	"strings"
)

// Section is one detected region of text, keyed by the caller's section
// kind (e.g. "skills", "experience", "requirements").
type Section struct {
	Kind  string
	Lines []string
}

// Split segments text's lines into sections using keywords, a map of
// section kind -> header keywords (case-insensitive substring match).
// Lines preceding the first qualifying header are returned under kind "".
func Split(text string, keywords map[string][]string) []Section {
	lines := strings.Split(text, "\n")
	var sections []Section
	current := Section{Kind: ""}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if kind, ok := matchHeader(line, keywords); ok {
			sections = append(sections, current)
			current = Section{Kind: kind}
			continue
		}
		current.Lines = append(current.Lines, line)
	}
	sections = append(sections, current)
	return sections
}

// Find returns the concatenated lines of every section of the given kind.
func Find(sections []Section, kind string) []string {
	var lines []string
	for _, s := range sections {
		if s.Kind == kind {
			lines = append(lines, s.Lines...)
		}
	}
	return lines
}

func matchHeader(line string, keywords map[string][]string) (string, bool) {
	words := strings.Fields(line)
	if len(words) == 0 || len(words) > 4 {
		return "", false
	}
	lower := strings.ToLower(line)
	for kind, kws := range keywords {
		for _, kw := range kws {
			if strings.Contains(lower, kw) {
				return kind, true
			}
		}
	}
	return "", false
}

var bulletMarker = regexp.MustCompile(`^[•*\-◦▪▫]\s*|^\d+\.?\s+`)

// Bullets splits section content into bullet items per §4.3: lines led by a
// marker {•*-◦▪▫} or a numeric prefix become one item each (marker
// stripped); marker-less lines with more than 3 words are retained as-is.
func Bullets(lines []string) []string {
	var out []string
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if bulletMarker.MatchString(trimmed) {
			out = append(out, strings.TrimSpace(bulletMarker.ReplaceAllString(trimmed, "")))
			continue
		}
		if len(strings.Fields(trimmed)) > 3 {
			out = append(out, trimmed)
		}
	}
	return out
}
