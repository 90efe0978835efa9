package chronoclip

import "strings"

// invisibleRunes are zero-width and formatting characters that survive
// DOM text extraction and break both scoring and display.
var invisibleRunes = map[rune]bool{
	'\u200B': true, // zero width space
	'\u200C': true, // zero width non-joiner
	'\u200D': true, // zero width joiner
	'\u2060': true, // word joiner
	'\uFEFF': true, // BOM
}

// NormalizeText collapses runs of whitespace (including newlines) into
// single spaces and strips invisible characters. All candidate text is
// normalized before scoring.
func NormalizeText(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if invisibleRunes[r] {
			return -1
		}
		if r == ' ' { // NBSP
			return ' '
		}
		return r
	}, s)
	return strings.Join(strings.Fields(cleaned), " ")
}

// titleSeparators split a page title from its site-boilerplate suffix.
var titleSeparators = []string{" | ", "｜", " - ", " – ", " — "}

// StripTitleBoilerplate drops the site-name suffix from a page-level
// title: content after the first separator is discarded. Titles with no
// separator pass through unchanged.
func StripTitleBoilerplate(title string) string {
	title = NormalizeText(title)
	cut := len(title)
	for _, sep := range titleSeparators {
		if i := strings.Index(title, sep); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(title[:cut])
}
