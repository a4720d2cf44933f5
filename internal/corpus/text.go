package corpus

import (
	"regexp"
)

// headingPattern matches a top-level "== Heading ==" line in the
// plain-text extract format. Deeper levels (===) do not match because
// the first capture rejects a leading "=".
var headingPattern = regexp.MustCompile(`\n *={2} *([^=].+?) *={2} *\n`)

// LeadHeading labels the text before the first heading.
const LeadHeading = "Lead"

// Section is one heading-delimited slice of an article extract.
type Section struct {
	Heading string
	Text    string
}

// Headings lists the top-level section headings of an extract, in
// document order.
func Headings(text string) []string {
	matches := headingPattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return nil
	}
	headings := make([]string, len(matches))
	for i, match := range matches {
		headings[i] = match[1]
	}
	return headings
}

// SplitSections slices an extract at its top-level headings. The first
// section is always the lead, even when empty.
func SplitSections(text string) []Section {
	locs := headingPattern.FindAllStringSubmatchIndex(text, -1)

	leadEnd := len(text)
	if len(locs) > 0 {
		leadEnd = locs[0][0]
	}
	sections := []Section{{Heading: LeadHeading, Text: text[:leadEnd]}}

	for k, loc := range locs {
		end := len(text)
		if k+1 < len(locs) {
			end = locs[k+1][0]
		}
		sections = append(sections, Section{
			Heading: text[loc[2]:loc[3]],
			Text:    text[loc[1]:end],
		})
	}
	return sections
}

// CutAtHeadings truncates the text at the earliest occurrence of any of
// the given headings: the heading and everything after it are removed.
// Used to strip boilerplate tails ("See also", "References", "External
// links") from extracts.
func CutAtHeadings(text string, cut []string) string {
	cutSet := make(map[string]bool, len(cut))
	for _, heading := range cut {
		cutSet[heading] = true
	}

	for _, loc := range headingPattern.FindAllStringSubmatchIndex(text, -1) {
		if cutSet[text[loc[2]:loc[3]]] {
			return text[:loc[0]]
		}
	}
	return text
}

// CutArticlesAtHeadings applies CutAtHeadings to every text.
func CutArticlesAtHeadings(texts []string, cut []string) []string {
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = CutAtHeadings(text, cut)
	}
	return out
}
