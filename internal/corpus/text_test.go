package corpus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

const sampleExtract = "Go is a programming language.\n== History ==\nDesigned at Google.\n== Syntax ==\nBraces, no semicolons.\n=== Declarations ===\nShort form exists.\n== References ==\nSome refs."

func TestHeadings_TopLevelOnly(t *testing.T) {
	headings := Headings(sampleExtract)
	assert.Equal(t, []string{"History", "Syntax", "References"}, headings,
		"=== subsections must not match")
}

func TestHeadings_NoneInPlainText(t *testing.T) {
	assert.Nil(t, Headings("no headings anywhere"))
	assert.Nil(t, Headings(""))
}

func TestHeadings_ToleratesSpacing(t *testing.T) {
	text := "lead\n==Tight==\n body\n ==  Spaced  ==\nmore"
	assert.Equal(t, []string{"Tight", "Spaced"}, Headings(text))
}

func TestSplitSections(t *testing.T) {
	sections := SplitSections(sampleExtract)

	want := []Section{
		{Heading: "Lead", Text: "Go is a programming language."},
		{Heading: "History", Text: "Designed at Google."},
		{Heading: "Syntax", Text: "Braces, no semicolons.\n=== Declarations ===\nShort form exists."},
		{Heading: "References", Text: "Some refs."},
	}
	if diff := cmp.Diff(want, sections); diff != "" {
		t.Errorf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestSplitSections_NoHeadings(t *testing.T) {
	sections := SplitSections("just a lead")
	assert.Equal(t, []Section{{Heading: "Lead", Text: "just a lead"}}, sections)
}

func TestSplitSections_EmptyLead(t *testing.T) {
	sections := SplitSections("\n== First ==\nbody")
	assert.Equal(t, "Lead", sections[0].Heading)
	assert.Empty(t, sections[0].Text)
	assert.Equal(t, "First", sections[1].Heading)
}

func TestCutAtHeadings(t *testing.T) {
	got := CutAtHeadings(sampleExtract, []string{"References"})
	assert.NotContains(t, got, "Some refs.")
	assert.Contains(t, got, "Designed at Google.")
	assert.Contains(t, got, "== Syntax ==")
}

func TestCutAtHeadings_RemovesEverythingOnward(t *testing.T) {
	text := "lead\n== History ==\nh\n== See also ==\nlinks\n== References ==\nrefs"

	got := CutAtHeadings(text, []string{"See also"})

	assert.Equal(t, "lead\n== History ==\nh", got,
		"sections after the cut heading go too")
}

func TestCutAtHeadings_EarliestMatchWins(t *testing.T) {
	got := CutAtHeadings(sampleExtract, []string{"References", "Syntax"})
	assert.Equal(t, "Go is a programming language.\n== History ==\nDesigned at Google.", got)
}

func TestCutAtHeadings_RoundTripWhenNothingCut(t *testing.T) {
	got := CutAtHeadings(sampleExtract, nil)
	assert.Equal(t, sampleExtract, got)
}

func TestCutArticlesAtHeadings(t *testing.T) {
	texts := []string{sampleExtract, "plain"}
	got := CutArticlesAtHeadings(texts, []string{"History", "Syntax", "References"})
	assert.Equal(t, "Go is a programming language.", got[0])
	assert.Equal(t, "plain", got[1])
}
