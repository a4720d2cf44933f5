package corpus

import "sort"

// HeadingFrequency is one heading with the number of articles it
// appears in.
type HeadingFrequency struct {
	Heading string
	Count   int
}

// CountHeadings tallies top-level headings across article texts,
// ordered by descending count then heading for a stable listing.
func CountHeadings(texts []string) []HeadingFrequency {
	counts := map[string]int{}
	for _, text := range texts {
		for _, heading := range Headings(text) {
			counts[heading]++
		}
	}

	freqs := make([]HeadingFrequency, 0, len(counts))
	for heading, count := range counts {
		freqs = append(freqs, HeadingFrequency{Heading: heading, Count: count})
	}
	sort.Slice(freqs, func(i, j int) bool {
		if freqs[i].Count != freqs[j].Count {
			return freqs[i].Count > freqs[j].Count
		}
		return freqs[i].Heading < freqs[j].Heading
	})
	return freqs
}

// TopHeadings returns the first n entries, or all of them when fewer
// exist.
func TopHeadings(freqs []HeadingFrequency, n int) []HeadingFrequency {
	if n < 0 {
		n = 0
	}
	if n > len(freqs) {
		n = len(freqs)
	}
	return freqs[:n]
}
