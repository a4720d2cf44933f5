package corpus

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// SeedSimilarity scores every row of a link matrix against a target
// vector derived from a seed set.
type SeedSimilarity struct {
	// Scores maps each row label to its cosine similarity against the
	// seed-derived target vector, in [0, 1].
	Scores map[string]float64

	// PageWeight holds, per retained column, the share of that page's
	// incoming links contributed by the seed set. TargetVec is the
	// reference vector rows are scored against; it equals PageWeight.
	// Both are aligned with the retained columns in column order.
	PageWeight []float64
	TargetVec  []float64

	// ColumnsUsed and ColumnsDropped partition the matrix columns:
	// columns nothing links to carry no signal and are dropped before
	// weighting.
	ColumnsUsed    int
	ColumnsDropped int
}

// InDegrees derives per-column link counts from a matrix: all counts
// every row, fromSeeds counts only rows whose label is in seeds.
func InDegrees(m *LabeledMatrix, seeds []string) (all, fromSeeds map[string]int) {
	seedSet := make(map[string]bool, len(seeds))
	for _, seed := range seeds {
		seedSet[seed] = true
	}

	cols := m.ColLabels()
	all = make(map[string]int, len(cols))
	fromSeeds = make(map[string]int, len(cols))

	rows, _ := m.Shape()
	for i := 0; i < rows; i++ {
		isSeed := seedSet[m.RowLabels()[i]]
		for _, j := range m.Row(i) {
			label := cols[j]
			all[label]++
			if isSeed {
				fromSeeds[label]++
			}
		}
	}
	return all, fromSeeds
}

// ComputeSeedSimilarity weighs each linked-to page by the share of its
// incoming links that come from the seed set, then scores every row by
// the cosine between its weighted link vector and the weight vector
// itself. Columns with zero total in-degree are dropped. When the seed
// set contributes nothing (zero target norm), every score is 0.
func ComputeSeedSimilarity(m *LabeledMatrix, inDegreeAll, inDegreeFromSeeds map[string]int) *SeedSimilarity {
	cols := m.ColLabels()

	// keep columns something links to; map original index to position
	kept := map[int]int{}
	var pageWeight []float64
	for j, label := range cols {
		total := inDegreeAll[label]
		if total <= 0 {
			continue
		}
		kept[j] = len(pageWeight)
		pageWeight = append(pageWeight, float64(inDegreeFromSeeds[label])/float64(total))
	}

	result := &SeedSimilarity{
		Scores:         map[string]float64{},
		PageWeight:     pageWeight,
		TargetVec:      append([]float64(nil), pageWeight...),
		ColumnsUsed:    len(pageWeight),
		ColumnsDropped: len(cols) - len(pageWeight),
	}

	rowLabels := m.RowLabels()
	targetNorm := floats.Norm(pageWeight, 2)
	if targetNorm == 0 {
		for _, label := range rowLabels {
			result.Scores[label] = 0
		}
		return result
	}

	rowVec := make([]float64, len(pageWeight))
	for i, label := range rowLabels {
		for k := range rowVec {
			rowVec[k] = 0
		}
		for _, j := range m.Row(i) {
			if pos, ok := kept[j]; ok {
				rowVec[pos] = pageWeight[pos]
			}
		}

		score := 0.0
		if rowNorm := floats.Norm(rowVec, 2); rowNorm > 0 {
			score = floats.Dot(rowVec, pageWeight) / (rowNorm * targetNorm)
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			score = 0
		}
		result.Scores[label] = score
	}
	return result
}
