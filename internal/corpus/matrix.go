// Package corpus holds the in-memory analysis layer of the harvester:
// sparse labeled relation matrices, the seed similarity engine, and the
// plain-text utilities that slice article extracts into sections.
package corpus

import "sort"

// Relation is one row of a labeled relation matrix: a source label and
// the targets it points at.
type Relation struct {
	Label   string
	Targets []string
}

// LabeledMatrix is a sparse binary matrix over string labels. Rows are
// the relation sources in insertion order; columns are the sorted,
// deduplicated union of every target seen anywhere. Cell (i, j) is set
// when row i's relation contains column j's label.
type LabeledMatrix struct {
	rowLabels []string
	colLabels []string
	rowIndex  map[string]int
	colIndex  map[string]int

	// rows[i] holds the sorted distinct column indices set in row i.
	rows [][]int
	nnz  int
}

// BuildMatrix constructs a matrix from relations. A second relation for
// an already-seen label is dropped; duplicate targets within one
// relation collapse to a single cell.
func BuildMatrix(relations []Relation) *LabeledMatrix {
	m := &LabeledMatrix{
		rowIndex: map[string]int{},
		colIndex: map[string]int{},
	}

	colSet := map[string]bool{}
	kept := make([]Relation, 0, len(relations))
	for _, relation := range relations {
		if _, exists := m.rowIndex[relation.Label]; exists {
			continue
		}
		m.rowIndex[relation.Label] = len(m.rowLabels)
		m.rowLabels = append(m.rowLabels, relation.Label)
		kept = append(kept, relation)
		for _, target := range relation.Targets {
			colSet[target] = true
		}
	}

	m.colLabels = make([]string, 0, len(colSet))
	for label := range colSet {
		m.colLabels = append(m.colLabels, label)
	}
	sort.Strings(m.colLabels)
	for j, label := range m.colLabels {
		m.colIndex[label] = j
	}

	for _, relation := range kept {
		seen := map[int]bool{}
		var cols []int
		for _, target := range relation.Targets {
			j := m.colIndex[target]
			if !seen[j] {
				seen[j] = true
				cols = append(cols, j)
			}
		}
		sort.Ints(cols)
		m.rows = append(m.rows, cols)
		m.nnz += len(cols)
	}
	return m
}

// Shape returns (rows, cols).
func (m *LabeledMatrix) Shape() (int, int) {
	return len(m.rowLabels), len(m.colLabels)
}

// NNZ returns the number of set cells.
func (m *LabeledMatrix) NNZ() int {
	return m.nnz
}

// RowLabels returns the row labels in row order. The slice is shared;
// callers must not modify it.
func (m *LabeledMatrix) RowLabels() []string {
	return m.rowLabels
}

// ColLabels returns the column labels in column order. The slice is
// shared; callers must not modify it.
func (m *LabeledMatrix) ColLabels() []string {
	return m.colLabels
}

// Row returns the sorted column indices set in row i. The slice is
// shared; callers must not modify it.
func (m *LabeledMatrix) Row(i int) []int {
	return m.rows[i]
}

// RowIndex returns the row position of a label.
func (m *LabeledMatrix) RowIndex(label string) (int, bool) {
	i, ok := m.rowIndex[label]
	return i, ok
}

// ColIndex returns the column position of a label.
func (m *LabeledMatrix) ColIndex(label string) (int, bool) {
	j, ok := m.colIndex[label]
	return j, ok
}

// Has reports whether cell (i, j) is set.
func (m *LabeledMatrix) Has(i, j int) bool {
	cols := m.rows[i]
	pos := sort.SearchInts(cols, j)
	return pos < len(cols) && cols[pos] == j
}
