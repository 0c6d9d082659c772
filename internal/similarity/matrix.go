package similarity

import "fmt"

// Matrix holds the precomputed pairwise song similarity scores, indexed
// by catalog row position. Immutable once loaded.
type Matrix struct {
	scores [][]float64
}

// New validates that scores is square and matches the catalog dimension.
func New(scores [][]float64, dim int) (*Matrix, error) {
	if len(scores) != dim {
		return nil, fmt.Errorf("similarity matrix has %d rows, catalog has %d", len(scores), dim)
	}
	for i, row := range scores {
		if len(row) != dim {
			return nil, fmt.Errorf("similarity row %d has %d columns, want %d", i, len(row), dim)
		}
	}
	return &Matrix{scores: scores}, nil
}

func (m *Matrix) Dim() int {
	return len(m.scores)
}

// Scores returns row i: the similarity of every catalog song to song i.
// Callers must not modify the returned slice.
func (m *Matrix) Scores(i int) []float64 {
	return m.scores[i]
}
