package repository

import (
	"context"
	"fmt"
)

// LoadSimilarity reassembles the dense similarity matrix for a catalog
// of dim rows from its sparse (row_i, row_j, score) representation.
// Absent pairs score zero.
func (r *Repository) LoadSimilarity(ctx context.Context, dim int) ([][]float64, error) {
	scores := make([][]float64, dim)
	for i := range scores {
		scores[i] = make([]float64, dim)
	}

	rows, err := r.pool.Query(ctx, `SELECT row_i, row_j, score FROM song_similarity`)
	if err != nil {
		return nil, fmt.Errorf("query similarity: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var i, j int
		var score float64
		if err := rows.Scan(&i, &j, &score); err != nil {
			return nil, fmt.Errorf("scan similarity entry: %w", err)
		}
		if i < 0 || i >= dim || j < 0 || j >= dim {
			return nil, fmt.Errorf("similarity entry (%d,%d) outside catalog of %d rows", i, j, dim)
		}
		scores[i][j] = score
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over similarity entries: %w", err)
	}
	return scores, nil
}
