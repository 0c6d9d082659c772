package repository

import (
	"context"
	"fmt"

	"github.com/tunehawk/music-recommendation-service/internal/model"
)

// LoadFactors loads the trained rating model: the global mean plus
// biases and latent vectors for users and songs.
func (r *Repository) LoadFactors(ctx context.Context) (model.Factors, error) {
	f := model.Factors{
		UserBias:    make(map[string]float64),
		ItemBias:    make(map[string]float64),
		UserFactors: make(map[string][]float64),
		ItemFactors: make(map[string][]float64),
	}

	rows, err := r.pool.Query(ctx, `SELECT entity, entity_id, bias, factors FROM model_factors`)
	if err != nil {
		return f, fmt.Errorf("query model factors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entity, entityID string
		var bias float64
		var factors []float64
		if err := rows.Scan(&entity, &entityID, &bias, &factors); err != nil {
			return f, fmt.Errorf("scan model factor: %w", err)
		}

		switch entity {
		case "global":
			f.GlobalMean = bias
		case "user":
			f.UserBias[entityID] = bias
			f.UserFactors[entityID] = factors
		case "item":
			f.ItemBias[entityID] = bias
			f.ItemFactors[entityID] = factors
		default:
			return f, fmt.Errorf("unknown factor entity %q", entity)
		}
	}

	if err := rows.Err(); err != nil {
		return f, fmt.Errorf("iterate over model factors: %w", err)
	}
	return f, nil
}
