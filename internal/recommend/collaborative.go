package recommend

import (
	"context"
	"sort"

	"github.com/tunehawk/music-recommendation-service/internal/artwork"
	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
	"github.com/tunehawk/music-recommendation-service/internal/model"
)

// Collaborative scores every catalog song for a matched user through the
// rating predictor and returns the top estimates.
type Collaborative struct {
	catalog   *catalog.Catalog
	predictor model.Predictor
	resolver  artwork.Resolver
}

func NewCollaborative(c *catalog.Catalog, p model.Predictor, r artwork.Resolver) *Collaborative {
	return &Collaborative{catalog: c, predictor: p, resolver: r}
}

type estimate struct {
	songID string
	score  float64
}

// RecommendForUser estimates a rating for every distinct song id and
// returns the topN highest, titles resolved through the catalog. This
// is O(catalog) predictor calls, so the context is checked between
// estimates. A failed estimate leaves that song unscored; the pass
// continues. Ties keep catalog iteration order.
func (r *Collaborative) RecommendForUser(ctx context.Context, userID string, topN int) ([]domain.Recommendation, error) {
	ids := r.catalog.SongIDs()
	estimates := make([]estimate, 0, len(ids))

	for _, id := range ids {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score, err := r.predictor.Estimate(userID, id)
		if err != nil {
			continue
		}
		estimates = append(estimates, estimate{songID: id, score: score})
	}

	sort.SliceStable(estimates, func(a, b int) bool {
		return estimates[a].score > estimates[b].score
	})
	if len(estimates) > topN {
		estimates = estimates[:topN]
	}

	recs := make([]domain.Recommendation, 0, len(estimates))
	for _, est := range estimates {
		song, ok := r.catalog.ByID(est.songID)
		if !ok {
			continue
		}
		recs = append(recs, domain.Recommendation{
			Title:    song.Title,
			ImageURL: r.resolver.Resolve(ctx, song.Title, song.Artist),
			Source:   domain.SourceCollaborative,
		})
	}

	return recs, nil
}
