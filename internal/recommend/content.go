package recommend

import (
	"context"
	"sort"

	"github.com/tunehawk/music-recommendation-service/internal/artwork"
	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
	"github.com/tunehawk/music-recommendation-service/internal/similarity"
)

const contentPerSeed = 5

// ContentBased recommends songs similar to a set of seed titles using
// the precomputed similarity matrix.
type ContentBased struct {
	catalog  *catalog.Catalog
	matrix   *similarity.Matrix
	resolver artwork.Resolver
}

func NewContentBased(c *catalog.Catalog, m *similarity.Matrix, r artwork.Resolver) *ContentBased {
	return &ContentBased{catalog: c, matrix: m, resolver: r}
}

// Recommend returns the most similar songs for each seed, in seed order.
// Seeds missing from the catalog are skipped. Each seed contributes up
// to 5 candidates; the seed's own title never surfaces among them, even
// when the catalog holds several rows of the same track. A title already
// emitted for an earlier seed is not emitted again, and album art is
// resolved once per emitted title.
func (r *ContentBased) Recommend(ctx context.Context, seeds []string) []domain.Recommendation {
	seen := make(map[string]bool)
	var recs []domain.Recommendation

	for _, seed := range seeds {
		idx, ok := r.catalog.IndexOfTitle(seed)
		if !ok {
			continue
		}
		for _, row := range r.topSimilar(idx) {
			song := r.catalog.Row(row)
			if song.Title == seed {
				continue
			}
			if seen[song.Title] {
				continue
			}
			seen[song.Title] = true
			recs = append(recs, domain.Recommendation{
				Title:    song.Title,
				ImageURL: r.resolver.Resolve(ctx, song.Title, song.Artist),
				Source:   domain.SourceContent,
			})
		}
	}

	return recs
}

// topSimilar returns the row indexes most similar to row idx, best
// first. Rank 0 is the seed's own row (self-similarity is maximal) and
// is dropped; ties keep original row order.
func (r *ContentBased) topSimilar(idx int) []int {
	scores := r.matrix.Scores(idx)
	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	if len(order) <= 1 {
		return nil
	}
	top := order[1:]
	if len(top) > contentPerSeed {
		top = top[:contentPerSeed]
	}
	return top
}
