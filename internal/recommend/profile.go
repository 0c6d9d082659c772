package recommend

import (
	"github.com/tunehawk/music-recommendation-service/internal/catalog"
)

// ProfileMatcher maps an anonymous seed selection onto the existing
// catalog user whose listening history overlaps it most. The matched
// profile stands in for the new user in collaborative filtering.
type ProfileMatcher struct {
	catalog *catalog.Catalog
}

func NewProfileMatcher(c *catalog.Catalog) *ProfileMatcher {
	return &ProfileMatcher{catalog: c}
}

// Match sums listen counts per user over catalog rows whose title is in
// seeds, and returns the user with the highest total when it reaches
// threshold. Ties go to the lowest user id. The second return is false
// when nothing overlaps or the best affinity is below threshold.
func (m *ProfileMatcher) Match(seeds []string, threshold int) (string, bool) {
	wanted := make(map[string]bool, len(seeds))
	for _, s := range seeds {
		wanted[s] = true
	}

	affinity := make(map[string]int)
	for _, row := range m.catalog.Rows() {
		if wanted[row.Title] {
			affinity[row.UserID] += row.ListenCount
		}
	}

	best := ""
	bestScore := -1
	for user, score := range affinity {
		if score > bestScore || (score == bestScore && user < best) {
			best, bestScore = user, score
		}
	}

	if bestScore < threshold {
		return "", false
	}
	return best, true
}
