package recommend

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

const (
	// MaxRecommendations caps the blended output length.
	MaxRecommendations = 5

	matchThreshold = 1
)

// Blender combines the content-based and collaborative streams into one
// bounded, de-duplicated list.
type Blender struct {
	content       *ContentBased
	matcher       *ProfileMatcher
	collaborative *Collaborative
}

func NewBlender(content *ContentBased, matcher *ProfileMatcher, collaborative *Collaborative) *Blender {
	return &Blender{
		content:       content,
		matcher:       matcher,
		collaborative: collaborative,
	}
}

// Recommend runs the content-based pass and the profile match
// concurrently (both only read immutable state), fetches collaborative
// predictions when a profile matched, then interleaves the two streams.
// The result holds at most MaxRecommendations entries and may be empty.
func (b *Blender) Recommend(ctx context.Context, seeds []string) ([]domain.Recommendation, error) {
	var (
		cb      []domain.Recommendation
		matched string
		ok      bool
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		cb = b.content.Recommend(egCtx, seeds)
		return nil
	})
	eg.Go(func() error {
		matched, ok = b.matcher.Match(seeds, matchThreshold)
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var cf []domain.Recommendation
	if ok {
		var err error
		cf, err = b.collaborative.RecommendForUser(ctx, matched, MaxRecommendations)
		if err != nil {
			return nil, err
		}
	}

	return interleave(cb, cf, MaxRecommendations), nil
}

// interleave merges the two queues front-first, content-based first in
// each round, dropping titles already emitted, until limit entries are
// collected or both queues drain. Trying CB first every round keeps both
// sources represented whenever both produce results.
func interleave(cb, cf []domain.Recommendation, limit int) []domain.Recommendation {
	seen := make(map[string]bool, limit)
	merged := make([]domain.Recommendation, 0, limit)

	take := func(queue []domain.Recommendation) []domain.Recommendation {
		rec := queue[0]
		if !seen[rec.Title] {
			seen[rec.Title] = true
			merged = append(merged, rec)
		}
		return queue[1:]
	}

	for len(merged) < limit && (len(cb) > 0 || len(cf) > 0) {
		if len(cb) > 0 {
			cb = take(cb)
		}
		if len(merged) < limit && len(cf) > 0 {
			cf = take(cf)
		}
	}

	return merged
}
