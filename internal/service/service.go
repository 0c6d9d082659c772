package service

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/tunehawk/music-recommendation-service/internal/cache"
	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
	"github.com/tunehawk/music-recommendation-service/internal/model"
	"github.com/tunehawk/music-recommendation-service/internal/recommend"
)

const batchConcurrency = 10

type Service struct {
	blender *recommend.Blender
	catalog *catalog.Catalog
	cache   *cache.Cache
}

func NewService(blender *recommend.Blender, catalog *catalog.Catalog, cache *cache.Cache) *Service {
	return &Service{
		blender: blender,
		catalog: catalog,
		cache:   cache,
	}
}

func (s *Service) GetHybridRecommendations(ctx context.Context, seeds []string) (*domain.RecommendationResult, error) {
	// Check Cache
	cached, found, err := s.cache.Get(ctx, seeds)
	if err != nil {
		log.Printf("[service] cache get error for seeds %v: %v", seeds, err)
	}

	// Use recommendations from cache if available
	if found {
		return &domain.RecommendationResult{
			Recommendations: cached,
			CacheHit:        true,
		}, nil
	}

	// Cache miss -> blend content-based and collaborative streams
	recs, err := s.blender.Recommend(ctx, seeds)
	if err != nil {
		return nil, err
	}

	// Store recommendations in cache
	if cacheErr := s.cache.Set(ctx, seeds, recs); cacheErr != nil {
		log.Printf("[service] cache set error for seeds %v: %v", seeds, cacheErr)
	}

	return &domain.RecommendationResult{
		Recommendations: recs,
		CacheHit:        false,
	}, nil
}

// ListSongs returns the distinct catalog entries for the seed picker.
func (s *Service) ListSongs() []domain.Song {
	return s.catalog.DistinctTitles()
}

func (s *Service) GetBatchRecommendations(ctx context.Context, requests [][]string) (*domain.BatchResponse, error) {
	start := time.Now()

	// Process seed lists concurrently with bounded worker pool
	results := make([]domain.BatchRequestResult, len(requests))
	var wg sync.WaitGroup
	sem := make(chan struct{}, batchConcurrency) // semaphore

	for i, seeds := range requests {
		wg.Add(1)
		go func(idx int, seeds []string) {
			defer wg.Done()
			sem <- struct{}{}        // acquire
			defer func() { <-sem }() // release

			results[idx] = s.processBatchRequest(ctx, seeds)
		}(i, seeds)
	}
	wg.Wait()

	// summary
	successCount := 0
	failedCount := 0
	for _, r := range results {
		if r.Status == domain.StatusSuccess {
			successCount++
		} else {
			failedCount++
		}
	}

	elapsed := time.Since(start).Milliseconds()

	return &domain.BatchResponse{
		Results: results,
		Summary: domain.BatchSummary{
			SuccessCount:     successCount,
			FailedCount:      failedCount,
			ProcessingTimeMs: elapsed,
		},
		Metadata: domain.BatchMeta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		},
	}, nil
}

// Generates recommendations for a single seed list, capturing errors.
func (s *Service) processBatchRequest(ctx context.Context, seeds []string) domain.BatchRequestResult {
	result, err := s.GetHybridRecommendations(ctx, seeds)
	if err != nil {
		log.Printf("[service] batch: failed for seeds %v: %v", seeds, err)
		code, msg := categorizeError(err)
		return domain.BatchRequestResult{
			Seeds:   seeds,
			Status:  domain.StatusFailed,
			Error:   code,
			Message: msg,
		}
	}

	return domain.BatchRequestResult{
		Seeds:           seeds,
		Recommendations: result.Recommendations,
		Status:          domain.StatusSuccess,
	}
}

// Handle response error
func categorizeError(err error) (string, string) {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return "request_timeout", "recommendation request timed out"
	}
	if model.IsModelInferenceError(err) {
		return "model_inference_error", "recommendation model failed to generate a response"
	}
	return "internal_error", "an unexpected error occurred"
}
