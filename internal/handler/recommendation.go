package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

// POST /recommendations/hybrid
func (h *Handler) GetHybridRecommendations(w http.ResponseWriter, r *http.Request) {
	// Parse and validate seeds
	var req HybridRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a seeds array")
		return
	}
	if len(req.Seeds) > maxSeeds {
		writeError(w, http.StatusBadRequest, "invalid_parameter",
			fmt.Sprintf("At most %d seeds are allowed", maxSeeds))
		return
	}

	result, err := h.service.GetHybridRecommendations(r.Context(), req.Seeds)
	if err != nil {
		// Request timeout
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			writeError(w, http.StatusServiceUnavailable, "request_timeout",
				"Request timed out, please try again")
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	resp := HybridResponse{
		Seeds:           req.Seeds,
		Recommendations: result.Recommendations,
		Metadata: domain.RecommendationMeta{
			CacheHit:    result.CacheHit,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			TotalCount:  len(result.Recommendations),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}
