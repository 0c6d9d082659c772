package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// POST /recommendations/batch
func (h *Handler) GetBatchRecommendations(w http.ResponseWriter, r *http.Request) {
	// Parse and validate request list
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_body", "Request body must be JSON with a requests array")
		return
	}
	if len(req.Requests) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_parameter", "Batch must contain at least one request")
		return
	}
	if len(req.Requests) > maxBatchSize {
		writeError(w, http.StatusBadRequest, "invalid_parameter",
			fmt.Sprintf("Batch size must not exceed %d", maxBatchSize))
		return
	}

	requests := make([][]string, len(req.Requests))
	for i, item := range req.Requests {
		if len(item.Seeds) > maxSeeds {
			writeError(w, http.StatusBadRequest, "invalid_parameter",
				fmt.Sprintf("Request %d: at most %d seeds are allowed", i, maxSeeds))
			return
		}
		requests[i] = item.Seeds
	}

	// Call service
	result, err := h.service.GetBatchRecommendations(r.Context(), requests)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "An unexpected error occurred")
		return
	}

	writeJSON(w, http.StatusOK, result)
}
