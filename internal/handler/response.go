package handler

import "github.com/tunehawk/music-recommendation-service/internal/domain"

type HybridRequest struct {
	Seeds []string `json:"seeds"`
}

type BatchRequest struct {
	Requests []HybridRequest `json:"requests"`
}

type HybridResponse struct {
	Seeds           []string                  `json:"seeds"`
	Recommendations []domain.Recommendation   `json:"recommendations"`
	Metadata        domain.RecommendationMeta `json:"metadata"`
}

type SongEntry struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
}

type SongsResponse struct {
	Songs []SongEntry `json:"songs"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
