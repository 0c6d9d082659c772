package domain

// Recommendation sources.
const (
	SourceContent       = "content"
	SourceCollaborative = "collaborative"
)

type Recommendation struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Source   string `json:"source,omitempty"`
}

type RecommendationMeta struct {
	CacheHit    bool   `json:"cache_hit"`
	GeneratedAt string `json:"generated_at"`
	TotalCount  int    `json:"total_count"`
}

type RecommendationResult struct {
	Recommendations []Recommendation
	CacheHit        bool
}

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

type BatchRequestResult struct {
	Seeds           []string         `json:"seeds"`
	Recommendations []Recommendation `json:"recommendations,omitempty"`
	Status          string           `json:"status"`
	Error           string           `json:"error,omitempty"`
	Message         string           `json:"message,omitempty"`
}

type BatchSummary struct {
	SuccessCount     int   `json:"success_count"`
	FailedCount      int   `json:"failed_count"`
	ProcessingTimeMs int64 `json:"processing_time_ms"`
}

type BatchMeta struct {
	GeneratedAt string `json:"generated_at"`
}

type BatchResponse struct {
	Results  []BatchRequestResult `json:"results"`
	Summary  BatchSummary         `json:"summary"`
	Metadata BatchMeta            `json:"metadata"`
}
