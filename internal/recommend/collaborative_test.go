package recommend

import (
	"context"
	"testing"

	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

func TestCollaborativeTopN(t *testing.T) {
	predictor := &stubPredictor{scores: map[string]float64{
		"id-a": 1, "id-b": 5, "id-c": 3, "id-d": 2,
		"id-e": 4, "id-f": 0, "id-g": 2.5, "id-h": -1,
	}}
	resolver := newStubResolver()
	collab := NewCollaborative(testCatalog(), predictor, resolver)

	recs, err := collab.RecommendForUser(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTitles(t, recs, []string{"B", "E", "C", "G", "D"})

	for _, r := range recs {
		if r.Source != domain.SourceCollaborative {
			t.Errorf("expected collaborative source, got %q", r.Source)
		}
	}
	if n := resolver.totalCalls(); n != 5 {
		t.Errorf("expected one art lookup per result, got %d", n)
	}
}

func TestCollaborativeSkipsFailedEstimates(t *testing.T) {
	predictor := &stubPredictor{
		scores: map[string]float64{
			"id-a": 1, "id-b": 5, "id-c": 3, "id-d": 2,
			"id-e": 4, "id-f": 0, "id-g": 2.5, "id-h": -1,
		},
		fail: map[string]bool{"id-b": true},
	}
	collab := NewCollaborative(testCatalog(), predictor, newStubResolver())

	// id-b stays unscored; the rest of the pass continues.
	recs, err := collab.RecommendForUser(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTitles(t, recs, []string{"E", "C", "G", "D", "A"})
}

func TestCollaborativeTiesKeepCatalogOrder(t *testing.T) {
	scores := make(map[string]float64)
	for _, id := range testCatalog().SongIDs() {
		scores[id] = 1.0
	}
	collab := NewCollaborative(testCatalog(), &stubPredictor{scores: scores}, newStubResolver())

	recs, err := collab.RecommendForUser(context.Background(), "u1", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertTitles(t, recs, []string{"A", "B", "C", "D", "E"})
}

func TestCollaborativeTopNLargerThanCatalog(t *testing.T) {
	collab := NewCollaborative(testCatalog(), &stubPredictor{scores: map[string]float64{}}, newStubResolver())

	recs, err := collab.RecommendForUser(context.Background(), "u1", 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 8 {
		t.Errorf("expected 8 results, got %d", len(recs))
	}
}

func TestCollaborativeCanceledContext(t *testing.T) {
	collab := NewCollaborative(testCatalog(), &stubPredictor{scores: map[string]float64{}}, newStubResolver())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := collab.RecommendForUser(ctx, "u1", 5); err == nil {
		t.Error("expected error for canceled context")
	}
}
