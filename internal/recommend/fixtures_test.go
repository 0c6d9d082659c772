package recommend

import (
	"context"
	"sync"
	"testing"

	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
	"github.com/tunehawk/music-recommendation-service/internal/model"
	"github.com/tunehawk/music-recommendation-service/internal/similarity"
)

// stubResolver returns "img://<title>" and counts lookups per pair.
type stubResolver struct {
	mu    sync.Mutex
	calls map[string]int
}

func newStubResolver() *stubResolver {
	return &stubResolver{calls: make(map[string]int)}
}

func (r *stubResolver) Resolve(_ context.Context, title, artist string) string {
	r.mu.Lock()
	r.calls[title+"/"+artist]++
	r.mu.Unlock()
	return "img://" + title
}

func (r *stubResolver) totalCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		n += c
	}
	return n
}

// stubPredictor scores by song id and can fail selected songs.
type stubPredictor struct {
	scores map[string]float64
	fail   map[string]bool
}

func (p *stubPredictor) Estimate(_, songID string) (float64, error) {
	if p.fail[songID] {
		return 0, &model.ModelInferenceError{Msg: "estimate failed for " + songID}
	}
	return p.scores[songID], nil
}

func testRows() []domain.Song {
	return []domain.Song{
		{Title: "A", Artist: "artist1", SongID: "id-a", UserID: "u1", ListenCount: 5},
		{Title: "B", Artist: "artist1", SongID: "id-b", UserID: "u1", ListenCount: 3},
		{Title: "C", Artist: "artist2", SongID: "id-c", UserID: "u2", ListenCount: 4},
		{Title: "D", Artist: "artist2", SongID: "id-d", UserID: "u2", ListenCount: 2},
		{Title: "E", Artist: "artist3", SongID: "id-e", UserID: "u3", ListenCount: 6},
		{Title: "F", Artist: "artist3", SongID: "id-f", UserID: "u3", ListenCount: 1},
		{Title: "G", Artist: "artist4", SongID: "id-g", UserID: "u4", ListenCount: 2},
		{Title: "H", Artist: "artist5", SongID: "id-h", UserID: "u5", ListenCount: 0},
	}
}

func testMatrix(t *testing.T, dim int) *similarity.Matrix {
	t.Helper()
	scores := [][]float64{
		{1.00, 0.90, 0.80, 0.70, 0.60, 0.50, 0.40, 0.10},
		{0.90, 1.00, 0.85, 0.75, 0.65, 0.55, 0.45, 0.10},
		{0.80, 0.85, 1.00, 0.90, 0.30, 0.20, 0.10, 0.05},
		{0.70, 0.75, 0.90, 1.00, 0.35, 0.25, 0.15, 0.05},
		{0.60, 0.65, 0.30, 0.35, 1.00, 0.95, 0.05, 0.02},
		{0.50, 0.55, 0.20, 0.25, 0.95, 1.00, 0.00, 0.02},
		{0.40, 0.45, 0.10, 0.15, 0.05, 0.00, 1.00, 0.30},
		{0.10, 0.10, 0.05, 0.05, 0.02, 0.02, 0.30, 1.00},
	}
	m, err := similarity.New(scores, dim)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}
	return m
}

func testCatalog() *catalog.Catalog {
	return catalog.New(testRows())
}

func titlesOf(recs []domain.Recommendation) []string {
	titles := make([]string, len(recs))
	for i, r := range recs {
		titles[i] = r.Title
	}
	return titles
}

func assertTitles(t *testing.T, recs []domain.Recommendation, want []string) {
	t.Helper()
	got := titlesOf(recs)
	if len(got) != len(want) {
		t.Fatalf("expected titles %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected titles %v, got %v", want, got)
		}
	}
}
