package recommend

import (
	"context"
	"testing"

	"github.com/tunehawk/music-recommendation-service/internal/catalog"
	"github.com/tunehawk/music-recommendation-service/internal/domain"
	"github.com/tunehawk/music-recommendation-service/internal/similarity"
)

func newContentBased(t *testing.T) (*ContentBased, *stubResolver) {
	t.Helper()
	c := testCatalog()
	resolver := newStubResolver()
	return NewContentBased(c, testMatrix(t, c.Len()), resolver), resolver
}

func TestContentRecommendSingleSeed(t *testing.T) {
	cb, resolver := newContentBased(t)

	recs := cb.Recommend(context.Background(), []string{"A"})
	assertTitles(t, recs, []string{"B", "C", "D", "E", "F"})

	for _, r := range recs {
		if r.Source != domain.SourceContent {
			t.Errorf("expected content source, got %q", r.Source)
		}
		if r.ImageURL != "img://"+r.Title {
			t.Errorf("expected resolved image for %s, got %q", r.Title, r.ImageURL)
		}
	}
	if n := resolver.totalCalls(); n != 5 {
		t.Errorf("expected one art lookup per emitted title, got %d", n)
	}
}

func TestContentNeverRecommendsSeedItself(t *testing.T) {
	cb, _ := newContentBased(t)

	for _, seed := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		for _, title := range titlesOf(cb.Recommend(context.Background(), []string{seed})) {
			if title == seed {
				t.Errorf("seed %q appeared in its own recommendations", seed)
			}
		}
	}
}

func TestContentUnknownSeedSkipped(t *testing.T) {
	cb, _ := newContentBased(t)

	if recs := cb.Recommend(context.Background(), []string{"song not in catalog"}); len(recs) != 0 {
		t.Errorf("expected no recommendations, got %v", titlesOf(recs))
	}

	// An unknown seed does not abort the rest of the request.
	recs := cb.Recommend(context.Background(), []string{"song not in catalog", "A"})
	assertTitles(t, recs, []string{"B", "C", "D", "E", "F"})
}

func TestContentMultiSeedOrderAndDedup(t *testing.T) {
	cb, resolver := newContentBased(t)

	// Seed A contributes B,C,D,E,F. Seed E's top ranks are F,B,A,D,C;
	// only A is new, appended after A's block.
	recs := cb.Recommend(context.Background(), []string{"A", "E"})
	assertTitles(t, recs, []string{"B", "C", "D", "E", "F", "A"})

	if n := resolver.totalCalls(); n != 6 {
		t.Errorf("expected 6 art lookups, got %d", n)
	}
}

func TestContentEmptySeeds(t *testing.T) {
	cb, _ := newContentBased(t)

	if recs := cb.Recommend(context.Background(), nil); len(recs) != 0 {
		t.Errorf("expected empty result, got %v", titlesOf(recs))
	}
}

func TestContentFewerThanFiveAvailable(t *testing.T) {
	rows := []domain.Song{
		{Title: "A", Artist: "artist1", SongID: "id1", UserID: "u1", ListenCount: 5},
		{Title: "B", Artist: "artist1", SongID: "id2", UserID: "u1", ListenCount: 5},
	}
	c := catalog.New(rows)
	m, err := similarity.New([][]float64{
		{1.0, 0.9},
		{0.9, 1.0},
	}, 2)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}
	cb := NewContentBased(c, m, newStubResolver())

	recs := cb.Recommend(context.Background(), []string{"A"})
	assertTitles(t, recs, []string{"B"})
}

func TestContentDuplicateRowsOfSeedNotRecommended(t *testing.T) {
	// The same track listened to by two users yields two catalog rows
	// with near-identical similarity; neither may surface when that
	// track is the seed.
	rows := []domain.Song{
		{Title: "A", Artist: "artist1", SongID: "id-a", UserID: "u1", ListenCount: 5},
		{Title: "A", Artist: "artist1", SongID: "id-a", UserID: "u2", ListenCount: 2},
		{Title: "B", Artist: "artist1", SongID: "id-b", UserID: "u1", ListenCount: 3},
	}
	c := catalog.New(rows)
	m, err := similarity.New([][]float64{
		{1.00, 0.98, 0.50},
		{0.98, 1.00, 0.50},
		{0.50, 0.50, 1.00},
	}, 3)
	if err != nil {
		t.Fatalf("build matrix: %v", err)
	}
	cb := NewContentBased(c, m, newStubResolver())

	recs := cb.Recommend(context.Background(), []string{"A"})
	for _, title := range titlesOf(recs) {
		if title == "A" {
			t.Fatal("seed recommended to itself via duplicate catalog row")
		}
	}
	assertTitles(t, recs, []string{"B"})
}

func TestContentTiesKeepRowOrder(t *testing.T) {
	cb, _ := newContentBased(t)

	// Row H scores: G=0.30, then A and B tie at 0.10, C and D tie at
	// 0.05; stable sort keeps the lower row index first.
	recs := cb.Recommend(context.Background(), []string{"H"})
	assertTitles(t, recs, []string{"G", "A", "B", "C", "D"})
}
