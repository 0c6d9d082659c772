package seeds

import (
	"context"
	"fmt"
	"log"
	"math"
	"math/rand"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const factorDim = 8

type track struct {
	title  string
	artist string
	songID string
}

type listenEvent struct {
	track       track
	userID      string
	listenCount int
}

// Setup fills an empty database with a deterministic dataset: listening
// events, a symmetric similarity matrix over the resulting catalog rows,
// and latent factors for the rating model.
func Setup(ctx context.Context, pool *pgxpool.Pool) error {
	rng := rand.New(rand.NewSource(42))

	// Truncate existing data before insert
	log.Println("[seed] truncating existing data")
	if _, err := pool.Exec(ctx, `
		TRUNCATE song_similarity, model_factors, songs RESTART IDENTITY CASCADE
	`); err != nil {
		return fmt.Errorf("truncate: %w", err)
	}

	tracks := trackList()
	users := userList(12)
	events := generateEvents(rng, tracks, users, 90)

	log.Println("[seed] inserting listening events")
	if err := seedSongs(ctx, pool, events); err != nil {
		return fmt.Errorf("seed songs: %w", err)
	}

	log.Println("[seed] inserting similarity matrix")
	if err := seedSimilarity(ctx, pool, rng, events); err != nil {
		return fmt.Errorf("seed similarity: %w", err)
	}

	log.Println("[seed] inserting model factors")
	if err := seedFactors(ctx, pool, rng, tracks, users); err != nil {
		return fmt.Errorf("seed model factors: %w", err)
	}

	log.Println("[seed] seeding complete")
	return nil
}

func trackList() []track {
	entries := []struct{ title, artist string }{
		{"Midnight Mirrors", "The Paper Kites"},
		{"Glass Rivers", "The Paper Kites"},
		{"Slow Parade", "The Paper Kites"},
		{"Neon Harbor", "Violet Arcade"},
		{"Static Bloom", "Violet Arcade"},
		{"Vapor Trails", "Violet Arcade"},
		{"Copper Sky", "June Hollow"},
		{"Driftwood", "June Hollow"},
		{"Low Tide Letters", "June Hollow"},
		{"Cold Engine", "Marlowe & Finch"},
		{"Paper Lanterns", "Marlowe & Finch"},
		{"Silver Thread", "Marlowe & Finch"},
		{"Night Signal", "Orbit Theory"},
		{"Gravity Well", "Orbit Theory"},
		{"Escape Velocity", "Orbit Theory"},
		{"Amber Waves", "Della Rook"},
		{"Hollow Crown", "Della Rook"},
		{"Evergreen", "Della Rook"},
		{"Rust and Rain", "The Casket Boys"},
		{"Ghost Mile", "The Casket Boys"},
		{"Tin Roof Choir", "The Casket Boys"},
		{"Sunday Static", "Iris Vale"},
		{"Porchlight", "Iris Vale"},
		{"Blue Hour", "Iris Vale"},
		{"Last Transmission", "Orbit Theory"},
	}

	tracks := make([]track, len(entries))
	for i, e := range entries {
		tracks[i] = track{
			title:  e.title,
			artist: e.artist,
			songID: fmt.Sprintf("trk-%03d", i+1),
		}
	}
	return tracks
}

func userList(n int) []string {
	users := make([]string, n)
	for i := range users {
		users[i] = fmt.Sprintf("u%03d", i+1)
	}
	return users
}

// generateEvents draws up to n (user, track) listening events, skewed so
// a few users and tracks dominate, deduped per pair. Each event becomes
// one catalog row.
func generateEvents(rng *rand.Rand, tracks []track, users []string, n int) []listenEvent {
	seen := make(map[[2]int]bool)
	var events []listenEvent

	for i := 0; i < n; i++ {
		u := int(math.Floor(math.Pow(rng.Float64(), 1.5) * float64(len(users))))
		u = min(u, len(users)-1)

		t := int(math.Floor(math.Pow(rng.Float64(), 1.3) * float64(len(tracks))))
		t = min(t, len(tracks)-1)

		key := [2]int{u, t}
		if seen[key] {
			continue
		}
		seen[key] = true

		events = append(events, listenEvent{
			track:       tracks[t],
			userID:      users[u],
			listenCount: 1 + rng.Intn(30),
		})
	}

	return events
}

func seedSongs(ctx context.Context, pool *pgxpool.Pool, events []listenEvent) error {
	rows := []string{}
	args := []any{}

	for _, ev := range events {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4, base+5))
		args = append(args, ev.track.title, ev.track.artist, ev.track.songID, ev.userID, ev.listenCount)
	}

	if len(rows) == 0 {
		return nil
	}

	query := "INSERT INTO songs (title, artist, song_id, user_id, listen_count) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

// seedSimilarity writes a symmetric matrix over the catalog rows. Rows
// sharing a song id are near-identical, rows by the same artist score
// high, everything else is low.
func seedSimilarity(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, events []listenEvent) error {
	n := len(events)
	entries := make([][]any, 0, n*n)

	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			score := pairScore(rng, events[i], events[j])
			entries = append(entries, []any{i, j, score})
			if i != j {
				entries = append(entries, []any{j, i, score})
			}
		}
	}

	_, err := pool.CopyFrom(ctx,
		pgx.Identifier{"song_similarity"},
		[]string{"row_i", "row_j", "score"},
		pgx.CopyFromRows(entries),
	)
	return err
}

func pairScore(rng *rand.Rand, a, b listenEvent) float64 {
	switch {
	case a.track.songID == b.track.songID && a.userID == b.userID:
		return 1.0
	case a.track.songID == b.track.songID:
		return 0.98
	case a.track.artist == b.track.artist:
		return round3(0.45 + rng.Float64()*0.4)
	default:
		return round3(rng.Float64() * 0.5)
	}
}

func seedFactors(ctx context.Context, pool *pgxpool.Pool, rng *rand.Rand, tracks []track, users []string) error {
	rows := []string{}
	args := []any{}

	add := func(entity, entityID string, bias float64, factors []float64) {
		base := len(args)
		rows = append(rows, fmt.Sprintf("($%d, $%d, $%d, $%d)", base+1, base+2, base+3, base+4))
		args = append(args, entity, entityID, bias, factors)
	}

	add("global", "mean", 3.5, []float64{})

	for _, u := range users {
		add("user", u, round3(rng.Float64()-0.5), factorVector(rng))
	}
	for _, t := range tracks {
		add("item", t.songID, round3(rng.Float64()-0.5), factorVector(rng))
	}

	query := "INSERT INTO model_factors (entity, entity_id, bias, factors) VALUES " + strings.Join(rows, ", ")

	_, err := pool.Exec(ctx, query, args...)
	return err
}

func factorVector(rng *rand.Rand) []float64 {
	v := make([]float64, factorDim)
	for i := range v {
		v[i] = round3(rng.NormFloat64() * 0.2)
	}
	return v
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
