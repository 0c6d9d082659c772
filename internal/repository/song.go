package repository

import (
	"context"
	"fmt"

	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

// LoadSongs returns every catalog row in insertion order. Row position
// in the result is the row index used by the similarity matrix.
func (r *Repository) LoadSongs(ctx context.Context) ([]domain.Song, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT title, artist, song_id, user_id, listen_count
		 FROM songs
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("query songs: %w", err)
	}
	defer rows.Close()

	var songs []domain.Song
	for rows.Next() {
		var s domain.Song
		if err := rows.Scan(&s.Title, &s.Artist, &s.SongID, &s.UserID, &s.ListenCount); err != nil {
			return nil, fmt.Errorf("scan song: %w", err)
		}
		songs = append(songs, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate over songs: %w", err)
	}
	return songs, nil
}
