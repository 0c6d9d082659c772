package catalog

import (
	"github.com/tunehawk/music-recommendation-service/internal/domain"
)

// Catalog is the in-memory song table, built once at startup and
// read-only afterwards. Row positions match the similarity matrix rows.
type Catalog struct {
	rows       []domain.Song
	titleIndex map[string]int // title -> first row holding it
	idIndex    map[string]int // song_id -> first row holding it
	songIDs    []string       // distinct song ids, first-occurrence order
}

func New(rows []domain.Song) *Catalog {
	c := &Catalog{
		rows:       rows,
		titleIndex: make(map[string]int, len(rows)),
		idIndex:    make(map[string]int, len(rows)),
	}
	for i, s := range rows {
		if _, ok := c.titleIndex[s.Title]; !ok {
			c.titleIndex[s.Title] = i
		}
		if _, ok := c.idIndex[s.SongID]; !ok {
			c.idIndex[s.SongID] = i
			c.songIDs = append(c.songIDs, s.SongID)
		}
	}
	return c
}

func (c *Catalog) Len() int {
	return len(c.rows)
}

func (c *Catalog) Row(i int) domain.Song {
	return c.rows[i]
}

// Rows returns the backing slice. Callers must not modify it.
func (c *Catalog) Rows() []domain.Song {
	return c.rows
}

// IndexOfTitle returns the row index of the first row with an exact
// title match.
func (c *Catalog) IndexOfTitle(title string) (int, bool) {
	i, ok := c.titleIndex[title]
	return i, ok
}

// ByID returns the first row carrying the given song id.
func (c *Catalog) ByID(songID string) (domain.Song, bool) {
	i, ok := c.idIndex[songID]
	if !ok {
		return domain.Song{}, false
	}
	return c.rows[i], true
}

// SongIDs returns the distinct song ids in first-occurrence order.
// Callers must not modify the returned slice.
func (c *Catalog) SongIDs() []string {
	return c.songIDs
}

// DistinctTitles returns one row per distinct title, in catalog order.
func (c *Catalog) DistinctTitles() []domain.Song {
	seen := make(map[string]bool, len(c.titleIndex))
	out := make([]domain.Song, 0, len(c.titleIndex))
	for _, s := range c.rows {
		if seen[s.Title] {
			continue
		}
		seen[s.Title] = true
		out = append(out, s)
	}
	return out
}
