package domain

// Song is one row of the catalog: a listening event tying a track to the
// user who played it. Multiple rows may share the same (Title, Artist);
// SongID identifies the track itself and is the canonical dedup key.
type Song struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	SongID      string `json:"song_id"`
	UserID      string `json:"user_id"`
	ListenCount int    `json:"listen_count"`
}
