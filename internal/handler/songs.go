package handler

import "net/http"

// GET /songs
func (h *Handler) ListSongs(w http.ResponseWriter, r *http.Request) {
	songs := h.service.ListSongs()

	entries := make([]SongEntry, 0, len(songs))
	for _, s := range songs {
		entries = append(entries, SongEntry{Title: s.Title, Artist: s.Artist})
	}

	writeJSON(w, http.StatusOK, SongsResponse{Songs: entries})
}
