package artwork

import (
	"context"
	"sync"
)

// Memo wraps a Resolver with a process-lifetime cache keyed by the exact
// (title, artist) pair. A pair is looked up externally at most once;
// fallback results are memoized too. Safe for concurrent use.
type Memo struct {
	next Resolver
	mu   sync.RWMutex
	urls map[string]string
}

func NewMemo(next Resolver) *Memo {
	return &Memo{
		next: next,
		urls: make(map[string]string),
	}
}

func memoKey(title, artist string) string {
	return title + "\x00" + artist
}

func (m *Memo) Resolve(ctx context.Context, title, artist string) string {
	key := memoKey(title, artist)

	m.mu.RLock()
	u, ok := m.urls[key]
	m.mu.RUnlock()
	if ok {
		return u
	}

	u = m.next.Resolve(ctx, title, artist)

	m.mu.Lock()
	m.urls[key] = u
	m.mu.Unlock()
	return u
}
