package artwork

import "context"

// FallbackURL is returned whenever the external lookup cannot produce an
// album image.
const FallbackURL = "https://i.postimg.cc/0QNxYz4V/social.png"

// Resolver maps a (title, artist) pair to an album image URL. It is
// total: implementations always return a usable URL and never fail.
type Resolver interface {
	Resolve(ctx context.Context, title, artist string) string
}
