package artwork

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBytes = 1 << 20

// SearchClient resolves album art through an external track search API.
type SearchClient struct {
	client  *http.Client
	baseURL string
	token   string
}

// NewSearchClient builds a client against the given API base URL. The
// token is optional; when set it is sent as a bearer credential.
func NewSearchClient(baseURL, token string, timeout time.Duration) *SearchClient {
	return &SearchClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type searchResponse struct {
	Tracks struct {
		Items []struct {
			Album struct {
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"album"`
		} `json:"items"`
	} `json:"tracks"`
}

// Resolve queries the search API for the track and returns the first
// album image of the first match. Any failure, non-200 response or empty
// result set degrades to FallbackURL.
func (c *SearchClient) Resolve(ctx context.Context, title, artist string) string {
	params := url.Values{
		"q":    {fmt.Sprintf("track: %s artist: %s", title, artist)},
		"type": {"track"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return FallbackURL
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return FallbackURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return FallbackURL
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return FallbackURL
	}

	var parsed searchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return FallbackURL
	}

	items := parsed.Tracks.Items
	if len(items) == 0 || len(items[0].Album.Images) == 0 {
		return FallbackURL
	}
	if u := items[0].Album.Images[0].URL; u != "" {
		return u
	}
	return FallbackURL
}
