// Package plex provides a client for the Plex watchlist API.
package plex

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Item is a movie on the account watchlist. IMDBID and TMDBID are empty when
// Plex did not supply the corresponding GUID; an item can carry both.
type Item struct {
	Title  string
	Year   int
	IMDBID string
	TMDBID string
	Key    string // Plex metadata key, kept for log context
}

// Client interacts with the Plex watchlist API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     log.With("component", "plex"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// watchlistResponse is the JSON response from /hubs/watchlist.
type watchlistResponse struct {
	MediaContainer struct {
		Hubs []struct {
			Type     string `json:"type"`
			Metadata []struct {
				Title string `json:"title"`
				Year  int    `json:"year"`
				Key   string `json:"key"`
				GUIDs []struct {
					ID string `json:"id"`
				} `json:"Guid"`
			} `json:"Metadata"`
		} `json:"Hub"`
	} `json:"MediaContainer"`
}

// Watchlist returns the movies on the account watchlist. Hubs of any other
// media type are skipped. A fetch failure is returned as an error so callers
// can tell it apart from a genuinely empty watchlist.
func (c *Client) Watchlist(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/hubs/watchlist", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("plex rejected token (status %d)", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result watchlistResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	var items []Item
	for _, hub := range result.MediaContainer.Hubs {
		if hub.Type != "movie" {
			continue
		}
		for _, md := range hub.Metadata {
			item := Item{
				Title: md.Title,
				Year:  md.Year,
				Key:   md.Key,
			}
			for _, guid := range md.GUIDs {
				scheme, value, ok := splitGUID(guid.ID)
				if !ok {
					continue
				}
				switch scheme {
				case "imdb":
					item.IMDBID = value
				case "tmdb":
					item.TMDBID = value
				}
			}
			items = append(items, item)
		}
	}

	c.log.Debug("fetched watchlist", "count", len(items))
	return items, nil
}

// splitGUID splits a Plex GUID like "imdb://tt1160419" into scheme and value.
func splitGUID(guid string) (scheme, value string, ok bool) {
	scheme, value, found := strings.Cut(guid, "://")
	if !found || scheme == "" || value == "" {
		return "", "", false
	}
	return scheme, value, true
}
