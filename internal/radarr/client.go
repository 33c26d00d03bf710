// Package radarr provides a client for the Radarr v3 API.
package radarr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// ErrNotFound is returned when a movie doesn't exist in Radarr.
var ErrNotFound = errors.New("movie not found")

// Client is a Radarr API client.
type Client struct {
	baseURL    string
	apiKey     string
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

// NewClient creates a new Radarr client.
func NewClient(baseURL, apiKey string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		apiKey:  apiKey,
		log:     log.With("component", "radarr"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Movies returns all movies tracked by Radarr. Full snapshot each call; no
// pagination state is retained.
func (c *Client) Movies(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	if err := c.getJSON(ctx, "/api/v3/movie", &movies); err != nil {
		return nil, fmt.Errorf("fetch movies: %w", err)
	}
	return movies, nil
}

// QualityProfiles returns the quality profile definitions.
func (c *Client) QualityProfiles(ctx context.Context) ([]QualityProfile, error) {
	var profiles []QualityProfile
	if err := c.getJSON(ctx, "/api/v3/qualityprofile", &profiles); err != nil {
		return nil, fmt.Errorf("fetch quality profiles: %w", err)
	}
	return profiles, nil
}

// UpdateQualityProfile sets a movie's quality profile. The PUT endpoint
// requires the complete record, so this is a read-modify-write: the current
// record is fetched into a generic JSON object and written back with only the
// profile field changed. Dropping any other field on write would silently
// reset unrelated settings.
func (c *Client) UpdateQualityProfile(ctx context.Context, movieID int64, profileID int) error {
	path := fmt.Sprintf("/api/v3/movie/%d", movieID)

	var record map[string]json.RawMessage
	if err := c.getJSON(ctx, path, &record); err != nil {
		return fmt.Errorf("fetch movie %d: %w", movieID, err)
	}

	encoded, err := json.Marshal(profileID)
	if err != nil {
		return fmt.Errorf("encode profile id: %w", err)
	}
	record["qualityProfileId"] = encoded

	body, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode movie %d: %w", movieID, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("update movie %d failed with status: %d", movieID, resp.StatusCode)
	}

	c.log.Debug("updated quality profile", "movie_id", movieID, "profile_id", profileID)
	return nil
}

// getJSON performs an authenticated GET and decodes the JSON response into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
