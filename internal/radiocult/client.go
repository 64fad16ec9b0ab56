/*
Copyright (C) 2026 Friends Incode

SPDX-License-Identifier: AGPL-3.0-or-later
*/

// Package radiocult is a thin client for the Radiocult station API.
package radiocult

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Client talks to the Radiocult station API with bearer authentication.
// Session cookies can be attached for the endpoints that require a logged-in
// web session on top of the API key (the track media endpoint).
type Client struct {
	baseURL    string
	stationID  string
	apiKey     string
	cookies    []*http.Cookie
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a station API client.
func NewClient(baseURL, stationID, apiKey string, logger zerolog.Logger) (*Client, error) {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if stationID == "" {
		return nil, fmt.Errorf("station id is required")
	}

	return &Client{
		baseURL:   baseURL,
		stationID: stationID,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger.With().Str("component", "radiocult").Logger(),
	}, nil
}

// SetSessionCookies attaches web-session cookies (obtained from a browser
// login) to subsequent requests.
func (c *Client) SetSessionCookies(cookies []*http.Cookie) {
	c.cookies = cookies
}

// Schedule fetches schedule items between start and end, inclusive of both
// days.
func (c *Client) Schedule(ctx context.Context, start, end time.Time) ([]Show, error) {
	endpoint := fmt.Sprintf("%s/%s/schedule", c.baseURL, c.stationID)
	params := url.Values{
		"startDate": {start.UTC().Format("2006-01-02T00:00:00Z")},
		"endDate":   {end.UTC().Format("2006-01-02T23:59:59Z")},
	}

	var payload struct {
		Schedules []Show `json:"schedules"`
	}
	if err := c.getJSON(ctx, endpoint, params, &payload); err != nil {
		return nil, fmt.Errorf("fetch schedule: %w", err)
	}

	c.logger.Debug().
		Time("start", start).
		Time("end", end).
		Int("shows", len(payload.Schedules)).
		Msg("fetched schedule")
	return payload.Schedules, nil
}

// Track fetches track metadata by id. Returns nil when the id is absent from
// the response.
func (c *Client) Track(ctx context.Context, trackID string) (*Track, error) {
	endpoint := fmt.Sprintf("%s/%s/media/track", c.baseURL, c.stationID)
	params := url.Values{"trackId": {trackID}}

	var payload struct {
		Tracks []Track `json:"tracks"`
	}
	if err := c.getJSON(ctx, endpoint, params, &payload); err != nil {
		return nil, fmt.Errorf("fetch track %s: %w", trackID, err)
	}

	for i := range payload.Tracks {
		if payload.Tracks[i].ID == trackID {
			return &payload.Tracks[i], nil
		}
	}
	return nil, nil
}

// Artist fetches an artist profile by id.
func (c *Client) Artist(ctx context.Context, artistID string) (*Artist, error) {
	endpoint := fmt.Sprintf("%s/%s/artists/%s", c.baseURL, c.stationID, url.PathEscape(artistID))

	var payload struct {
		Artist Artist `json:"artist"`
	}
	if err := c.getJSON(ctx, endpoint, nil, &payload); err != nil {
		return nil, fmt.Errorf("fetch artist %s: %w", artistID, err)
	}
	return &payload.Artist, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out any) error {
	if len(params) > 0 {
		endpoint = endpoint + "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	for _, cookie := range c.cookies {
		req.AddCookie(cookie)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
