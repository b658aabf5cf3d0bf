package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultImageAPI  = "https://api.openverse.org"
	placeholderImage = "/placeholder.svg"
)

// ImageClient resolves a clue's image keyword to a picture URL via an
// Openverse-compatible search API. Lookups degrade to a placeholder and
// never surface an error to the player.
type ImageClient struct {
	baseURL string
	http    *http.Client
}

// NewImageClient creates a client; baseURL defaults to Openverse.
func NewImageClient(baseURL string) *ImageClient {
	if baseURL == "" {
		baseURL = defaultImageAPI
	}
	return &ImageClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

// Lookup returns a thumbnail URL for the keyword, or the placeholder.
func (c *ImageClient) Lookup(ctx context.Context, keyword string) string {
	if keyword == "" {
		return placeholderImage
	}

	u := fmt.Sprintf("%s/v1/images/?q=%s&page_size=1", c.baseURL, url.QueryEscape(keyword))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return placeholderImage
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Err(err).Str("keyword", keyword).Msg("image lookup failed")
		return placeholderImage
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn().Int("status", resp.StatusCode).Str("keyword", keyword).Msg("image lookup failed")
		return placeholderImage
	}

	var body struct {
		Results []struct {
			Thumbnail string `json:"thumbnail"`
			URL       string `json:"url"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Results) == 0 {
		return placeholderImage
	}

	if body.Results[0].Thumbnail != "" {
		return body.Results[0].Thumbnail
	}
	if body.Results[0].URL != "" {
		return body.Results[0].URL
	}
	return placeholderImage
}
