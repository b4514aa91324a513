// Package wikimedia looks up portrait thumbnails for quiz subjects via
// the Wikipedia API. Lookups degrade silently: any failure falls back to
// a generated placeholder so the quiz never blocks on images.
package wikimedia

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/clients"
)

const (
	defaultBaseURL     = "https://en.wikipedia.org"
	placeholderBaseURL = "https://ui-avatars.com/api/"
	thumbnailSize      = 300
)

type Client struct {
	base *clients.BaseClient
}

func NewClient() *Client {
	return NewClientWithBaseURL(defaultBaseURL)
}

func NewClientWithBaseURL(baseURL string) *Client {
	base := clients.NewBaseClient(baseURL)
	base.SetTimeout(10 * time.Second)
	base.SetHeader("Accept", "application/json")
	return &Client{base: base}
}

type pageImagesResponse struct {
	Query struct {
		Pages map[string]struct {
			Thumbnail *struct {
				Source string `json:"source"`
			} `json:"thumbnail"`
		} `json:"pages"`
	} `json:"query"`
}

// ImageURL resolves a portrait URL for the named person. It tries a
// direct pageimages lookup, then an opensearch title resolution, and
// finally returns a placeholder. It never returns an error.
func (c *Client) ImageURL(ctx context.Context, name string) string {
	if src, err := c.pageImage(ctx, name); err == nil && src != "" {
		return src
	}

	title, err := c.resolveTitle(ctx, name)
	if err == nil && title != "" && title != name {
		if src, err := c.pageImage(ctx, title); err == nil && src != "" {
			return src
		}
	}

	log.Warn().Str("name", name).Msg("no wikipedia thumbnail, using placeholder")
	return PlaceholderURL(name)
}

func (c *Client) pageImage(ctx context.Context, title string) (string, error) {
	endpoint := fmt.Sprintf(
		"/w/api.php?action=query&prop=pageimages&format=json&pithumbsize=%d&origin=*&titles=%s",
		thumbnailSize, url.QueryEscape(title),
	)
	body, err := c.base.Get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	var resp pageImagesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("decode pageimages response: %w", err)
	}
	for _, page := range resp.Query.Pages {
		if page.Thumbnail != nil && page.Thumbnail.Source != "" {
			return page.Thumbnail.Source, nil
		}
	}
	return "", nil
}

// resolveTitle runs an opensearch query and returns the best-matching
// page title, if any.
func (c *Client) resolveTitle(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf(
		"/w/api.php?action=opensearch&format=json&limit=1&origin=*&search=%s",
		url.QueryEscape(name),
	)
	body, err := c.base.Get(ctx, endpoint)
	if err != nil {
		return "", err
	}

	// Opensearch responds with [query, [titles], [descriptions], [urls]].
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", fmt.Errorf("decode opensearch response: %w", err)
	}
	if len(raw) < 2 {
		return "", nil
	}
	var titles []string
	if err := json.Unmarshal(raw[1], &titles); err != nil {
		return "", fmt.Errorf("decode opensearch titles: %w", err)
	}
	if len(titles) == 0 {
		return "", nil
	}
	return titles[0], nil
}

// PlaceholderURL builds a deterministic avatar URL from the name.
func PlaceholderURL(name string) string {
	return fmt.Sprintf("%s?name=%s&size=%d&background=random",
		placeholderBaseURL, url.QueryEscape(name), thumbnailSize)
}
