package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SearchOptions contains options for searching documents.
type SearchOptions struct {
	Query  string // Full-text search term
	Owner  string // Owner ID filter
	Format string // rtf or markdown
	Limit  int    // Max results (default 25, max 200)
}

// SearchResult represents a single search hit.
type SearchResult struct {
	Document Document `json:"document"`
	Excerpt  string   `json:"excerpt"`
	Score    float64  `json:"score"`
}

// SearchResponse represents the search API response.
type SearchResponse struct {
	Results   []SearchResult `json:"results"`
	Start     int            `json:"start"`
	Limit     int            `json:"limit"`
	Size      int            `json:"size"`
	TotalSize int            `json:"totalSize"`
}

// HasMore returns true if there are more results available.
func (r *SearchResponse) HasMore() bool {
	return r.Start+r.Size < r.TotalSize
}

// Search performs a full-text document search.
func (c *Client) Search(ctx context.Context, opts *SearchOptions) (*SearchResponse, error) {
	if opts == nil || (strings.TrimSpace(opts.Query) == "" && opts.Owner == "" && opts.Format == "") {
		return nil, fmt.Errorf("search requires a query or filters")
	}

	params := url.Values{}
	if q := strings.TrimSpace(opts.Query); q != "" {
		params.Set("q", q)
	}
	if opts.Owner != "" {
		params.Set("owner", opts.Owner)
	}
	if opts.Format != "" {
		params.Set("format", opts.Format)
	}

	// Pagination
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	} else {
		params.Set("limit", "25")
	}

	body, err := c.Get(ctx, "/api/v1/search?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result SearchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	return &result, nil
}
