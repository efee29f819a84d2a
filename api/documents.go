package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// ListDocumentsOptions contains options for listing documents.
type ListDocumentsOptions struct {
	Limit  int
	Cursor string
	Title  string // Filter by title (contains)
	Sort   string // title, -title, created, -created, updated, -updated
}

// ListDocuments returns a page of documents visible to the caller.
func (c *Client) ListDocuments(ctx context.Context, opts *ListDocumentsOptions) (*PaginatedResponse[Document], error) {
	params := url.Values{}
	params.Set("limit", "25") // Default limit

	if opts != nil {
		if opts.Limit > 0 {
			params.Set("limit", strconv.Itoa(opts.Limit))
		}
		if opts.Cursor != "" {
			params.Set("cursor", opts.Cursor)
		}
		if opts.Title != "" {
			params.Set("title", opts.Title)
		}
		if opts.Sort != "" {
			params.Set("sort", opts.Sort)
		}
	}

	body, err := c.Get(ctx, "/api/v1/documents?"+params.Encode())
	if err != nil {
		return nil, err
	}

	var result PaginatedResponse[Document]
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to parse documents response: %w", err)
	}

	return &result, nil
}

// GetDocument returns a single document record by ID.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*Document, error) {
	if documentID == "" {
		return nil, fmt.Errorf("document ID is required")
	}

	body, err := c.Get(ctx, "/api/v1/documents/"+url.PathEscape(documentID))
	if err != nil {
		return nil, err
	}

	var doc Document
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse document response: %w", err)
	}

	return &doc, nil
}

// FetchContent returns the raw stored body of a document. Bodies larger than
// MaxContentSize are rejected.
func (c *Client) FetchContent(ctx context.Context, documentID string) ([]byte, error) {
	if documentID == "" {
		return nil, fmt.Errorf("document ID is required")
	}

	path := "/api/v1/documents/" + url.PathEscape(documentID) + "/content"
	req, err := c.newRequest(ctx, http.MethodGet, path, "application/rtf, text/markdown, text/plain, */*", nil)
	if err != nil {
		return nil, err
	}

	return c.send(req, MaxContentSize)
}
