// Package api provides the REST client for the remote document store.
package api

import (
	"errors"
	"net/http"
	"time"
)

// Document formats stored in Document.Format.
const (
	FormatRTF      = "rtf"
	FormatMarkdown = "markdown"
)

// PaginatedResponse wraps paginated API responses.
type PaginatedResponse[T any] struct {
	Results []T   `json:"results"`
	Links   Links `json:"_links,omitempty"`
}

// Links contains pagination and navigation links.
type Links struct {
	Next  string `json:"next,omitempty"`
	Self  string `json:"self,omitempty"`
	WebUI string `json:"webui,omitempty"`
}

// HasMore returns true if there are more results available.
func (p *PaginatedResponse[T]) HasMore() bool {
	return p.Links.Next != ""
}

// Document is a document record. The body is fetched separately with
// FetchContent.
type Document struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Format    string `json:"format,omitempty"` // rtf (default) or markdown
	OwnerID   string `json:"ownerId,omitempty"`
	Size      int64  `json:"size,omitempty"`
	CreatedAt Time   `json:"createdAt,omitempty"`
	UpdatedAt Time   `json:"updatedAt,omitempty"`
	Links     Links  `json:"_links,omitempty"`
}

// ContentFormat returns the document's body format, defaulting to RTF.
func (d *Document) ContentFormat() string {
	if d.Format == "" {
		return FormatRTF
	}
	return d.Format
}

// Profile is the account the API token belongs to.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role,omitempty"`
}

// Time is a wrapper around time.Time for custom JSON parsing.
type Time struct {
	time.Time
}

// UnmarshalJSON parses ISO 8601 timestamps.
func (t *Time) UnmarshalJSON(data []byte) error {
	s := string(data)

	// Handle null or empty
	if s == "null" || s == `""` || s == "" {
		return nil
	}

	// Remove quotes if present
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		// Try alternative format
		parsed, err = time.Parse("2006-01-02T15:04:05.000Z", s)
		if err != nil {
			return err
		}
	}

	t.Time = parsed
	return nil
}

// MarshalJSON formats time in ISO 8601 format.
func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339) + `"`), nil
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors,omitempty"`
}

func (e *ErrorResponse) Error() string {
	if len(e.Errors) > 0 {
		return e.Errors[0]
	}
	return e.Message
}

// IsNotFound reports whether err is an API 404 response.
func IsNotFound(err error) bool {
	var errResp *ErrorResponse
	return errors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound
}
