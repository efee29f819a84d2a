package document

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/open-cli-collective/rtfdoc/api"
	"github.com/open-cli-collective/rtfdoc/internal/view"
)

// loaded is a fetched document with its converted body.
type loaded struct {
	Document *api.Document `json:"document"`
	Body     *view.Body    `json:"body"`
}

// fetch retrieves the record and raw body of documentID. Conversion only
// starts once both have arrived and ctx is still live.
func fetch(ctx context.Context, client *api.Client, documentID string) (*loaded, error) {
	doc, err := client.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	raw, err := client.FetchContent(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document content: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	body, err := view.ConvertBody(doc.ContentFormat(), raw)
	if err != nil {
		return nil, err
	}
	for _, w := range body.Warnings {
		slog.Debug("conversion warning", "document", documentID, "warning", w)
	}

	return &loaded{Document: doc, Body: body}, nil
}
