package api

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetProfile returns the account that owns the configured API token.
func (c *Client) GetProfile(ctx context.Context) (*Profile, error) {
	body, err := c.Get(ctx, "/api/v1/me")
	if err != nil {
		return nil, err
	}

	var profile Profile
	if err := json.Unmarshal(body, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile response: %w", err)
	}

	return &profile, nil
}
