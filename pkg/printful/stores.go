package printful

import (
	"context"
	"fmt"
	"net/http"
)

// Stores lists the stores attached to the account.
func (c *Client) Stores(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/stores", nil, nil, nil)
}

// Store fetches a single store.
func (c *Client) Store(ctx context.Context, storeID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/stores/%d", storeID), nil, nil, nil)
}
