package printful

import (
	"context"
	"net/http"
)

// OAuthScopes lists the scopes granted to the authentication token.
func (c *Client) OAuthScopes(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/oauth/scopes", nil, nil, nil)
}
