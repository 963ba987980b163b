package printful

import (
	"context"
	"net/http"
)

// Webhooks fetches the current webhook configuration.
func (c *Client) Webhooks(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/webhooks", nil, nil, opts)
}

// SetWebhooksParams describes the webhook configuration to install.
type SetWebhooksParams struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
	Types  []string `json:"types,omitempty"`
}

// SetWebhooks installs or replaces the webhook configuration.
func (c *Client) SetWebhooks(ctx context.Context, params SetWebhooksParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/webhooks", nil, params, opts)
}

// DeleteWebhooks removes the webhook configuration.
func (c *Client) DeleteWebhooks(ctx context.Context, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/webhooks", nil, nil, opts)
}
