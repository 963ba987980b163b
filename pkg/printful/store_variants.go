package printful

import (
	"context"
	"net/http"
)

// StoreVariant fetches a sync variant by numeric or external id.
func (c *Client) StoreVariant(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/store/variants/"+normalizeID(id), nil, nil, opts)
}

// CreateStoreVariant adds a variant to an existing sync product.
func (c *Client) CreateStoreVariant(ctx context.Context, productID string, variant map[string]any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/store/products/"+normalizeID(productID)+"/variants", nil, variant, opts)
}

// UpdateStoreVariant updates a sync variant.
func (c *Client) UpdateStoreVariant(ctx context.Context, id string, variant map[string]any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/store/variants/"+normalizeID(id), nil, variant, opts)
}

// DeleteStoreVariant removes a sync variant.
func (c *Client) DeleteStoreVariant(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/store/variants/"+normalizeID(id), nil, nil, opts)
}
