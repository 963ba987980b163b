package printful

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// CreateStoreProductParams describes a sync product with its variants.
type CreateStoreProductParams struct {
	SyncProduct  map[string]any   `json:"sync_product"`
	SyncVariants []map[string]any `json:"sync_variants"`
}

// CreateStoreProduct creates a new sync product in the store.
func (c *Client) CreateStoreProduct(ctx context.Context, params CreateStoreProductParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/store/products", nil, params, opts)
}

// StoreProductListOptions filters the sync product listing.
type StoreProductListOptions struct {
	Offset int
	// Limit caps the number of returned items; zero means the API default
	// of 20.
	Limit int
	// Status filters by sync status (all, synced, unsynced, ignored,
	// imported, discontinued, out_of_stock).
	Status string
	Search string
}

// StoreProducts lists sync products.
func (c *Client) StoreProducts(ctx context.Context, opts StoreProductListOptions, reqOpts ...RequestOption) (*Response, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(opts.Offset))
	q.Set("limit", strconv.Itoa(pageLimit(opts.Limit)))
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}
	return c.do(ctx, http.MethodGet, "/store/products", q, nil, reqOpts)
}

// StoreProduct fetches a sync product by numeric or external id.
func (c *Client) StoreProduct(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/store/products/"+normalizeID(id), nil, nil, opts)
}

// UpdateStoreProductParams carries the fields to update; empty members are
// left out of the request body.
type UpdateStoreProductParams struct {
	SyncProduct  map[string]any   `json:"sync_product,omitempty"`
	SyncVariants []map[string]any `json:"sync_variants,omitempty"`
}

// UpdateStoreProduct updates an existing sync product.
func (c *Client) UpdateStoreProduct(ctx context.Context, id string, params UpdateStoreProductParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/store/products/"+normalizeID(id), nil, params, opts)
}

// DeleteStoreProduct removes a sync product.
func (c *Client) DeleteStoreProduct(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, "/store/products/"+normalizeID(id), nil, nil, opts)
}
