package printful

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// MockupPrintfiles lists the printable areas for a catalog product.
func (c *Client) MockupPrintfiles(ctx context.Context, productID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/mockup-generator/printfiles/%d", productID), nil, nil, nil)
}

// CreateMockupTaskParams describes a mockup generation task.
type CreateMockupTaskParams struct {
	VariantIDs []int64          `json:"variant_ids"`
	Files      []map[string]any `json:"files"`
	// Format is the output image format; empty means jpg.
	Format         string         `json:"format"`
	Width          int            `json:"width,omitempty"`
	ProductOptions map[string]any `json:"product_options,omitempty"`
}

// CreateMockupTask queues a mockup generation task for a catalog product.
func (c *Client) CreateMockupTask(ctx context.Context, productID int64, params CreateMockupTaskParams, opts ...RequestOption) (*Response, error) {
	if params.Format == "" {
		params.Format = "jpg"
	}
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/mockup-generator/create-task/%d", productID), nil, params, opts)
}

// MockupTaskResult fetches the state of a mockup task by its key.
func (c *Client) MockupTaskResult(ctx context.Context, taskKey string, opts ...RequestOption) (*Response, error) {
	q := url.Values{}
	q.Set("task_key", taskKey)
	return c.do(ctx, http.MethodGet, "/mockup-generator/task", q, nil, opts)
}

// MockupTemplates lists the mockup templates available for a catalog product.
func (c *Client) MockupTemplates(ctx context.Context, productID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/mockup-generator/templates/%d", productID), nil, nil, nil)
}
