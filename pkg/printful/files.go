package printful

import (
	"context"
	"fmt"
	"net/http"
)

// AddFileParams describes a file to pull into the library.
type AddFileParams struct {
	URL      string `json:"url"`
	Type     string `json:"type,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// AddFile adds a file to the library by URL.
func (c *Client) AddFile(ctx context.Context, params AddFileParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/files", nil, params, opts)
}

// File fetches library file information.
func (c *Client) File(ctx context.Context, fileID int64, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/files/%d", fileID), nil, nil, opts)
}
