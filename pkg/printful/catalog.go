package printful

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ProductListOptions filters the catalog product listing.
type ProductListOptions struct {
	Offset int
	// Limit caps the number of returned items; zero means the API default
	// of 20.
	Limit       int
	CategoryIDs []int64
}

// Products lists catalog products.
func (c *Client) Products(ctx context.Context, opts ProductListOptions) (*Response, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(opts.Offset))
	q.Set("limit", strconv.Itoa(pageLimit(opts.Limit)))
	if len(opts.CategoryIDs) > 0 {
		ids := make([]string, 0, len(opts.CategoryIDs))
		for _, id := range opts.CategoryIDs {
			ids = append(ids, strconv.FormatInt(id, 10))
		}
		q.Set("category_id", strings.Join(ids, ","))
	}
	return c.do(ctx, http.MethodGet, "/products", q, nil, nil)
}

// Product fetches a catalog product together with its variants.
func (c *Client) Product(ctx context.Context, productID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d", productID), nil, nil, nil)
}

// ProductVariant fetches a single catalog variant.
func (c *Client) ProductVariant(ctx context.Context, variantID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/products/variant/%d", variantID), nil, nil, nil)
}

// ProductSizes fetches the size guide for a catalog product.
func (c *Client) ProductSizes(ctx context.Context, productID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/products/%d/sizes", productID), nil, nil, nil)
}

// Categories lists all catalog categories.
func (c *Client) Categories(ctx context.Context) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/categories", nil, nil, nil)
}

// Category fetches a single catalog category.
func (c *Client) Category(ctx context.Context, categoryID int64) (*Response, error) {
	return c.do(ctx, http.MethodGet, fmt.Sprintf("/categories/%d", categoryID), nil, nil, nil)
}

func pageLimit(limit int) int {
	if limit <= 0 {
		return defaultPageLimit
	}
	return limit
}
