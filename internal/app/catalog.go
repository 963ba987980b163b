package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Sufmax/printful-sdk/internal/config"
	"github.com/Sufmax/printful-sdk/internal/logger"
	"github.com/Sufmax/printful-sdk/pkg/printful"
)

// Catalog walks the read-only catalog endpoints and logs what the account
// can see: token scopes, categories, products, size guides, and stores.
type Catalog struct {
	cfg    *config.Config
	client *printful.Client
	log    *logger.Logger
}

// NewCatalog builds the catalog walkthrough runtime from config.
func NewCatalog(cfg *config.Config, log *logger.Logger) (*Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	client := printful.New(
		printful.WithAPIKey(cfg.APIKey),
		printful.WithStoreID(cfg.StoreID),
		printful.WithBaseURL(cfg.BaseURL),
		printful.WithTimeout(cfg.RequestTimeout),
		printful.WithLogger(log),
	)

	return &Catalog{cfg: cfg, client: client, log: log}, nil
}

// Run executes the walkthrough. Individual steps that fail are logged and
// skipped so one denied scope does not abort the whole tour.
func (c *Catalog) Run(ctx context.Context) error {
	if c == nil || c.client == nil {
		return fmt.Errorf("catalog runtime is not initialized")
	}

	if resp, err := c.client.OAuthScopes(ctx); err != nil {
		c.log.WarnObj("oauth scopes unavailable", "error", err.Error())
	} else {
		var scopes struct {
			Scopes []string `json:"scopes"`
		}
		if err := resp.Decode(&scopes); err == nil {
			c.log.InfoObj("token scopes", "scopes", scopes.Scopes)
		}
	}

	if resp, err := c.client.Categories(ctx); err != nil {
		c.log.WarnObj("categories unavailable", "error", err.Error())
	} else {
		c.log.InfoObj("categories fetched", "count", resultLen(resp))
	}

	products, err := c.listProducts(ctx)
	if err != nil {
		c.log.WarnObj("catalog products unavailable", "error", err.Error())
	} else if len(products) > 0 {
		c.describeProduct(ctx, products[0])
	}

	if resp, err := c.client.Stores(ctx); err != nil {
		c.log.WarnObj("stores unavailable", "error", err.Error())
	} else {
		c.log.InfoObj("stores fetched", "count", resultLen(resp))
	}

	return nil
}

type catalogProduct struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func (c *Catalog) listProducts(ctx context.Context) ([]catalogProduct, error) {
	resp, err := c.client.Products(ctx, printful.ProductListOptions{Limit: 5})
	if err != nil {
		return nil, err
	}

	var products []catalogProduct
	if err := resp.Decode(&products); err != nil {
		return nil, err
	}
	c.log.InfoObj("catalog products fetched", "count", len(products))
	return products, nil
}

func (c *Catalog) describeProduct(ctx context.Context, p catalogProduct) {
	resp, err := c.client.Product(ctx, p.ID)
	if err != nil {
		c.log.WarnObj("product detail unavailable", "error", err.Error())
		return
	}

	var detail struct {
		Variants []json.RawMessage `json:"variants"`
	}
	if err := resp.Decode(&detail); err == nil {
		c.log.InfoObj("product detail", "product", map[string]any{
			"id":       p.ID,
			"title":    p.Title,
			"variants": len(detail.Variants),
		})
	}

	sizesResp, err := c.client.ProductSizes(ctx, p.ID)
	if err != nil {
		c.log.DebugObj("size guide unavailable", "product_error", map[string]any{
			"product_id": p.ID,
			"error":      err.Error(),
		})
		return
	}

	var sizes struct {
		AvailableSizes []string `json:"available_sizes"`
	}
	if err := sizesResp.Decode(&sizes); err == nil {
		c.log.InfoObj("size guide", "sizes", map[string]any{
			"product_id": p.ID,
			"available":  sizes.AvailableSizes,
		})
	}
}

// resultLen counts the entries of a list-shaped result payload.
func resultLen(resp *printful.Response) int {
	var entries []json.RawMessage
	if err := resp.Decode(&entries); err != nil {
		return 0
	}
	return len(entries)
}
