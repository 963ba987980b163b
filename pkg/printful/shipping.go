package printful

import (
	"context"
	"net/http"
)

// ShippingRatesParams describes the shipment to price.
type ShippingRatesParams struct {
	Recipient map[string]any   `json:"recipient"`
	Items     []map[string]any `json:"items"`
	Currency  string           `json:"currency,omitempty"`
	Locale    string           `json:"locale,omitempty"`
}

// ShippingRates calculates the shipping options for a prospective shipment.
func (c *Client) ShippingRates(ctx context.Context, params ShippingRatesParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/shipping/rates", nil, params, opts)
}
