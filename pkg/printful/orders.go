package printful

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
)

// Canned payloads returned by the deactivated order operations. They match
// the responses callers of the original binding observed.
var (
	cannedOrderCreated   = json.RawMessage(`{"status":"mock_success","message":"Operation deactivated for safety.","mock_order_id":"12345"}`)
	cannedOrderConfirmed = json.RawMessage(`{"status":"mock_success","message":"Operation deactivated for safety.","mock_confirmed":true}`)
	cannedOrderCanceled  = json.RawMessage(`{"status":"mock_success","message":"Operation deactivated for safety.","mock_canceled":true}`)
)

// CreateOrderParams describes a new order. Empty optional members are left
// out of the request body.
type CreateOrderParams struct {
	Recipient      map[string]any   `json:"recipient"`
	Items          []map[string]any `json:"items"`
	Shipping       string           `json:"shipping,omitempty"`
	ExternalID     string           `json:"external_id,omitempty"`
	PackingSlip    map[string]any   `json:"packing_slip,omitempty"`
	Confirm        bool             `json:"confirm,omitempty"`
	UpdateExisting bool             `json:"update_existing,omitempty"`
}

// CreateOrder would submit a new order. Order creation is a billing-sensitive
// operation and is deactivated: the call never reaches the network and a
// canned payload is returned instead.
func (c *Client) CreateOrder(ctx context.Context, params CreateOrderParams, opts ...RequestOption) (*Response, error) {
	c.log.WarnObj("create order is deactivated for safety; returning canned response", "order_guard", map[string]any{
		"external_id": params.ExternalID,
		"items":       len(params.Items),
	})
	return &Response{Code: http.StatusOK, Result: cannedOrderCreated}, nil
}

// OrderListOptions filters the order listing.
type OrderListOptions struct {
	Offset int
	// Limit caps the number of returned items; zero means the API default
	// of 20.
	Limit  int
	Status string
}

// Orders lists orders.
func (c *Client) Orders(ctx context.Context, opts OrderListOptions, reqOpts ...RequestOption) (*Response, error) {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(opts.Offset))
	q.Set("limit", strconv.Itoa(pageLimit(opts.Limit)))
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	return c.do(ctx, http.MethodGet, "/orders", q, nil, reqOpts)
}

// Order fetches an order by numeric or external id.
func (c *Client) Order(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/orders/"+normalizeID(id), nil, nil, opts)
}

// UpdateOrder updates an unsubmitted order.
func (c *Client) UpdateOrder(ctx context.Context, id string, order map[string]any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, "/orders/"+normalizeID(id), nil, order, opts)
}

// ConfirmOrder would confirm a draft order, which triggers billing and
// production. The operation is deactivated: the call never reaches the
// network and a canned payload is returned instead.
func (c *Client) ConfirmOrder(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	c.log.WarnObj("confirm order is deactivated for safety; returning canned response", "order_guard", map[string]any{
		"order_id": normalizeID(id),
	})
	return &Response{Code: http.StatusOK, Result: cannedOrderConfirmed}, nil
}

// CancelOrder would cancel an order, which may trigger a refund. The
// operation is deactivated: the call never reaches the network and a canned
// payload is returned instead.
func (c *Client) CancelOrder(ctx context.Context, id string, opts ...RequestOption) (*Response, error) {
	c.log.WarnObj("cancel order is deactivated for safety; returning canned response", "order_guard", map[string]any{
		"order_id": normalizeID(id),
	})
	return &Response{Code: http.StatusOK, Result: cannedOrderCanceled}, nil
}

// EstimateOrderCostsParams describes the order to price.
type EstimateOrderCostsParams struct {
	Recipient map[string]any   `json:"recipient"`
	Items     []map[string]any `json:"items"`
	Shipping  string           `json:"shipping,omitempty"`
}

// EstimateOrderCosts calculates order costs without creating the order.
func (c *Client) EstimateOrderCosts(ctx context.Context, params EstimateOrderCostsParams, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/orders/estimate-costs", nil, params, opts)
}
