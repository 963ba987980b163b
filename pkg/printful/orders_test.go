package printful

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// guardServer fails the test if any request reaches it.
func guardServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		t.Errorf("deactivated operation reached the network: %s %s", r.Method, r.URL.Path)
	}))
}

func TestCreateOrderNeverHitsNetwork(t *testing.T) {
	srv := guardServer(t)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	resp, err := c.CreateOrder(context.Background(), CreateOrderParams{
		Recipient: map[string]any{"name": "Jo", "country_code": "US"},
		Items:     []map[string]any{{"variant_id": 4011, "quantity": 1}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	var result struct {
		Status      string `json:"status"`
		MockOrderID string `json:"mock_order_id"`
	}
	if err := resp.Decode(&result); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Status != "mock_success" {
		t.Fatalf("status = %q", result.Status)
	}
	if result.MockOrderID != "12345" {
		t.Fatalf("mock_order_id = %q", result.MockOrderID)
	}
}

func TestConfirmOrderNeverHitsNetwork(t *testing.T) {
	srv := guardServer(t)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	resp, err := c.ConfirmOrder(context.Background(), "8471")
	if err != nil {
		t.Fatalf("ConfirmOrder: %v", err)
	}

	var result struct {
		Status        string `json:"status"`
		MockConfirmed bool   `json:"mock_confirmed"`
	}
	if err := resp.Decode(&result); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Status != "mock_success" || !result.MockConfirmed {
		t.Fatalf("result = %+v", result)
	}
}

func TestCancelOrderNeverHitsNetwork(t *testing.T) {
	srv := guardServer(t)
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	resp, err := c.CancelOrder(context.Background(), "ext-order-1")
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}

	var result struct {
		Status       string `json:"status"`
		MockCanceled bool   `json:"mock_canceled"`
	}
	if err := resp.Decode(&result); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if result.Status != "mock_success" || !result.MockCanceled {
		t.Fatalf("result = %+v", result)
	}
}

func TestOrdersListQuery(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Write([]byte(`{"code":200,"result":[]}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	if _, err := c.Orders(context.Background(), OrderListOptions{Offset: 40, Status: "fulfilled"}); err != nil {
		t.Fatalf("Orders: %v", err)
	}
	if gotPath != "/orders" {
		t.Fatalf("path = %q", gotPath)
	}
	q := mustParseQuery(t, gotQuery)
	if q.Get("offset") != "40" || q.Get("limit") != "20" || q.Get("status") != "fulfilled" {
		t.Fatalf("query = %q", gotQuery)
	}
}

func TestUpdateOrderNormalizesExternalID(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.Write([]byte(`{"code":200,"result":{}}`))
	}))
	defer srv.Close()

	c := New(WithBaseURL(srv.URL), WithAPIKey("k"))
	if _, err := c.UpdateOrder(context.Background(), "spring-drop-7", map[string]any{"shipping": "STANDARD"}); err != nil {
		t.Fatalf("UpdateOrder: %v", err)
	}
	if gotMethod != http.MethodPut {
		t.Fatalf("method = %q", gotMethod)
	}
	if gotPath != "/orders/@spring-drop-7" {
		t.Fatalf("path = %q", gotPath)
	}
}
