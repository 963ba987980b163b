package printful

// Package printful is a client binding for the Printful fulfillment HTTP API.
// Every method builds a request, attaches authentication headers, performs the
// call, and returns the decoded response envelope.

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultBaseURL is the production Printful API endpoint.
	DefaultBaseURL = "https://api.printful.com"

	// defaultPageLimit mirrors the API default applied when a list call
	// passes no limit.
	defaultPageLimit = 20

	defaultTimeout = 30 * time.Second

	storeIDHeader = "X-PF-Store-Id"
)

// Client talks to the Printful API. Configure it before sharing across
// goroutines; requests themselves are safe to issue concurrently.
type Client struct {
	http       *resty.Client
	baseURL    string
	apiKey     string
	storeID    int64
	timeout    time.Duration
	timeoutSet bool
	log        Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithAPIKey sets the API key or OAuth token sent as a Bearer credential.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = strings.TrimSpace(key) }
}

// WithStoreID sets the store scope applied to every request. Account-level
// tokens require it.
func WithStoreID(id int64) Option {
	return func(c *Client) { c.storeID = id }
}

// WithBaseURL overrides the API endpoint, e.g. for a test server.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(strings.TrimSpace(u), "/") }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
		c.timeoutSet = true
	}
}

// WithHTTPClient injects a pre-configured resty client.
func WithHTTPClient(hc *resty.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger used for client-side warnings.
func WithLogger(log Logger) Option {
	return func(c *Client) { c.log = log }
}

// New builds a Client with the provided options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.http == nil {
		c.http = resty.New()
		c.http.SetTimeout(c.timeout)
	} else if c.timeoutSet && c.timeout > 0 {
		// An injected client keeps its own timeout unless one was asked for.
		c.http.SetTimeout(c.timeout)
	}
	c.log = ensureLogger(c.log)
	return c
}

// SetAPIKey replaces the API key used for subsequent requests.
func (c *Client) SetAPIKey(key string) { c.apiKey = strings.TrimSpace(key) }

// SetStoreID replaces the store scope used for subsequent requests.
func (c *Client) SetStoreID(id int64) { c.storeID = id }

// requestSettings carries per-call overrides.
type requestSettings struct {
	storeID int64
}

// RequestOption customizes a single API call.
type RequestOption func(*requestSettings)

// WithRequestStoreID overrides the client-level store scope for one call.
func WithRequestStoreID(id int64) RequestOption {
	return func(s *requestSettings) { s.storeID = id }
}

// do performs an HTTP call against the API and decodes the response envelope.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any, opts []RequestOption) (*Response, error) {
	var settings requestSettings
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	req := c.http.R().SetContext(ctx)
	req.SetHeader("Content-Type", "application/json")
	if c.apiKey != "" {
		req.SetHeader("Authorization", "Bearer "+c.apiKey)
	}

	storeID := c.storeID
	if settings.storeID != 0 {
		storeID = settings.storeID
	}
	if storeID != 0 {
		req.SetHeader(storeIDHeader, strconv.FormatInt(storeID, 10))
	}

	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, c.baseURL+path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	if resp.IsError() {
		return nil, newAPIError(resp.StatusCode(), resp.Body())
	}

	envelope, err := parseResponse(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("%s %s: decode response: %w", method, path, err)
	}
	return envelope, nil
}
