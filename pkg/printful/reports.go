package printful

import (
	"context"
	"net/http"
	"net/url"
)

// StatisticsParams selects the statistics report to fetch. Dates use the
// YYYY-MM-DD format.
type StatisticsParams struct {
	ReportType string
	DateFrom   string
	DateTo     string
	Currency   string
}

// Statistics fetches a statistics report.
func (c *Client) Statistics(ctx context.Context, params StatisticsParams, opts ...RequestOption) (*Response, error) {
	q := url.Values{}
	q.Set("report_type", params.ReportType)
	q.Set("date_from", params.DateFrom)
	q.Set("date_to", params.DateTo)
	if params.Currency != "" {
		q.Set("currency", params.Currency)
	}
	return c.do(ctx, http.MethodGet, "/reports/statistics", q, nil, opts)
}
