package printful

import (
	"encoding/json"
	"fmt"
)

// Response is the envelope every API endpoint wraps its payload in.
type Response struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Extra  json.RawMessage `json:"extra,omitempty"`
	Paging *Paging         `json:"paging,omitempty"`
}

// Paging describes list pagination as reported by the API.
type Paging struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Decode unmarshals the result payload into v.
func (r *Response) Decode(v any) error {
	if r == nil || len(r.Result) == 0 {
		return fmt.Errorf("response has no result payload")
	}
	if err := json.Unmarshal(r.Result, v); err != nil {
		return fmt.Errorf("decode result: %w", err)
	}
	return nil
}

// parseResponse decodes the raw body into the envelope.
func parseResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
