package printful

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// APIError reports a non-2xx response from the API.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int
	// Code is the API-reported code from the response envelope, when present.
	Code int
	// Message is the API-reported error message, when one could be extracted.
	Message string
	// Body holds a snippet of the raw response body.
	Body string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("printful: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("printful: status %d body: %s", e.Status, e.Body)
}

// errorEnvelope covers the two error shapes the API emits: a string result
// or a nested error object.
type errorEnvelope struct {
	Code   int             `json:"code"`
	Result json.RawMessage `json:"result"`
	Err    *struct {
		Reason  string `json:"reason"`
		Message string `json:"message"`
	} `json:"error"`
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{
		Status: status,
		Body:   responseSnippet(body),
	}

	var env errorEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return apiErr
	}
	apiErr.Code = env.Code

	var msg string
	if len(env.Result) > 0 {
		_ = json.Unmarshal(env.Result, &msg)
	}
	if msg == "" && env.Err != nil {
		msg = env.Err.Message
	}
	apiErr.Message = strings.TrimSpace(msg)
	return apiErr
}

func responseSnippet(body []byte) string {
	const maxLen = 512
	s := strings.TrimSpace(string(body))
	if len(s) > maxLen {
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		return s[:cut] + "..."
	}
	if s == "" {
		return "<empty>"
	}
	return s
}
