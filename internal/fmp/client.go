// Package fmp is the upstream client for the Financial Modeling Prep REST API.
// It builds request URLs, issues GETs, and returns the parsed JSON body
// unchanged; no schema is imposed beyond what the provider defines.
package fmp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the provider host. Endpoint paths passed to Get include
// the API version segment (e.g. "api/v3/profile/AAPL", "stable/grades").
const DefaultBaseURL = "https://financialmodelingprep.com"

// maxResponseSize bounds how much of a response body is read (32 MB). Bulk
// endpoints return large arrays; anything bigger indicates a provider problem.
const maxResponseSize = 32 << 20

// Client issues authenticated GET requests to the FMP API. The API key is
// attached as the apikey query parameter on every request; it is supplied once
// at construction and never read from the environment here.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// New creates a Client. baseURL falls back to DefaultBaseURL when empty;
// timeout bounds each HTTP exchange and falls back to 10s when zero.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Get issues one GET to path with params and returns the parsed JSON body
// unchanged. Errors are *TransportError (network), *StatusError (non-2xx),
// or *DecodeError (unparseable body); none are retried.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	if params == nil {
		params = url.Values{}
	}
	params.Set("apikey", c.apiKey)

	u := fmt.Sprintf("%s/%s?%s", c.baseURL, strings.TrimLeft(path, "/"), params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	if !json.Valid(body) {
		return nil, &DecodeError{Err: fmt.Errorf("invalid JSON in %d-byte body", len(body))}
	}
	return json.RawMessage(body), nil
}
