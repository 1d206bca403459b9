// Package brave is a minimal client for the Brave web-search API. It is
// the only component that talks to the search provider, so the rest of
// the pipeline can be exercised against a fake.
package brave

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultEndpoint = "https://api.search.brave.com/res/v1/web/search"

// bodyLimit caps how much of an upstream error body is carried in a
// ProviderError.
const bodyLimit = 400

// Params are the provider-side query parameters shared by every query
// in a run.
type Params struct {
	Freshness  string // recency filter code, e.g. "pd" for past day
	Count      int    // results per query
	Country    string
	SearchLang string
}

// Result is one raw search result record.
type Result struct {
	Title       string
	URL         string
	Description string
	Published   *string // raw timestamp, nil when absent or non-scalar
	Hostname    string  // provider-supplied host hint, may be empty
}

// ProviderError is a non-success response to a single query. The run
// treats the query's results as empty and continues.
type ProviderError struct {
	Status int
	Body   string // truncated upstream body
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("brave HTTP %d: %s", e.Status, e.Body)
}

// Client executes queries against the search provider.
type Client struct {
	httpClient *http.Client
	endpoint   string
	key        string
	params     Params
}

// New creates a Client. The credential must already have been validated
// by the config layer; an empty key here would fail every query with a
// 401.
func New(key string, params Params, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   defaultEndpoint,
		key:        key,
		params:     params,
	}
}

// SetEndpoint overrides the API endpoint. Used by tests.
func (c *Client) SetEndpoint(endpoint string) { c.endpoint = endpoint }

// wire types for the provider payload

type searchResponse struct {
	Web struct {
		Results []rawResult `json:"results"`
	} `json:"web"`
}

type rawResult struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Published   any    `json:"published"`
	MetaURL     struct {
		Hostname string `json:"hostname"`
	} `json:"meta_url"`
}

// Search runs one query and returns the provider's ordered results.
// Non-2xx responses yield a *ProviderError; network and decode failures
// are wrapped. All failures are scoped to this single query.
func (c *Client) Search(ctx context.Context, query string) ([]Result, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("country", c.params.Country)
	q.Set("freshness", c.params.Freshness)
	q.Set("count", strconv.Itoa(c.params.Count))
	q.Set("search_lang", c.params.SearchLang)
	q.Set("spellcheck", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brave request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ProviderError{Status: resp.StatusCode, Body: truncate(string(body), bodyLimit)}
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("parse brave response: %w", err)
	}

	results := make([]Result, 0, len(payload.Web.Results))
	for _, r := range payload.Web.Results {
		results = append(results, Result{
			Title:       r.Title,
			URL:         r.URL,
			Description: r.Description,
			Published:   publishedString(r.Published),
			Hostname:    r.MetaURL.Hostname,
		})
	}
	return results, nil
}

// publishedString keeps string and numeric published values, matching
// the provider's loose typing. Anything else means unknown recency.
func publishedString(v any) *string {
	switch p := v.(type) {
	case string:
		return &p
	case float64:
		s := strconv.FormatFloat(p, 'f', -1, 64)
		return &s
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
