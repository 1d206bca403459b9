// Package ingest runs the query catalog through the search client and
// produces the deduplicated, host-filtered candidate list.
package ingest

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/openclaw/dailyintel/internal/brave"
	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/hosts"
	"github.com/openclaw/dailyintel/internal/models"
)

// Searcher executes one query. Implemented by brave.Client; tests
// substitute fakes.
type Searcher interface {
	Search(ctx context.Context, query string) ([]brave.Result, error)
}

// Collector owns the append-only candidate list and the seen-url set
// for the duration of one run.
type Collector struct {
	Searcher   Searcher
	Classifier *hosts.Classifier
	Buckets    []catalog.Bucket
	// QueryDelay is the pause between successive provider queries, to
	// stay under the provider's rate limit.
	QueryDelay time.Duration
}

// Collect executes every catalog query in order and returns the
// surviving candidate items plus the number of queries run. A failed
// query logs a warning and contributes zero results; it never aborts
// the run. A cancelled context does abort it: the context error is
// returned and no partial item list, so callers never persist a
// truncated run.
//
// Dedup is exact-string on the url, first occurrence wins. A url is
// marked seen even when its record is discarded as blocked or
// disallowed, so the same url from a later query never gets a second
// chance.
func (c *Collector) Collect(ctx context.Context) ([]models.NewsItem, int, error) {
	seen := make(map[string]struct{})
	var items []models.NewsItem
	queriesRun := 0

	first := true
	for _, bucket := range c.Buckets {
		for _, query := range bucket.Queries {
			if err := ctx.Err(); err != nil {
				return nil, queriesRun, err
			}
			if !first && c.QueryDelay > 0 {
				select {
				case <-ctx.Done():
					return nil, queriesRun, ctx.Err()
				case <-time.After(c.QueryDelay):
				}
			}
			first = false

			results, err := c.Searcher.Search(ctx, query)
			queriesRun++
			if err != nil {
				slog.Warn("Query failed, continuing with empty results", "query", query, "error", err)
				continue
			}

			for _, r := range results {
				title := strings.TrimSpace(r.Title)
				rawURL := strings.TrimSpace(r.URL)
				if title == "" || rawURL == "" {
					continue
				}
				if _, dup := seen[rawURL]; dup {
					continue
				}
				seen[rawURL] = struct{}{}

				host := resolveHostname(r)
				desc := strings.TrimSpace(r.Description)

				switch c.Classifier.Classify(host, title, desc) {
				case hosts.Blocked, hosts.Disallowed:
					continue
				}

				hostname := host
				if hostname == "" {
					hostname = "(unknown)"
				}
				items = append(items, models.NewsItem{
					Title:       title,
					URL:         rawURL,
					Description: desc,
					Hostname:    hostname,
					Published:   r.Published,
					Category:    bucket.Category,
				})
			}
		}
	}

	return items, queriesRun, nil
}

// resolveHostname prefers the provider-supplied metadata hostname and
// falls back to parsing the result url. Returns "" when neither works.
func resolveHostname(r brave.Result) string {
	if r.Hostname != "" {
		return r.Hostname
	}
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
