// Package reddit fetches hot posts from Reddit's unauthenticated JSON
// API. The fetch is best-effort: callers turn any error into an empty
// section and never abort the run over it.
package reddit

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/openclaw/dailyintel/internal/models"
)

// Client handles fetching posts from Reddit's JSON API.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	userAgent   string
	mu          sync.Mutex
	lastRequest time.Time
	minInterval time.Duration
}

// New creates a Reddit client with client-side rate limiting.
func New() *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: 20 * time.Second},
		baseURL:     "https://www.reddit.com",
		userAgent:   "openclaw-ai-daily-intel/1.0",
		minInterval: 100 * time.Millisecond,
	}
}

// SetBaseURL overrides the API base URL. Used by tests.
func (c *Client) SetBaseURL(base string) { c.baseURL = base }

// FetchHot returns up to limit hot posts from a subreddit.
func (c *Client) FetchHot(ctx context.Context, subreddit string, limit int) ([]models.RedditPost, error) {
	if err := c.waitForRateLimit(ctx); err != nil {
		return nil, err
	}

	apiURL := fmt.Sprintf("%s/r/%s/hot.json?limit=%d", c.baseURL, url.PathEscape(subreddit), limit)

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch subreddit %s: %w", subreddit, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reddit API returned status %d for r/%s", resp.StatusCode, subreddit)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var listing redditListing
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("parse reddit JSON: %w", err)
	}

	var posts []models.RedditPost
	for _, child := range listing.Data.Children {
		p := child.Data
		title := strings.TrimSpace(p.Title)
		permalink := strings.TrimSpace(p.Permalink)
		if title == "" || permalink == "" {
			continue
		}
		posts = append(posts, models.RedditPost{
			Subreddit: subreddit,
			Title:     title,
			URL:       "https://www.reddit.com" + permalink,
			Score:     p.Score,
			Comments:  p.NumComments,
		})
	}
	return posts, nil
}

func (c *Client) waitForRateLimit(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	elapsed := time.Since(c.lastRequest)
	if elapsed < c.minInterval {
		wait := c.minInterval - elapsed
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(wait):
		}
	}
	c.lastRequest = time.Now()
	return nil
}

// ParseSubreddits splits a comma-separated subreddit list, trimming
// whitespace and a leading "r/" from each entry.
func ParseSubreddits(raw string) []string {
	var subs []string
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimPrefix(strings.TrimSpace(s), "r/")
		if s != "" {
			subs = append(subs, s)
		}
	}
	return subs
}

// Reddit JSON API types

type redditListing struct {
	Data struct {
		Children []struct {
			Data redditPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type redditPost struct {
	Title       string `json:"title"`
	Permalink   string `json:"permalink"`
	Score       int    `json:"score"`
	NumComments int    `json:"num_comments"`
}
