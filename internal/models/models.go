package models

// NewsItem is one surviving, deduplicated search result. Items are
// created once by the ingestion engine, scored once, sorted, and never
// mutated afterwards.
type NewsItem struct {
	Title       string
	URL         string
	Description string
	Hostname    string  // "(unknown)" when unresolvable
	Published   *string // raw provider timestamp; nil means unknown recency
	Category    string
	Score       float64
}

// RedditPost is one entry from the secondary community feed. It is never
// deduplicated or scored against the primary item set.
type RedditPost struct {
	Subreddit string `json:"subreddit"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Score     int    `json:"score"`
	Comments  int    `json:"comments"`
}

// BraveParams records the provider-side query parameters for a run.
type BraveParams struct {
	Country    string `json:"country"`
	SearchLang string `json:"search_lang"`
}

// RunMeta describes one run. Descriptive only; nothing here feeds back
// into ranking.
type RunMeta struct {
	GeneratedAt string      `json:"generatedAt"`
	TZ          string      `json:"tz"`
	RunID       string      `json:"runId"`
	Label       string      `json:"label"`
	Freshness   string      `json:"freshness"`
	Brave       BraveParams `json:"brave"`
	QueriesRun  int         `json:"queriesRun"`
	Subreddits  []string    `json:"subreddits"`
}

// SnapshotItem is the wire form of a NewsItem inside a snapshot, with
// the score rounded for display.
type SnapshotItem struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Description string  `json:"description"`
	Host        string  `json:"host"`
	Published   *string `json:"published"`
	Category    string  `json:"category"`
	Score       float64 `json:"score"`
}

// Snapshot is the complete artifact of one run. Item order equals the
// ranking assembler's global order; downstream consumers must not
// re-sort.
type Snapshot struct {
	Date   string         `json:"date"`
	RunID  string         `json:"runId"`
	Label  string         `json:"label"`
	Meta   RunMeta        `json:"meta"`
	Items  []SnapshotItem `json:"items"`
	Reddit []RedditPost   `json:"reddit"`
}
