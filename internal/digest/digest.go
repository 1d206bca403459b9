// Package digest orchestrates one run of the pipeline: collect, score,
// rank, fetch the community feed, then write the snapshot and the
// static pages.
package digest

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	_ "time/tzdata" // fallback zone data for hosts without a tz database

	"github.com/openclaw/dailyintel/internal/brave"
	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/config"
	"github.com/openclaw/dailyintel/internal/hosts"
	"github.com/openclaw/dailyintel/internal/ingest"
	"github.com/openclaw/dailyintel/internal/models"
	"github.com/openclaw/dailyintel/internal/rank"
	"github.com/openclaw/dailyintel/internal/reddit"
	"github.com/openclaw/dailyintel/internal/render"
	"github.com/openclaw/dailyintel/internal/score"
	"github.com/openclaw/dailyintel/internal/snapshot"
)

// Generator runs the full pipeline. Either a run completes and writes a
// complete, internally consistent snapshot plus pages, or it fails
// before writing anything.
type Generator struct {
	Cfg       config.Config
	Collector *ingest.Collector
	Scorer    *score.Scorer
	Reddit    *reddit.Client
	Renderer  *render.Renderer
	Location  *time.Location
	Now       func() time.Time
}

// New wires a Generator from configuration. The credential must already
// be validated.
func New(cfg config.Config) (*Generator, error) {
	loc, err := time.LoadLocation(cfg.Output.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %s: %w", cfg.Output.Timezone, err)
	}

	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	classifier := hosts.New(hosts.DefaultSets())
	client := brave.New(cfg.APIKey, brave.Params{
		Freshness:  cfg.Search.Freshness,
		Count:      cfg.Search.Count,
		Country:    cfg.Search.Country,
		SearchLang: cfg.Search.Lang,
	}, cfg.Timeout())

	return &Generator{
		Cfg: cfg,
		Collector: &ingest.Collector{
			Searcher:   client,
			Classifier: classifier,
			Buckets:    catalog.Buckets,
			QueryDelay: cfg.QueryDelay(),
		},
		Scorer:   score.New(classifier),
		Reddit:   reddit.New(),
		Renderer: renderer,
		Location: loc,
		Now:      time.Now,
	}, nil
}

// Run executes one complete run and writes all artifacts under the
// configured output directory.
func (g *Generator) Run(ctx context.Context) error {
	now := g.Now().In(g.Location)
	runID := now.Format("2006-01-02_1504")
	label := now.Format("2006-01-02 15:04")
	date := now.Format("2006-01-02")

	slog.Info("Run started", "runId", runID)

	items, queriesRun, err := g.Collector.Collect(ctx)
	if err != nil {
		return fmt.Errorf("collect aborted after %d queries: %w", queriesRun, err)
	}
	for i := range items {
		items[i].Score = g.Scorer.Score(items[i].Hostname, items[i].Title, items[i].Published, items[i].Category)
	}
	rank.Sort(items)
	slog.Info("Collected news", "items", len(items), "queries", queriesRun)

	subs := g.Cfg.Reddit.Subreddits
	if limit := g.Cfg.Reddit.MaxSubreddits; limit > 0 && len(subs) > limit {
		subs = subs[:limit]
	}
	posts := g.fetchReddit(ctx, subs)
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("run cancelled before write: %w", err)
	}

	meta := models.RunMeta{
		GeneratedAt: now.Format(time.RFC3339),
		TZ:          g.Cfg.Output.Timezone,
		RunID:       runID,
		Label:       label,
		Freshness:   g.Cfg.Search.Freshness,
		Brave: models.BraveParams{
			Country:    g.Cfg.Search.Country,
			SearchLang: g.Cfg.Search.Lang,
		},
		QueriesRun: queriesRun,
		Subreddits: subs,
	}

	snap := snapshot.Build(date, runID, label, meta, items, posts)
	if err := snapshot.Write(g.Cfg.Output.Dir, snap); err != nil {
		return err
	}

	data := render.ReportData{
		Label:      label,
		Freshness:  g.Cfg.Search.Freshness,
		Items:      items,
		Highlights: rank.Highlights(items, rank.HighlightLimit),
		Groups:     rank.ByCategory(items, rank.CategoryLimit),
		Reddit:     posts,
	}
	if err := g.Renderer.WriteSite(g.Cfg.Output.Dir, runID, data); err != nil {
		return err
	}

	slog.Info("Run complete", "runId", runID, "items", len(items), "reddit", len(posts), "dir", g.Cfg.Output.Dir)
	return nil
}

// fetchReddit collects the community section. Every failure is scoped
// to its source: it logs, contributes nothing, and never aborts the
// run.
func (g *Generator) fetchReddit(ctx context.Context, subs []string) []models.RedditPost {
	var posts []models.RedditPost
	for _, sub := range subs {
		got, err := g.Reddit.FetchHot(ctx, sub, g.Cfg.Reddit.PostsPerSub)
		if err != nil {
			slog.Warn("Reddit fetch failed, skipping source", "subreddit", sub, "error", err)
			continue
		}
		posts = append(posts, got...)
	}
	return posts
}
