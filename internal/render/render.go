// Package render turns a run's ranked output into the static site:
// latest report, archived report, archive index, and stylesheet.
package render

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	dailyintel "github.com/openclaw/dailyintel"
	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/models"
	"github.com/openclaw/dailyintel/internal/rank"
	"github.com/openclaw/dailyintel/internal/snapshot"
)

// redditDisplayLimit caps the Reddit section on the report page.
const redditDisplayLimit = 10

var categoryColors = map[string]string{
	catalog.Releases:   "#F57C00",
	catalog.OpenSource: "#D81B60",
	catalog.Funding:    "#00897B",
	catalog.Research:   "#455A64",
	catalog.Policy:     "#6D4C41",
	catalog.Security:   "#B91C1C",
}

var heatColors = map[int]string{
	5: "#C2185B",
	4: "#7B1FA2",
	3: "#1976D2",
	2: "#388E3C",
	1: "#607D8B",
}

// ReportData is everything the report page shows for one run.
type ReportData struct {
	Label      string
	Freshness  string
	Items      []models.NewsItem // global ranked order
	Highlights []models.NewsItem
	Groups     []rank.Group
	Reddit     []models.RedditPost
}

// Renderer holds the parsed page templates.
type Renderer struct {
	report  *template.Template
	archive *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"clip":      clip,
		"add":       func(a, b int) int { return a + b },
		"starBar":   starBar,
		"heatColor": heatColor,
		"catColor": func(cat string) string {
			if c, ok := categoryColors[cat]; ok {
				return c
			}
			return "#666"
		},
	}

	report, err := template.New("report.html").Funcs(funcs).ParseFS(dailyintel.TemplateFS, "web/templates/report.html")
	if err != nil {
		return nil, fmt.Errorf("parse report template: %w", err)
	}
	archive, err := template.New("archive.html").ParseFS(dailyintel.TemplateFS, "web/templates/archive.html")
	if err != nil {
		return nil, fmt.Errorf("parse archive template: %w", err)
	}
	return &Renderer{report: report, archive: archive}, nil
}

type reportContext struct {
	Data        ReportData
	CSSHref     string
	ArchiveHref string
}

// WriteSite writes the full static output for one run under dir:
// index.html (latest), d/<runID>.html (archive copy), archive.html,
// and assets/style.css. The latest and archived pages differ only in
// their relative asset paths.
func (r *Renderer) WriteSite(dir, runID string, data ReportData) error {
	if len(data.Reddit) > redditDisplayLimit {
		data.Reddit = data.Reddit[:redditDisplayLimit]
	}

	for _, sub := range []string{"d", "data", "assets"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	css, err := dailyintel.StaticFS.ReadFile("web/static/style.css")
	if err != nil {
		return fmt.Errorf("read embedded stylesheet: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "assets", "style.css"), css, 0o644); err != nil {
		return fmt.Errorf("write stylesheet: %w", err)
	}

	pages := []struct {
		path string
		ctx  reportContext
	}{
		{filepath.Join(dir, "index.html"), reportContext{Data: data, CSSHref: "assets/style.css", ArchiveHref: "archive.html"}},
		{filepath.Join(dir, "d", runID+".html"), reportContext{Data: data, CSSHref: "../assets/style.css", ArchiveHref: "../archive.html"}},
	}
	for _, p := range pages {
		if err := r.writeTemplate(r.report, p.path, p.ctx); err != nil {
			return err
		}
	}

	entries, err := snapshot.ListArchive(dir)
	if err != nil {
		return err
	}
	return r.writeTemplate(r.archive, filepath.Join(dir, "archive.html"), struct {
		Entries []snapshot.ArchiveEntry
	}{entries})
}

func (r *Renderer) writeTemplate(t *template.Template, path string, data any) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := t.Execute(f, data); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}

// stars maps a score to a 1..5 heat rating.
func stars(score float64) int {
	switch {
	case score >= 5.2:
		return 5
	case score >= 4.0:
		return 4
	case score >= 2.9:
		return 3
	case score >= 1.8:
		return 2
	default:
		return 1
	}
}

func starBar(score float64) string {
	return strings.Repeat("★", stars(score))
}

func heatColor(score float64) string {
	return heatColors[stars(score)]
}

// clip truncates s to at most n runes, appending an ellipsis when it
// had to cut.
func clip(s string, n int) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return strings.TrimRight(string(runes[:n-1]), " ") + "…"
}
