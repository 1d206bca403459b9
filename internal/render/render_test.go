package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/models"
	"github.com/openclaw/dailyintel/internal/rank"
)

func TestWriteSite(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	dir := t.TempDir()
	items := []models.NewsItem{
		{Title: "OpenAI launches new model", URL: "https://openai.com/a", Hostname: "openai.com", Category: catalog.Releases, Score: 5.0},
		{Title: "融资新闻", URL: "https://36kr.com/b", Description: "一轮新融资", Hostname: "36kr.com", Category: catalog.Funding, Score: 2.2},
	}
	data := ReportData{
		Label:      "2026-03-14 08:30",
		Freshness:  "pd",
		Items:      items,
		Highlights: rank.Highlights(items, rank.HighlightLimit),
		Groups:     rank.ByCategory(items, rank.CategoryLimit),
		Reddit:     []models.RedditPost{{Subreddit: "LocalLLaMA", Title: "hot post", URL: "https://www.reddit.com/p", Score: 99, Comments: 12}},
	}

	require.NoError(t, r.WriteSite(dir, "2026-03-14_0830", data))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	page := string(index)

	assert.Contains(t, page, "2026-03-14 08:30")
	assert.Contains(t, page, "OpenAI launches new model")
	assert.Contains(t, page, catalog.Releases)
	assert.Contains(t, page, "融资新闻")
	assert.Contains(t, page, "r/LocalLLaMA")
	assert.Contains(t, page, "score=99")
	assert.Contains(t, page, "打开链接")
	assert.Contains(t, page, `href="assets/style.css"`)

	day, err := os.ReadFile(filepath.Join(dir, "d", "2026-03-14_0830.html"))
	require.NoError(t, err)
	assert.Contains(t, string(day), `href="../assets/style.css"`)

	archive, err := os.ReadFile(filepath.Join(dir, "archive.html"))
	require.NoError(t, err)
	assert.Contains(t, string(archive), "d/2026-03-14_0830.html")
	assert.Contains(t, string(archive), "2026-03-14 08:30")

	_, err = os.Stat(filepath.Join(dir, "assets", "style.css"))
	require.NoError(t, err)
}

func TestWriteSiteEscapesContent(t *testing.T) {
	r, err := New()
	require.NoError(t, err)

	dir := t.TempDir()
	items := []models.NewsItem{{
		Title:    `<script>alert("x")</script>`,
		URL:      "https://reuters.com/a",
		Hostname: "reuters.com", Category: catalog.Funding, Score: 2.2,
	}}
	data := ReportData{
		Label:      "2026-03-14 08:30",
		Freshness:  "pd",
		Items:      items,
		Highlights: items,
		Groups:     rank.ByCategory(items, rank.CategoryLimit),
	}
	require.NoError(t, r.WriteSite(dir, "2026-03-14_0830", data))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.NotContains(t, string(index), "<script>alert")
}

func TestStars(t *testing.T) {
	tests := []struct {
		score float64
		want  int
	}{
		{6.0, 5},
		{5.2, 5},
		{4.5, 4},
		{3.0, 3},
		{2.0, 2},
		{1.0, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, stars(tt.score), "score %v", tt.score)
	}
	assert.Equal(t, "★★★", starBar(3.0))
}

func TestClip(t *testing.T) {
	assert.Equal(t, "short", clip("short", 10))
	assert.Equal(t, "spaces trimmed", clip("  spaces trimmed  ", 20))

	long := strings.Repeat("a", 30)
	got := clip(long, 10)
	assert.Equal(t, 10, len([]rune(got)))
	assert.True(t, strings.HasSuffix(got, "…"))

	// Rune-aware: multibyte titles are not split mid-character.
	cn := strings.Repeat("模", 15)
	gotCN := clip(cn, 10)
	assert.Equal(t, strings.Repeat("模", 9)+"…", gotCN)
}
