package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/models"
)

func sampleMeta() models.RunMeta {
	return models.RunMeta{
		GeneratedAt: "2026-03-14T08:30:00+08:00",
		TZ:          "Asia/Shanghai",
		RunID:       "2026-03-14_0830",
		Label:       "2026-03-14 08:30",
		Freshness:   "pd",
		Brave:       models.BraveParams{Country: "CN", SearchLang: "zh-hans"},
		QueriesRun:  25,
		Subreddits:  []string{"LocalLLaMA"},
	}
}

func TestBuildRoundsScoresAndKeepsOrder(t *testing.T) {
	pub := "2026-03-14T08:00:00Z"
	items := []models.NewsItem{
		{Title: "b", URL: "https://b", Hostname: "reuters.com", Published: &pub, Category: catalog.Releases, Score: 5.00049},
		{Title: "a", URL: "https://a", Hostname: "(unknown)", Category: catalog.Funding, Score: 1.23456},
	}

	snap := Build("2026-03-14", "2026-03-14_0830", "2026-03-14 08:30", sampleMeta(), items, nil)

	require.Len(t, snap.Items, 2)
	assert.Equal(t, "b", snap.Items[0].Title)
	assert.Equal(t, 5.0, snap.Items[0].Score)
	assert.Equal(t, 1.235, snap.Items[1].Score)
	assert.NotNil(t, snap.Items[0].Published)
	assert.Nil(t, snap.Items[1].Published)
	// Missing reddit section is an empty list, not null.
	assert.NotNil(t, snap.Reddit)
}

func TestWriteProducesRunFileAndLatest(t *testing.T) {
	dir := t.TempDir()
	snap := Build("2026-03-14", "2026-03-14_0830", "2026-03-14 08:30", sampleMeta(),
		[]models.NewsItem{{Title: "跨境 AI 新闻", URL: "https://x", Hostname: "36kr.com", Category: catalog.Funding, Score: 2.2}},
		[]models.RedditPost{{Subreddit: "LocalLLaMA", Title: "t", URL: "https://www.reddit.com/p", Score: 10, Comments: 3}})

	require.NoError(t, Write(dir, snap))

	for _, name := range []string{"2026-03-14_0830.json", "latest.json"} {
		data, err := os.ReadFile(filepath.Join(dir, "data", name))
		require.NoError(t, err)

		var got models.Snapshot
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, snap.RunID, got.RunID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "跨境 AI 新闻", got.Items[0].Title)
		assert.Equal(t, "36kr.com", got.Items[0].Host)
		require.Len(t, got.Reddit, 1)
		assert.Equal(t, 10, got.Reddit[0].Score)
	}
}

func TestListArchive(t *testing.T) {
	dir := t.TempDir()
	dDir := filepath.Join(dir, "d")
	require.NoError(t, os.MkdirAll(dDir, 0o755))

	for _, name := range []string{
		"2026-03-13_0830.html",
		"2026-03-14_1200.html",
		"2026-03-14.html", // legacy date-only: ignored
		"notes.txt",
		"index.html",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dDir, name), []byte("x"), 0o644))
	}

	entries, err := ListArchive(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// Newest first.
	assert.Equal(t, "2026-03-14_1200", entries[0].RunID)
	assert.Equal(t, "2026-03-14 12:00", entries[0].Label)
	assert.Equal(t, "2026-03-13_0830", entries[1].RunID)
}

func TestListArchiveMissingDir(t *testing.T) {
	entries, err := ListArchive(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, entries)
}
