// Package snapshot assembles and writes the structured run artifact,
// and lists previously archived runs.
package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/openclaw/dailyintel/internal/models"
)

// Build assembles the run snapshot. Item order must be the ranking
// assembler's global order; it is carried through untouched.
func Build(date, runID, label string, meta models.RunMeta, items []models.NewsItem, reddit []models.RedditPost) models.Snapshot {
	out := make([]models.SnapshotItem, len(items))
	for i, it := range items {
		out[i] = models.SnapshotItem{
			Title:       it.Title,
			URL:         it.URL,
			Description: it.Description,
			Host:        it.Hostname,
			Published:   it.Published,
			Category:    it.Category,
			Score:       round3(it.Score),
		}
	}
	if reddit == nil {
		reddit = []models.RedditPost{}
	}
	return models.Snapshot{
		Date:   date,
		RunID:  runID,
		Label:  label,
		Meta:   meta,
		Items:  out,
		Reddit: reddit,
	}
}

// Write stores the snapshot under dir/data as both <runID>.json and
// latest.json, the convenience handle for clients.
func Write(dir string, snap models.Snapshot) error {
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	payload, err := marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	for _, name := range []string{snap.RunID + ".json", "latest.json"} {
		if err := os.WriteFile(filepath.Join(dataDir, name), payload, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// marshal produces indented JSON without HTML escaping, so the Chinese
// category labels stay readable in the artifact.
func marshal(snap models.Snapshot) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ArchiveEntry is one archived run, for the archive index page.
type ArchiveEntry struct {
	RunID string // e.g. 2026-03-14_0830
	Label string // e.g. 2026-03-14 08:30
}

var runIDPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_(\d{2})(\d{2})$`)

// ListArchive scans dir/d for archived report pages and returns their
// entries, newest first. File names that are not timestamp-derived run
// identifiers (legacy date-only archives included) are ignored.
func ListArchive(dir string) ([]ArchiveEntry, error) {
	files, err := os.ReadDir(filepath.Join(dir, "d"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read archive dir: %w", err)
	}

	var entries []ArchiveEntry
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || !strings.HasSuffix(name, ".html") {
			continue
		}
		stem := strings.TrimSuffix(name, ".html")
		m := runIDPattern.FindStringSubmatch(stem)
		if m == nil {
			continue
		}
		entries = append(entries, ArchiveEntry{
			RunID: stem,
			Label: fmt.Sprintf("%s %s:%s", m[1], m[2], m[3]),
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].RunID > entries[j].RunID })
	return entries, nil
}

func round3(f float64) float64 {
	return math.Round(f*1000) / 1000
}
