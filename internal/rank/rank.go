// Package rank produces the stable global and per-category orderings of
// scored items.
package rank

import (
	"sort"

	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/models"
	"github.com/openclaw/dailyintel/internal/score"
)

// Display truncation limits.
const (
	HighlightLimit = 10
	CategoryLimit  = 8
)

// Sort orders items in place: score descending, then parsed published
// timestamp descending. The sort is stable, so items with identical
// score and timestamp keep their ingestion order. Absent or unparsable
// timestamps rank as oldest.
func Sort(items []models.NewsItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Score != items[j].Score {
			return items[i].Score > items[j].Score
		}
		ti, _ := score.ParseTime(items[i].Published)
		tj, _ := score.ParseTime(items[j].Published)
		return ti.After(tj)
	})
}

// Highlights returns the top n of the globally sorted list.
func Highlights(items []models.NewsItem, n int) []models.NewsItem {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

// Group is one category's display section.
type Group struct {
	Category string
	Items    []models.NewsItem
}

// ByCategory splits the globally sorted list into per-category groups,
// preserving the global order within each group and truncating each to
// limit entries. Categories appear in display priority order; empty
// categories are omitted.
func ByCategory(items []models.NewsItem, limit int) []Group {
	byCat := make(map[string][]models.NewsItem)
	for _, it := range items {
		byCat[it.Category] = append(byCat[it.Category], it)
	}

	var groups []Group
	for _, cat := range catalog.Categories() {
		lst := byCat[cat]
		if len(lst) == 0 {
			continue
		}
		if len(lst) > limit {
			lst = lst[:limit]
		}
		groups = append(groups, Group{Category: cat, Items: lst})
	}
	return groups
}
