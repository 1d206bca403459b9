// Package score computes the relevance/freshness score for a news item.
// Scoring is additive and side-effect free: host tier base, category
// boost, title keyword boosts, and a linearly decaying recency bonus.
package score

import (
	"strings"
	"time"

	"github.com/openclaw/dailyintel/internal/catalog"
	"github.com/openclaw/dailyintel/internal/hosts"
)

// Tier base scores.
const (
	preferredBase = 2.2
	communityBase = 1.4
	otherHostBase = 0.4
)

// High-velocity categories move fastest and are weighted to surface
// first.
var highVelocity = map[string]struct{}{
	catalog.Releases:   {},
	catalog.OpenSource: {},
}

var launchMarkers = []string{"launch", "release", "announce", "introduc", "beta"}

var incidentMarkers = []string{"security", "leak", "breach", "ban", "lawsuit", "vulnerability"}

// Recency bonus: full bonus at age 0, decaying to nothing at decayHours.
const (
	recencyMax = 1.2
	decayHours = 36.0
)

// Scorer scores items against a host classifier. Now is the wall-clock
// source; it defaults to time.Now and is injectable for tests.
type Scorer struct {
	Hosts *hosts.Classifier
	Now   func() time.Time
}

// New returns a Scorer over the given classifier using the real clock.
func New(c *hosts.Classifier) *Scorer {
	return &Scorer{Hosts: c, Now: time.Now}
}

// Score computes the item score. Deterministic given the current
// wall-clock time; no term is mutually exclusive with another and no
// upper bound is enforced.
func (s *Scorer) Score(hostname, title string, published *string, category string) float64 {
	var total float64

	if h := strings.ToLower(hostname); h != "" {
		switch s.Hosts.Tier(h) {
		case hosts.Preferred:
			total += preferredBase
		case hosts.Community:
			total += communityBase
		default:
			total += otherHostBase
		}
	}

	if _, ok := highVelocity[category]; ok {
		total += 1.0
	}

	tl := strings.ToLower(title)
	if containsAny(tl, launchMarkers) {
		total += 0.6
	}
	if containsAny(tl, incidentMarkers) {
		total += 0.35
	}

	if ts, ok := ParseTime(published); ok {
		ageHours := s.Now().Sub(ts).Hours()
		if ageHours < 0 {
			ageHours = 0
		}
		total += max(0, recencyMax-min(recencyMax, ageHours/decayHours))
	}

	return total
}

func containsAny(text string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(text, m) {
			return true
		}
	}
	return false
}

// isoLayouts are tried in order. Timezone-naive layouts parse as UTC.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a provider timestamp as ISO-8601. Timezone-naive
// values are treated as UTC. Returns false for nil, empty, or
// unparsable input.
func ParseTime(raw *string) (time.Time, bool) {
	if raw == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
