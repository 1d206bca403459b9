// Package hosts decides whether a search result's source host is
// blocked, allowed, preferred, or community, driving both filtering and
// scoring.
package hosts

import "strings"

// Classification is the outcome of classifying one result's host.
type Classification int

const (
	// Blocked results are dropped unconditionally, before scoring.
	Blocked Classification = iota
	// Preferred hosts are curated high-trust publisher domains.
	Preferred
	// Community hosts are curated developer/community platforms.
	Community
	// AllowedOther hosts are in the extended allow set but neither
	// preferred nor community.
	AllowedOther
	// Disallowed hosts are in no allow set and are dropped before
	// scoring.
	Disallowed
)

func (c Classification) String() string {
	switch c {
	case Blocked:
		return "blocked"
	case Preferred:
		return "preferred"
	case Community:
		return "community"
	case AllowedOther:
		return "allowed-other"
	default:
		return "disallowed"
	}
}

// Sets holds the host lists and spam markers a Classifier is built
// from. Loaded once at startup and injected so tests can substitute
// their own lists.
type Sets struct {
	Block      []string
	Preferred  []string
	Community  []string
	ExtraAllow []string
	// SpamMarkers are matched case-insensitively against title+description.
	SpamMarkers []string
}

// DefaultSets returns the curated production lists.
func DefaultSets() Sets {
	return Sets{
		// Video/forum/aggregator hosts known to produce low-signal or
		// non-news results.
		Block: []string{
			"youtube.com",
			"youtu.be",
			"news.ycombinator.com",
			"reddit.com",
		},
		Preferred: []string{
			"reuters.com",
			"ft.com",
			"bloomberg.com",
			"cnbc.com",
			"techcrunch.com",
			"theverge.com",
			"wired.com",
			"nytimes.com",
			"wsj.com",
			"openai.com",
			"anthropic.com",
			"blog.google",
			"ai.google",
			"deepmind.google",
			"nvidia.com",

			// Chinese high-signal outlets / portals
			"36kr.com",
			"jiqizhixin.com",
			"qbitai.com",
			"leiphone.com",
			"tmtpost.com",
			"ithome.com",
			"xinhuanet.com",
		},
		Community: []string{
			"github.com",
			"huggingface.co",
			"producthunt.com",
		},
		ExtraAllow: []string{
			"arxiv.org",
			"substack.com",
		},
		SpamMarkers: []string{"sponsored", "press release", "wikipedia"},
	}
}

// Classifier answers allow/block questions about hostnames. Matching is
// case-insensitive and treats a "www." prefix as equivalent to the bare
// host, in both directions.
type Classifier struct {
	block       map[string]struct{}
	preferred   map[string]struct{}
	community   map[string]struct{}
	extraAllow  map[string]struct{}
	spamMarkers []string
}

// New builds a Classifier from the given sets.
func New(sets Sets) *Classifier {
	return &Classifier{
		block:       toSet(sets.Block),
		preferred:   toSet(sets.Preferred),
		community:   toSet(sets.Community),
		extraAllow:  toSet(sets.ExtraAllow),
		spamMarkers: sets.SpamMarkers,
	}
}

func toSet(hosts []string) map[string]struct{} {
	m := make(map[string]struct{}, len(hosts))
	for _, h := range hosts {
		m[strings.ToLower(h)] = struct{}{}
	}
	return m
}

// contains reports membership with www-equivalence: the host matches if
// it, its www-stripped form, or its www-prefixed form is in the set.
func contains(set map[string]struct{}, host string) bool {
	if _, ok := set[host]; ok {
		return true
	}
	if bare, found := strings.CutPrefix(host, "www."); found {
		if _, ok := set[bare]; ok {
			return true
		}
	} else if _, ok := set["www."+host]; ok {
		return true
	}
	return false
}

// Classify determines how a result with the given hostname, title, and
// description should be treated.
func (c *Classifier) Classify(host, title, desc string) Classification {
	h := strings.ToLower(host)
	if contains(c.block, h) {
		return Blocked
	}
	text := strings.ToLower(title + " " + desc)
	for _, marker := range c.spamMarkers {
		if strings.Contains(text, marker) {
			return Blocked
		}
	}
	if h == "" {
		return Disallowed
	}
	switch {
	case contains(c.preferred, h):
		return Preferred
	case contains(c.community, h):
		return Community
	case contains(c.extraAllow, h):
		return AllowedOther
	}
	return Disallowed
}

// Tier reports the scoring tier for a hostname, ignoring spam markers.
func (c *Classifier) Tier(host string) Classification {
	h := strings.ToLower(host)
	switch {
	case contains(c.preferred, h):
		return Preferred
	case contains(c.community, h):
		return Community
	}
	return AllowedOther
}
