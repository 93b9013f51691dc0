package util

import (
	"sort"
	"strings"
)

// Bar renders a score in [0,1] as a text bar of the given width.
// Out-of-range scores are clamped for display only.
func Bar(score float64, width int) string {
	if width <= 0 {
		return ""
	}
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	n := int(score * float64(width))
	return strings.Repeat("█", n)
}

// TopicsByConfidence returns the map's topic ids sorted by confidence
// descending, ties broken by id, for deterministic display.
func TopicsByConfidence(topics map[string]float64) []string {
	ids := make([]string, 0, len(topics))
	for id := range topics {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if topics[ids[i]] != topics[ids[j]] {
			return topics[ids[i]] > topics[ids[j]]
		}
		return ids[i] < ids[j]
	})
	return ids
}
