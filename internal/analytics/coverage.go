package analytics

import (
	"sort"

	"channelrank/internal/channel"
)

// Coverage summarizes how a catalog covers one topic.
type Coverage struct {
	Channels        int
	TotalConfidence float64
	MaxConfidence   float64
}

// TopicCoverage aggregates per-topic confidence across a catalog.
func TopicCoverage(channels []channel.Channel) map[string]Coverage {
	out := make(map[string]Coverage)
	for _, c := range channels {
		for id, conf := range c.Topics {
			cov := out[id]
			cov.Channels++
			cov.TotalConfidence += conf
			if conf > cov.MaxConfidence {
				cov.MaxConfidence = conf
			}
			out[id] = cov
		}
	}
	return out
}

// SortedTopicIDs returns coverage keys sorted by channel count
// descending, ties broken by id.
func SortedTopicIDs(m map[string]Coverage) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if m[ids[i]].Channels != m[ids[j]].Channels {
			return m[ids[i]].Channels > m[ids[j]].Channels
		}
		return ids[i] < ids[j]
	})
	return ids
}
