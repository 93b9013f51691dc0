package rank

import (
	"sort"

	"channelrank/internal/channel"
	"channelrank/internal/profile"
)

// Result pairs a channel with its computed relevance for one profile.
// Results are produced fresh on every call and carry the original
// channel unchanged.
type Result struct {
	Channel   channel.Channel
	Relevance float64
}

// Contribution shows how one topic contributed to a relevance score.
type Contribution struct {
	Topic      string
	Confidence float64
	Score      float64
	Product    float64
}

// Relevance is the dot product of the profile's preference scores and
// the channel's sparse confidence weights. Topics missing from the
// profile count as neutral (0.5), never zero, so a channel is not
// penalized for topics the profile has not been told about. A channel
// with no topics scores 0. Out-of-range values are not validated;
// they propagate arithmetically.
func Relevance(p *profile.Profile, c channel.Channel) float64 {
	sum := 0.0
	for topic, confidence := range c.Topics {
		sum += p.Score(topic) * confidence
	}
	return sum
}

// Rank scores every channel against p and returns them in descending
// relevance order. The sort is stable: channels with equal relevance
// keep their input order. Rank is a pure function of its inputs and
// retains no state between calls.
func Rank(p *profile.Profile, channels []channel.Channel) []Result {
	results := make([]Result, 0, len(channels))
	for _, c := range channels {
		results = append(results, Result{Channel: c, Relevance: Relevance(p, c)})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	return results
}

// Breakdown lists per-topic contributions for c under p, ordered by
// confidence descending with ties broken by topic id so the listing
// is deterministic.
func Breakdown(p *profile.Profile, c channel.Channel) []Contribution {
	out := make([]Contribution, 0, len(c.Topics))
	for topic, confidence := range c.Topics {
		s := p.Score(topic)
		out = append(out, Contribution{
			Topic:      topic,
			Confidence: confidence,
			Score:      s,
			Product:    s * confidence,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Confidence != out[j].Confidence {
			return out[i].Confidence > out[j].Confidence
		}
		return out[i].Topic < out[j].Topic
	})
	return out
}
