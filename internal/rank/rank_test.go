package rank

import (
	"math"
	"testing"

	"channelrank/internal/channel"
	"channelrank/internal/profile"
)

func almostEqual(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestRankWorkedExample(t *testing.T) {
	// Tech Bro preset against a tech channel and a politics channel.
	p := &profile.Profile{}
	p.SetAll(map[string]float64{"science_technology": 1.0, "business": 0.8})
	channels := []channel.Channel{
		{ID: "election_2026", Name: "Election 2026 Countdown", Topics: map[string]float64{"us_politics": 0.85, "business": 0.25}},
		{ID: "tech_daily", Name: "Tech Daily News", Topics: map[string]float64{"science_technology": 0.95}},
	}
	results := Rank(p, channels)
	if results[0].Channel.ID != "tech_daily" {
		t.Fatalf("expected tech_daily first, got %s", results[0].Channel.ID)
	}
	if !almostEqual(results[0].Relevance, 0.95) {
		t.Fatalf("tech_daily relevance = %v, want 0.95", results[0].Relevance)
	}
	// us_politics has no profile entry: neutral 0.5, not zero.
	if !almostEqual(results[1].Relevance, 0.5*0.85+0.8*0.25) {
		t.Fatalf("election_2026 relevance = %v, want 0.625", results[1].Relevance)
	}
}

func TestRankIsPermutation(t *testing.T) {
	p := profile.New([]string{"a", "b"})
	channels := []channel.Channel{
		{ID: "one", Topics: map[string]float64{"a": 0.3}},
		{ID: "two", Topics: map[string]float64{"b": 0.9}},
		{ID: "three", Topics: nil},
		{ID: "four", Topics: map[string]float64{"a": 0.3, "b": 0.3}},
	}
	results := Rank(p, channels)
	if len(results) != len(channels) {
		t.Fatalf("got %d results, want %d", len(results), len(channels))
	}
	seen := make(map[string]bool)
	for _, r := range results {
		if seen[r.Channel.ID] {
			t.Fatalf("duplicate channel %s", r.Channel.ID)
		}
		seen[r.Channel.ID] = true
	}
	for _, c := range channels {
		if !seen[c.ID] {
			t.Fatalf("channel %s dropped", c.ID)
		}
	}
}

func TestRankStableOnTies(t *testing.T) {
	p := profile.New([]string{"a", "b"})
	// Same total confidence on a neutral profile: identical relevance.
	channels := []channel.Channel{
		{ID: "first", Topics: map[string]float64{"a": 0.4}},
		{ID: "second", Topics: map[string]float64{"b": 0.4}},
		{ID: "third", Topics: map[string]float64{"a": 0.2, "b": 0.2}},
	}
	results := Rank(p, channels)
	order := []string{results[0].Channel.ID, results[1].Channel.ID, results[2].Channel.ID}
	want := []string{"first", "second", "third"}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("tie order = %v, want input order %v", order, want)
		}
	}
}

func TestRankAllZeroProfileDegenerates(t *testing.T) {
	p := &profile.Profile{}
	p.SetAll(map[string]float64{"a": 0, "b": 0})
	channels := []channel.Channel{
		{ID: "x", Topics: map[string]float64{"a": 0.9}},
		{ID: "y", Topics: map[string]float64{"b": 0.1}},
	}
	results := Rank(p, channels)
	if results[0].Relevance != 0 || results[1].Relevance != 0 {
		t.Fatalf("expected all-zero relevance, got %v and %v", results[0].Relevance, results[1].Relevance)
	}
	if results[0].Channel.ID != "x" || results[1].Channel.ID != "y" {
		t.Fatalf("stability must decide the degenerate order")
	}
}

func TestRankEmptyCatalog(t *testing.T) {
	p := profile.New([]string{"a"})
	results := Rank(p, nil)
	if len(results) != 0 {
		t.Fatalf("expected empty result, got %d", len(results))
	}
}

func TestRankEmptyTopicsSortsLast(t *testing.T) {
	p := profile.New([]string{"a"})
	channels := []channel.Channel{
		{ID: "empty", Topics: map[string]float64{}},
		{ID: "full", Topics: map[string]float64{"a": 0.5}},
	}
	results := Rank(p, channels)
	if results[len(results)-1].Channel.ID != "empty" {
		t.Fatalf("empty-topic channel should sort last")
	}
	if results[len(results)-1].Relevance != 0 {
		t.Fatalf("empty-topic relevance = %v, want 0", results[len(results)-1].Relevance)
	}
}

func TestRelevanceNeutralDefaultEquivalence(t *testing.T) {
	c := channel.Channel{ID: "c", Topics: map[string]float64{"known": 0.6, "unknown": 0.4}}
	sparse := &profile.Profile{}
	sparse.SetAll(map[string]float64{"known": 0.9})
	dense := &profile.Profile{}
	dense.SetAll(map[string]float64{"known": 0.9, "unknown": 0.5})
	if !almostEqual(Relevance(sparse, c), Relevance(dense, c)) {
		t.Fatalf("missing entry must score as explicit 0.5: %v vs %v",
			Relevance(sparse, c), Relevance(dense, c))
	}
}

func TestRelevanceMonotonicity(t *testing.T) {
	c := channel.Channel{ID: "c", Topics: map[string]float64{"a": 0.7, "b": 0.2}}
	low := &profile.Profile{}
	low.SetAll(map[string]float64{"a": 0.2, "b": 0.5})
	high := &profile.Profile{}
	high.SetAll(map[string]float64{"a": 0.8, "b": 0.5})
	if Relevance(high, c) <= Relevance(low, c) {
		t.Fatalf("raising a positively-weighted topic score must strictly raise relevance")
	}
	// A channel without the topic is unaffected.
	other := channel.Channel{ID: "o", Topics: map[string]float64{"b": 0.3}}
	if !almostEqual(Relevance(high, other), Relevance(low, other)) {
		t.Fatalf("unrelated channel relevance must not change")
	}
}

func TestRelevanceDeterminism(t *testing.T) {
	p := &profile.Profile{}
	p.SetAll(map[string]float64{"a": 0.35, "b": 0.8})
	c := channel.Channel{ID: "c", Topics: map[string]float64{"a": 0.6, "b": 0.45}}
	first := Relevance(p, c)
	for i := 0; i < 10; i++ {
		if got := Relevance(p, c); got != first {
			t.Fatalf("relevance changed across calls: %v vs %v", got, first)
		}
	}
}

func TestRelevanceNegativePassthrough(t *testing.T) {
	// Out-of-range inputs are not validated; they flow through the arithmetic.
	p := &profile.Profile{}
	p.SetAll(map[string]float64{"a": -0.5})
	c := channel.Channel{ID: "c", Topics: map[string]float64{"a": 0.4}}
	if !almostEqual(Relevance(p, c), -0.2) {
		t.Fatalf("negative score must propagate, got %v", Relevance(p, c))
	}
}

func TestRankDoesNotMutateChannels(t *testing.T) {
	p := profile.New([]string{"a"})
	channels := []channel.Channel{{ID: "c", Name: "C", Topics: map[string]float64{"a": 0.4}}}
	results := Rank(p, channels)
	if results[0].Channel.Name != "C" || results[0].Channel.Topics["a"] != 0.4 {
		t.Fatalf("result must carry the original channel fields")
	}
	if channels[0].Topics["a"] != 0.4 {
		t.Fatalf("source channel mutated")
	}
}

func TestBreakdownOrderAndProducts(t *testing.T) {
	p := &profile.Profile{}
	p.SetAll(map[string]float64{"a": 0.5, "b": 1.0})
	c := channel.Channel{ID: "c", Topics: map[string]float64{"a": 0.9, "b": 0.3}}
	bd := Breakdown(p, c)
	if len(bd) != 2 {
		t.Fatalf("got %d contributions, want 2", len(bd))
	}
	if bd[0].Topic != "a" || bd[1].Topic != "b" {
		t.Fatalf("breakdown must order by confidence descending")
	}
	if !almostEqual(bd[0].Product, 0.45) || !almostEqual(bd[1].Product, 0.3) {
		t.Fatalf("products = %v, %v", bd[0].Product, bd[1].Product)
	}
	total := bd[0].Product + bd[1].Product
	if !almostEqual(total, Relevance(p, c)) {
		t.Fatalf("breakdown must sum to relevance: %v vs %v", total, Relevance(p, c))
	}
}
