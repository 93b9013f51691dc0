package util

import "testing"

func TestBar(t *testing.T) {
	if got := Bar(0.5, 20); got != "██████████" {
		t.Fatalf("Bar(0.5, 20) = %q", got)
	}
	if got := Bar(0, 20); got != "" {
		t.Fatalf("Bar(0) should be empty, got %q", got)
	}
	if got := Bar(1.5, 4); got != "████" {
		t.Fatalf("out-of-range score must clamp for display, got %q", got)
	}
	if got := Bar(-1, 4); got != "" {
		t.Fatalf("negative score must clamp to empty, got %q", got)
	}
	if got := Bar(0.9, 0); got != "" {
		t.Fatalf("zero width must be empty, got %q", got)
	}
}

func TestTopicsByConfidence(t *testing.T) {
	topics := map[string]float64{"b": 0.3, "a": 0.3, "c": 0.9}
	got := TopicsByConfidence(topics)
	want := []string{"c", "a", "b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}
