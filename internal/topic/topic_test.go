package topic

import (
	"errors"
	"testing"
)

func TestDefaultRegistryOrder(t *testing.T) {
	reg := Default()
	ids := reg.IDs()
	if len(ids) != 10 {
		t.Fatalf("got %d topics, want 10", len(ids))
	}
	if ids[0] != "science_technology" || ids[len(ids)-1] != "health_wellness" {
		t.Fatalf("canonical order broken: first=%s last=%s", ids[0], ids[len(ids)-1])
	}
}

func TestDisplayKnownTopic(t *testing.T) {
	reg := Default()
	got, err := reg.Display("sports")
	if err != nil {
		t.Fatal(err)
	}
	if got != "⚽️ Sports" {
		t.Fatalf("display = %q", got)
	}
}

func TestDisplayUnknownTopic(t *testing.T) {
	reg := Default()
	_, err := reg.Display("nope")
	if !errors.Is(err, ErrUnknownTopic) {
		t.Fatalf("expected ErrUnknownTopic, got %v", err)
	}
}

func TestContains(t *testing.T) {
	reg := Default()
	if !reg.Contains("business") {
		t.Fatalf("business should be registered")
	}
	if reg.Contains("crypto") {
		t.Fatalf("crypto should not be registered")
	}
}

func TestDescriptorsIsACopy(t *testing.T) {
	reg := Default()
	descs := reg.Descriptors()
	descs[0].Label = "mutated"
	if reg.Descriptors()[0].Label == "mutated" {
		t.Fatalf("Descriptors leaked internal state")
	}
}
