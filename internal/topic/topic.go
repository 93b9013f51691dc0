package topic

import (
	"errors"
	"fmt"
)

// Descriptor describes one content topic: a stable identifier plus
// display metadata.
type Descriptor struct {
	ID    string
	Label string
	Glyph string
}

// ErrUnknownTopic is returned when display info is requested for an id
// that is not in the registry.
var ErrUnknownTopic = errors.New("unknown topic id")

// Registry is a fixed, ordered set of topic descriptors. It is built
// once at startup and never mutated.
type Registry struct {
	ordered []Descriptor
	byID    map[string]Descriptor
}

var defaults = []Descriptor{
	{ID: "science_technology", Label: "Science & Technology", Glyph: "🤖"},
	{ID: "business", Label: "Business", Glyph: "🧳"},
	{ID: "us_politics", Label: "U.S. Politics", Glyph: "🇺🇸"},
	{ID: "faith_spirituality", Label: "Faith & Spirituality", Glyph: "🔮"},
	{ID: "dating_relationships", Label: "Dating & Relationships", Glyph: "💕"},
	{ID: "sports", Label: "Sports", Glyph: "⚽️"},
	{ID: "live_music", Label: "Live Music", Glyph: "🎶"},
	{ID: "entertainment", Label: "Entertainment", Glyph: "📺"},
	{ID: "personal_development", Label: "Personal Development", Glyph: "📚"},
	{ID: "health_wellness", Label: "Health & Wellness", Glyph: "💪"},
}

// NewRegistry builds a registry from descriptors, preserving their order.
func NewRegistry(descs []Descriptor) *Registry {
	r := &Registry{
		ordered: make([]Descriptor, len(descs)),
		byID:    make(map[string]Descriptor, len(descs)),
	}
	copy(r.ordered, descs)
	for _, d := range descs {
		r.byID[d.ID] = d
	}
	return r
}

// Default returns the registry of built-in topics.
func Default() *Registry {
	return NewRegistry(defaults)
}

// Descriptors returns the topics in canonical order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// IDs returns the topic ids in canonical order.
func (r *Registry) IDs() []string {
	out := make([]string, 0, len(r.ordered))
	for _, d := range r.ordered {
		out = append(out, d.ID)
	}
	return out
}

// Contains reports whether id is registered.
func (r *Registry) Contains(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Display returns "{glyph} {label}" for id, or ErrUnknownTopic if the
// id is not registered. Callers rendering untrusted ids should fall
// back to the raw id on error.
func (r *Registry) Display(id string) (string, error) {
	d, ok := r.byID[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTopic, id)
	}
	return d.Glyph + " " + d.Label, nil
}
