package profile

// Neutral is the preference score meaning "no opinion yet".
const Neutral = 0.5

// Profile maps topic ids to preference scores in [0,1]: 0.0 strong
// dislike, 0.5 neutral, 1.0 strong like. It is a plain value object;
// callers mutate it freely between ranking calls. The zero value is
// usable and treats every topic as neutral.
type Profile struct {
	scores map[string]float64
}

// New initializes every given topic id to the neutral score. An empty
// id list yields a valid, vacuous profile.
func New(ids []string) *Profile {
	p := &Profile{scores: make(map[string]float64, len(ids))}
	for _, id := range ids {
		p.scores[id] = Neutral
	}
	return p
}

// SetAll replaces the entire score mapping with a copy of m. The copy
// keeps caller and profile from aliasing mutable state. Range and
// completeness are the caller's concern; ranking tolerates gaps.
func (p *Profile) SetAll(m map[string]float64) {
	p.scores = make(map[string]float64, len(m))
	for id, s := range m {
		p.scores[id] = s
	}
}

// Set overwrites a single topic's score, leaving others untouched.
// No bounds checking: upstream input controls keep values in range.
func (p *Profile) Set(id string, score float64) {
	if p.scores == nil {
		p.scores = make(map[string]float64)
	}
	p.scores[id] = score
}

// Score returns the stored score for id, or Neutral when the profile
// has no entry. A missing entry is never an error and never zero, so
// channels are not penalized for topics the profile was never told
// about.
func (p *Profile) Score(id string) float64 {
	if s, ok := p.scores[id]; ok {
		return s
	}
	return Neutral
}

// Scores returns a copy of the current score mapping.
func (p *Profile) Scores() map[string]float64 {
	out := make(map[string]float64, len(p.scores))
	for id, s := range p.scores {
		out[id] = s
	}
	return out
}
