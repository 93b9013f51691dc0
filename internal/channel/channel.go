package channel

// Channel is a content source annotated with sparse per-topic
// confidence weights in [0,1]. Unlisted topics are absent, not zero.
// Catalog entries are read-only reference data once loaded; the
// ranking engine never mutates them.
type Channel struct {
	ID     string             `yaml:"id"`
	Name   string             `yaml:"name"`
	Topics map[string]float64 `yaml:"topics"`
}

// TotalConfidence sums the channel's confidence weights. Under an
// all-neutral profile, ranking order reduces to this total.
func (c Channel) TotalConfidence() float64 {
	sum := 0.0
	for _, conf := range c.Topics {
		sum += conf
	}
	return sum
}
