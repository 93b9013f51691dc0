package scenario

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario is a named preset profile used as fixture data by the
// profile supplier. Presets are not part of the engine contract.
type Scenario struct {
	Key         string             `yaml:"key"`
	Name        string             `yaml:"name"`
	Description string             `yaml:"description"`
	Scores      map[string]float64 `yaml:"scores"`
}

// file is the on-disk scenarios shape.
type file struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f.Scenarios, nil
}

// Find returns the scenario with the given key.
func Find(scenarios []Scenario, key string) (Scenario, bool) {
	for _, s := range scenarios {
		if s.Key == key {
			return s, true
		}
	}
	return Scenario{}, false
}

// Defaults returns the built-in preset scenarios.
func Defaults() []Scenario {
	return []Scenario{
		{
			Key:         "neutral",
			Name:        "🔘 Neutral User",
			Description: "No preferences yet (all 0.5)",
			Scores: map[string]float64{
				"science_technology":   0.5,
				"business":             0.5,
				"us_politics":          0.5,
				"faith_spirituality":   0.5,
				"dating_relationships": 0.5,
				"sports":               0.5,
				"live_music":           0.5,
				"entertainment":        0.5,
				"personal_development": 0.5,
				"health_wellness":      0.5,
			},
		},
		{
			Key:         "tech_bro",
			Name:        "💻 Tech Bro",
			Description: "Tech & Business focused",
			Scores: map[string]float64{
				"science_technology":   1.0,
				"business":             0.8,
				"personal_development": 0.4,
				"health_wellness":      0.3,
				"sports":               0.3,
				"entertainment":        0.2,
				"us_politics":          0.2,
				"faith_spirituality":   0.1,
				"dating_relationships": 0.2,
				"live_music":           0.2,
			},
		},
		{
			Key:         "wellness_enthusiast",
			Name:        "🧘 Wellness Enthusiast",
			Description: "Health, personal growth & spirituality",
			Scores: map[string]float64{
				"health_wellness":      1.0,
				"personal_development": 0.8,
				"faith_spirituality":   0.6,
				"dating_relationships": 0.5,
				"science_technology":   0.3,
				"entertainment":        0.3,
				"live_music":           0.4,
				"business":             0.2,
				"sports":               0.2,
				"us_politics":          0.1,
			},
		},
		{
			Key:         "sports_fan",
			Name:        "⚽ Sports Fan (No Politics)",
			Description: "Loves sports, hates politics",
			Scores: map[string]float64{
				"sports":               1.0,
				"entertainment":        0.6,
				"live_music":           0.4,
				"health_wellness":      0.5,
				"business":             0.3,
				"science_technology":   0.3,
				"personal_development": 0.3,
				"dating_relationships": 0.3,
				"faith_spirituality":   0.2,
				"us_politics":          0.0,
			},
		},
		{
			Key:         "generalist",
			Name:        "🌐 Generalist",
			Description: "Interested in everything moderately",
			Scores: map[string]float64{
				"science_technology":   0.7,
				"business":             0.7,
				"us_politics":          0.7,
				"faith_spirituality":   0.7,
				"dating_relationships": 0.7,
				"sports":               0.7,
				"live_music":           0.7,
				"entertainment":        0.7,
				"personal_development": 0.7,
				"health_wellness":      0.7,
			},
		},
		{
			Key:         "focused_specialist",
			Name:        "🎯 Focused Specialist",
			Description: "Only cares about business",
			Scores: map[string]float64{
				"business":             1.0,
				"science_technology":   0.2,
				"us_politics":          0.2,
				"faith_spirituality":   0.2,
				"dating_relationships": 0.2,
				"sports":               0.2,
				"live_music":           0.2,
				"entertainment":        0.2,
				"personal_development": 0.2,
				"health_wellness":      0.2,
			},
		},
	}
}
