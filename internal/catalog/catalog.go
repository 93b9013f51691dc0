package catalog

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"channelrank/internal/channel"
)

// file is the on-disk catalog shape.
type file struct {
	Channels []channel.Channel `yaml:"channels"`
}

// Load reads a YAML catalog from path. Channel order in the file is
// preserved; the ranking tie-break depends on it.
func Load(path string) ([]channel.Channel, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return f.Channels, nil
}

// Save writes a YAML catalog to path, creating directories as needed.
func Save(path string, channels []channel.Channel) error {
	if path == "" {
		return errors.New("empty path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(file{Channels: channels})
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Seed returns the built-in demo catalog. It mixes pure single-topic
// channels, blends, broad-appeal channels with many low-confidence
// topics, and a few unusual combinations.
func Seed() []channel.Channel {
	return []channel.Channel{
		// Single topic channels
		{ID: "tech_daily", Name: "Tech Daily News", Topics: map[string]float64{"science_technology": 0.95}},
		{ID: "startup_hustle", Name: "Startup Hustle", Topics: map[string]float64{"business": 0.9}},
		{ID: "capitol_watch", Name: "Capitol Watch", Topics: map[string]float64{"us_politics": 0.92}},
		{ID: "game_on", Name: "Game On Sports", Topics: map[string]float64{"sports": 0.88}},
		{ID: "wellness_journey", Name: "The Wellness Journey", Topics: map[string]float64{"health_wellness": 0.85}},
		{ID: "ai_frontier", Name: "AI Frontier", Topics: map[string]float64{"science_technology": 0.98}},
		{ID: "concert_live", Name: "Concert Nights Live", Topics: map[string]float64{"live_music": 0.93}},
		{ID: "spiritual_path", Name: "The Spiritual Path", Topics: map[string]float64{"faith_spirituality": 0.89}},
		{ID: "dating_decoded", Name: "Dating Decoded", Topics: map[string]float64{"dating_relationships": 0.87}},
		{ID: "hollywood_insider", Name: "Hollywood Insider", Topics: map[string]float64{"entertainment": 0.91}},

		// Two-topic blends
		{ID: "tech_business", Name: "Tech & Business Today", Topics: map[string]float64{"science_technology": 0.7, "business": 0.6}},
		{ID: "sports_entertainment", Name: "Sports & Pop Culture", Topics: map[string]float64{"sports": 0.6, "entertainment": 0.5}},
		{ID: "love_life_coach", Name: "Love & Life Coaching", Topics: map[string]float64{"dating_relationships": 0.7, "personal_development": 0.5}},
		{ID: "faith_wellness", Name: "Spiritual Wellness", Topics: map[string]float64{"faith_spirituality": 0.6, "health_wellness": 0.5}},
		{ID: "political_business", Name: "Policy & Markets", Topics: map[string]float64{"us_politics": 0.6, "business": 0.5}},
		{ID: "indie_music_scene", Name: "Indie Music Scene", Topics: map[string]float64{"live_music": 0.8, "entertainment": 0.3}},
		{ID: "fitness_tech", Name: "FitTech Weekly", Topics: map[string]float64{"health_wellness": 0.65, "science_technology": 0.45}},
		{ID: "growth_mindset", Name: "Growth Mindset Daily", Topics: map[string]float64{"personal_development": 0.75, "business": 0.4}},
		{ID: "political_comedy", Name: "Political Comedy Hour", Topics: map[string]float64{"us_politics": 0.55, "entertainment": 0.6}},
		{ID: "faith_relationships", Name: "Faith & Family", Topics: map[string]float64{"faith_spirituality": 0.65, "dating_relationships": 0.45}},

		// Three-topic blends
		{ID: "mindful_entrepreneur", Name: "The Mindful Entrepreneur", Topics: map[string]float64{"business": 0.5, "personal_development": 0.6, "health_wellness": 0.4}},
		{ID: "athlete_mindset", Name: "Athlete's Mindset", Topics: map[string]float64{"sports": 0.55, "personal_development": 0.5, "health_wellness": 0.45}},
		{ID: "tech_politics_society", Name: "Tech, Policy & Society", Topics: map[string]float64{"science_technology": 0.5, "us_politics": 0.5, "business": 0.3}},
		{ID: "creative_entrepreneur", Name: "The Creative Entrepreneur", Topics: map[string]float64{"business": 0.45, "entertainment": 0.4, "personal_development": 0.4}},
		{ID: "wellness_spirituality_life", Name: "Holistic Living", Topics: map[string]float64{"health_wellness": 0.5, "faith_spirituality": 0.45, "personal_development": 0.4}},

		// Broad appeal, many topics at low confidence
		{ID: "morning_show", Name: "The Morning Show", Topics: map[string]float64{"entertainment": 0.4, "us_politics": 0.3, "business": 0.25, "sports": 0.3, "health_wellness": 0.25}},
		{ID: "modern_life", Name: "Modern Life Podcast", Topics: map[string]float64{"science_technology": 0.35, "dating_relationships": 0.35, "personal_development": 0.35, "health_wellness": 0.3}},
		{ID: "culture_watch", Name: "Culture Watch", Topics: map[string]float64{"entertainment": 0.45, "live_music": 0.35, "us_politics": 0.25, "dating_relationships": 0.25}},

		// Niche audiences
		{ID: "crypto_investor", Name: "Crypto Investor Daily", Topics: map[string]float64{"science_technology": 0.6, "business": 0.7}},
		{ID: "female_founders", Name: "Female Founders", Topics: map[string]float64{"business": 0.65, "personal_development": 0.45, "dating_relationships": 0.25}},
		{ID: "sports_betting", Name: "Sports Betting Edge", Topics: map[string]float64{"sports": 0.75, "business": 0.35}},
		{ID: "meditation_science", Name: "The Science of Meditation", Topics: map[string]float64{"faith_spirituality": 0.55, "health_wellness": 0.55, "science_technology": 0.3}},
		{ID: "election_2026", Name: "Election 2026 Countdown", Topics: map[string]float64{"us_politics": 0.85, "business": 0.25}},
		{ID: "festival_season", Name: "Festival Season", Topics: map[string]float64{"live_music": 0.7, "entertainment": 0.45, "dating_relationships": 0.2}},
		{ID: "therapy_talks", Name: "Therapy Talks", Topics: map[string]float64{"dating_relationships": 0.5, "personal_development": 0.55, "health_wellness": 0.35}},
		{ID: "startup_funding", Name: "Startup Funding Insider", Topics: map[string]float64{"business": 0.8, "science_technology": 0.4}},
		{ID: "documentary_review", Name: "Documentary Deep Dive", Topics: map[string]float64{"entertainment": 0.6, "science_technology": 0.3, "us_politics": 0.25}},
		{ID: "quarterback_mindset", Name: "Quarterback's Playbook", Topics: map[string]float64{"sports": 0.7, "personal_development": 0.4, "business": 0.2}},

		// Edge cases: low confidence or unusual combinations
		{ID: "variety_hour", Name: "The Variety Hour", Topics: map[string]float64{"entertainment": 0.25, "live_music": 0.2, "sports": 0.2, "business": 0.15, "personal_development": 0.2}},
		{ID: "tech_spirituality", Name: "Digital Zen", Topics: map[string]float64{"science_technology": 0.45, "faith_spirituality": 0.5, "personal_development": 0.3}},
		{ID: "political_faith", Name: "Faith & Politics Forum", Topics: map[string]float64{"us_politics": 0.6, "faith_spirituality": 0.55}},
	}
}
