package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"channelrank/internal/analytics"
	"channelrank/internal/catalog"
	"channelrank/internal/channel"
	"channelrank/internal/cmdlog"
	"channelrank/internal/config"
	"channelrank/internal/metrics"
	"channelrank/internal/profile"
	"channelrank/internal/rank"
	"channelrank/internal/scenario"
	"channelrank/internal/store/catalogdb"
	"channelrank/internal/theme"
	"channelrank/internal/topic"
	"channelrank/internal/util"
)

func main() {
	cmd := ""
	if len(os.Args) > 1 {
		cmd = os.Args[1]
	}
	var err error
	switch cmd {
	case "init":
		err = cmdlog.Run("init", cmdInit)
	case "topics":
		err = cmdlog.Run("topics", cmdTopics)
	case "scenarios":
		err = cmdlog.Run("scenarios", cmdScenarios)
	case "profile":
		err = cmdlog.Run("profile", cmdProfile)
	case "rank":
		err = cmdlog.Run("rank", cmdRank)
	case "stats":
		err = cmdlog.Run("stats", cmdStats)
	case "export":
		err = cmdlog.Run("export", cmdExport)
	case "import":
		err = cmdlog.Run("import", cmdImport)
	default:
		printHelp()
		return
	}
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func printHelp() {
	theme.PrintBanner()
	fmt.Println("Usage: channelrank <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  init        Create a config file at ./channelrank.yaml")
	fmt.Println("  topics      List the topic registry")
	fmt.Println("  scenarios   List preset user scenarios")
	fmt.Println("  profile     Show a scenario's topic scores")
	fmt.Println("  rank        Rank the catalog against a user profile")
	fmt.Println("  stats       Show per-topic catalog coverage")
	fmt.Println("  export      Write the seed catalog to a YAML file")
	fmt.Println("  import      Write the seed catalog into a SQLite file")
}

func cmdInit() error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	path := fs.String("path", "./channelrank.yaml", "path to write config")
	_ = fs.Parse(os.Args[2:])
	if err := config.Save(*path, config.Default()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*path)
	theme.PrintBanner()
	fmt.Println("Config written to:", abs)
	return nil
}

func cmdTopics() error {
	reg := topic.Default()
	for _, d := range reg.Descriptors() {
		display, err := reg.Display(d.ID)
		if err != nil {
			display = d.ID
		}
		fmt.Printf("%-22s %s\n", d.ID, display)
	}
	return nil
}

func cmdScenarios() error {
	fs := flag.NewFlagSet("scenarios", flag.ExitOnError)
	cfgPath := fs.String("config", "./channelrank.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios(cfg)
	if err != nil {
		return err
	}
	for _, s := range scenarios {
		fmt.Printf("%-20s %s — %s\n", s.Key, s.Name, s.Description)
	}
	return nil
}

func cmdProfile() error {
	fs := flag.NewFlagSet("profile", flag.ExitOnError)
	cfgPath := fs.String("config", "./channelrank.yaml", "config path")
	key := fs.String("scenario", "neutral", "preset scenario key")
	_ = fs.Parse(os.Args[2:])
	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios(cfg)
	if err != nil {
		return err
	}
	sc, ok := scenario.Find(scenarios, *key)
	if !ok {
		return fmt.Errorf("unknown scenario: %s", *key)
	}
	reg := topic.Default()
	fmt.Printf("%s — %s\n", sc.Name, sc.Description)
	for _, id := range util.TopicsByConfidence(sc.Scores) {
		fmt.Printf("%-28s %.2f %s\n", displayOrID(reg, id), sc.Scores[id], util.Bar(sc.Scores[id], 20))
	}
	return nil
}

func cmdRank() error {
	fs := flag.NewFlagSet("rank", flag.ExitOnError)
	cfgPath := fs.String("config", "./channelrank.yaml", "config path")
	catalogPath := fs.String("catalog", "", "catalog YAML path (default: config or built-in seed)")
	dbPath := fs.String("db", "", "catalog SQLite path (overrides -catalog)")
	key := fs.String("scenario", "neutral", "preset scenario key")
	sets := fs.String("set", "", "comma-separated topic=score overrides")
	top := fs.Int("top", 0, "limit output rows (0 = all)")
	_ = fs.Parse(os.Args[2:])

	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
		cfg.Catalog.DBPath = ""
	}
	if *dbPath != "" {
		cfg.Catalog.DBPath = *dbPath
	}
	metrics.StartServer(cfg.Metrics.Addr)

	channels, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	scenarios, err := loadScenarios(cfg)
	if err != nil {
		return err
	}
	sc, ok := scenario.Find(scenarios, *key)
	if !ok {
		return fmt.Errorf("unknown scenario: %s", *key)
	}

	reg := topic.Default()
	prof := profile.New(reg.IDs())
	prof.SetAll(sc.Scores)
	overrides, err := parseSets(*sets)
	if err != nil {
		return err
	}
	for id, score := range overrides {
		prof.Set(id, score)
	}

	start := time.Now()
	results := rank.Rank(prof, channels)
	metrics.RankRuns.Inc()
	metrics.ObserveRankDuration(start)
	metrics.AddChannelsRanked(len(channels))

	limit := len(results)
	if *top > 0 && *top < limit {
		limit = *top
	}
	fmt.Printf("%4s  %-8s  %-28s  %s\n", "Rank", "Score", "Channel", "Topics")
	for i := 0; i < limit; i++ {
		r := results[i]
		fmt.Printf("%4d  %-8.3f  %-28s  %s\n", i+1, r.Relevance, r.Channel.Name, formatTopics(reg, r.Channel))
	}
	return nil
}

func cmdStats() error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	cfgPath := fs.String("config", "./channelrank.yaml", "config path")
	_ = fs.Parse(os.Args[2:])
	cfg, err := config.LoadOrDefault(*cfgPath)
	if err != nil {
		return err
	}
	channels, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	reg := topic.Default()
	cov := analytics.TopicCoverage(channels)
	fmt.Printf("%-28s  %8s  %10s  %8s\n", "Topic", "Channels", "TotalConf", "MaxConf")
	for _, id := range analytics.SortedTopicIDs(cov) {
		c := cov[id]
		fmt.Printf("%-28s  %8d  %10.2f  %8.2f\n", displayOrID(reg, id), c.Channels, c.TotalConfidence, c.MaxConfidence)
	}
	return nil
}

func cmdExport() error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)
	out := fs.String("out", "./catalog.yaml", "path to write the seed catalog")
	_ = fs.Parse(os.Args[2:])
	if err := catalog.Save(*out, catalog.Seed()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*out)
	fmt.Println("Catalog written to:", abs)
	return nil
}

func cmdImport() error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	out := fs.String("out", "./catalog.db", "SQLite path to write the seed catalog")
	_ = fs.Parse(os.Args[2:])
	db, err := catalogdb.Open(*out)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := db.PutChannels(context.Background(), catalog.Seed()); err != nil {
		return err
	}
	abs, _ := filepath.Abs(*out)
	fmt.Println("Catalog imported to:", abs)
	return nil
}

// loadCatalog resolves the catalog source: SQLite file, YAML file, or
// the built-in seed, in that order of precedence.
func loadCatalog(cfg config.Config) ([]channel.Channel, error) {
	if cfg.Catalog.DBPath != "" {
		db, err := catalogdb.Open(cfg.Catalog.DBPath)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		return db.LoadChannels(context.Background())
	}
	if cfg.Catalog.Path != "" {
		return catalog.Load(cfg.Catalog.Path)
	}
	return catalog.Seed(), nil
}

func loadScenarios(cfg config.Config) ([]scenario.Scenario, error) {
	if cfg.Scenarios.Path != "" {
		return scenario.Load(cfg.Scenarios.Path)
	}
	return scenario.Defaults(), nil
}

// parseSets parses "topic=score,topic=score" overrides.
func parseSets(s string) (map[string]float64, error) {
	out := make(map[string]float64)
	if strings.TrimSpace(s) == "" {
		return out, nil
	}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, errors.New("bad override, want topic=score: " + part)
		}
		score, err := strconv.ParseFloat(strings.TrimSpace(kv[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("bad score for %s: %w", kv[0], err)
		}
		out[strings.TrimSpace(kv[0])] = score
	}
	return out, nil
}

// displayOrID renders a topic id, falling back to the raw id when it
// is not in the registry.
func displayOrID(reg *topic.Registry, id string) string {
	display, err := reg.Display(id)
	if err != nil {
		return id
	}
	return display
}

func formatTopics(reg *topic.Registry, c channel.Channel) string {
	parts := make([]string, 0, len(c.Topics))
	for _, id := range util.TopicsByConfidence(c.Topics) {
		parts = append(parts, fmt.Sprintf("%s (%.2f)", displayOrID(reg, id), c.Topics[id]))
	}
	return strings.Join(parts, ", ")
}
