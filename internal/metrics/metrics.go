package metrics

import (
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RankRuns = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "channelrank_rank_runs_total",
		Help: "Total ranking runs",
	})
	RankDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "channelrank_rank_duration_seconds",
		Help:    "Ranking duration seconds",
		Buckets: prometheus.DefBuckets,
	})
	ChannelsRanked = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "channelrank_channels_ranked_total",
		Help: "Total channels scored across all ranking runs",
	})
	CommandRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "channelrank_command_runs_total",
		Help: "Total CLI command runs",
	}, []string{"command"})
	CommandErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "channelrank_command_errors_total",
		Help: "Total CLI command errors",
	}, []string{"command"})
)

func init() {
	prometheus.MustRegister(RankRuns, RankDuration, ChannelsRanked, CommandRuns, CommandErrors)
}

// StartServer starts a metrics HTTP server on addr (e.g., ":9090").
func StartServer(addr string) {
	if addr == "" {
		addr = os.Getenv("METRICS_ADDR")
	}
	if addr == "" {
		return
	}
	http.Handle("/metrics", promhttp.Handler())
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	go func() { _ = http.ListenAndServe(addr, nil) }()
}

// ObserveRankDuration records a ranking run duration.
func ObserveRankDuration(start time.Time) {
	RankDuration.Observe(time.Since(start).Seconds())
}

// AddChannelsRanked counts channels scored in one run.
func AddChannelsRanked(n int) { ChannelsRanked.Add(float64(n)) }

// IncCommandRun increments the run counter for a CLI command.
func IncCommandRun(cmd string) { CommandRuns.WithLabelValues(cmd).Inc() }

// IncCommandError increments the error counter for a CLI command.
func IncCommandError(cmd string) { CommandErrors.WithLabelValues(cmd).Inc() }
