package cmdlog

import (
	"channelrank/internal/logging"
	"channelrank/internal/metrics"
)

// Run executes a CLI command body, recording run/error metrics and a
// structured log line for the outcome.
func Run(cmd string, f func() error) error {
	metrics.IncCommandRun(cmd)
	err := f()
	if err != nil {
		metrics.IncCommandError(cmd)
		logging.Error(cmd+"_error", map[string]any{"error": err.Error()})
	} else {
		logging.Info(cmd+"_ok", nil)
	}
	return err
}
