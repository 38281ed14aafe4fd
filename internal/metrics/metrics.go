// file: internal/metrics/metrics.go
// version: 2.0.0
// guid: 9f8e7d6c-5b4a-3210-9fed-cba876543210

package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	filesScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "music_renamer",
		Name:      "files_scanned_total",
		Help:      "Total number of audio files considered for renaming",
	})
	filesSkipped = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "music_renamer",
		Name:      "files_skipped_total",
		Help:      "Total number of files left out of a change set by reason",
	}, []string{"reason"})
	renamesPlanned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "music_renamer",
		Name:      "renames_planned_total",
		Help:      "Total number of renames placed in a change set",
	})
	renamesApplied = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "music_renamer",
		Name:      "renames_applied_total",
		Help:      "Total number of renames performed on disk",
	})
	renamesFailed = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "music_renamer",
		Name:      "renames_failed_total",
		Help:      "Total number of renames that failed and aborted a batch",
	})
	runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "music_renamer",
		Name:      "run_duration_seconds",
		Help:      "Histogram of plan and apply durations in seconds",
		Buckets:   prometheus.ExponentialBuckets(0.005, 2, 12), // 5ms up to ~10s
	}, []string{"phase"})
)

// Register initializes metrics with the global Prometheus registry (idempotent)
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(filesScanned, filesSkipped, renamesPlanned, renamesApplied, renamesFailed, runDuration)
	})
}

// Run lifecycle helpers
func IncScanned()              { filesScanned.Inc() }
func IncSkipped(reason string) { filesSkipped.WithLabelValues(reason).Inc() }
func IncPlanned()              { renamesPlanned.Inc() }
func IncApplied()              { renamesApplied.Inc() }
func IncFailed()               { renamesFailed.Inc() }
func ObserveDuration(phase string, d time.Duration) {
	runDuration.WithLabelValues(phase).Observe(d.Seconds())
}

// WriteTextfile dumps the default registry in the node_exporter textfile
// format, for cron-driven runs.
func WriteTextfile(path string) error {
	Register()
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
