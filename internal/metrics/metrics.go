package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mortalidad_import_duration_seconds",
		Help:    "Duration of dataset imports in seconds",
		Buckets: prometheus.ExponentialBuckets(0.1, 2.0, 10), // 0.1s .. ~51.2s
	})

	deathRecords = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mortalidad_death_records",
		Help: "Number of mortality records loaded during the last import",
	})

	skippedRows = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mortalidad_skipped_rows",
		Help: "Number of malformed rows dropped during the last import",
	})

	lastImportTime = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "mortalidad_last_import_timestamp",
		Help: "Timestamp of the last successful dataset import (Unix timestamp)",
	})

	reloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "mortalidad_dataset_reloads_total",
		Help: "Number of dataset hot reloads triggered by file changes",
	})
)

// RecordImport updates the import gauges after a successful dataset import.
func RecordImport(duration time.Duration, records, skipped int) {
	importDuration.Observe(duration.Seconds())
	deathRecords.Set(float64(records))
	skippedRows.Set(float64(skipped))
	lastImportTime.Set(float64(time.Now().Unix()))
}

// RecordReload counts a dataset hot reload.
func RecordReload() {
	reloadsTotal.Inc()
}
