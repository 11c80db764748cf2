package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Trim metrics
var (
	TrimsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cliptrim_trims_total",
			Help: "Total number of trim requests by outcome",
		},
		[]string{"status"}, // "success", "fetch_error", "transcode_error", "error"
	)

	TrimDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cliptrim_trim_duration_seconds",
			Help:    "End-to-end trim pipeline duration in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 240},
		},
	)
)

// Retention sweep metrics
var (
	SweepRunsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cliptrim_sweep_runs_total",
			Help: "Total number of retention sweep passes",
		},
	)

	SweepDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "cliptrim_sweep_deleted_total",
			Help: "Total number of files deleted by the retention sweeper",
		},
	)

	VideosStored = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cliptrim_videos_stored",
			Help: "Number of videos currently in the storage directory",
		},
	)
)
