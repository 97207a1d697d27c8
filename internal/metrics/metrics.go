package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "marketer_generations_total",
		Help: "Completion requests by action (generate, regenerate, api) and status (ok, error, invalid).",
	}, []string{"action", "status"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "marketer_generation_duration_seconds",
		Help:    "Time spent waiting on the completion provider.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 16, 32, 64},
	})

	DownloadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "marketer_downloads_total",
		Help: "Result downloads served.",
	})
)
