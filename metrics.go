package tablefind

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics carries the pipeline's observability surface. Instrumentation
// must never influence detection output; it only counts and times stages.
var (
	stageDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "tablefind",
		Name:      "stage_duration_seconds",
		Help:      "Wall-clock duration of a detection pipeline stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"stage"})

	stageCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tablefind",
		Name:      "stage_items_total",
		Help:      "Count of items produced by a detection pipeline stage.",
	}, []string{"stage"})
)

// Registerer lets callers wire this package's metrics into their own
// Prometheus registry; it is a no-op until called.
func Registerer(reg prometheus.Registerer) error {
	if err := reg.Register(stageDuration); err != nil {
		return err
	}
	return reg.Register(stageCount)
}

func now() time.Time { return time.Now() }

func observeStage(stage string, start time.Time) {
	stageDuration.WithLabelValues(stage).Observe(time.Since(start).Seconds())
}

func incStage(stage string, n int) {
	stageCount.WithLabelValues(stage).Add(float64(n))
}
