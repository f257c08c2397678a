// Package obs wires the two optional, nil-safe observability backends the
// teacher carries: Prometheus counters/histograms (pkg/bubbly/monitoring)
// and a Sentry panic/error hook (pkg/bubbly/observability). Both are
// opt-in — a zero-value Metrics and a nil Reporter make every method here
// a no-op, so the core never requires a registry or a DSN to run.
package obs

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the frame-loop counters the app package records each
// frame. The zero value is safe to use: every method no-ops until
// NewMetrics has registered the collectors.
type Metrics struct {
	frameDuration prometheus.Histogram
	patchCount    prometheus.Counter
	effectPanics  prometheus.Counter
}

// NewMetrics registers tessui_* collectors against reg and returns a
// Metrics ready to record frames. Mirrors the teacher's
// NewPrometheusMetrics(reg) constructor shape (monitoring/prometheus.go).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	frameDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "tessui_frame_duration_seconds",
		Help:    "Wall-clock duration of one UI frame (expand, diff, layout, draw, flush).",
		Buckets: prometheus.DefBuckets,
	})
	patchCount := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tessui_patches_applied_total",
		Help: "Total number of vdom patches applied across all frames.",
	})
	effectPanics := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "tessui_effect_panics_total",
		Help: "Total number of background effect goroutines that recovered from a panic.",
	})

	reg.MustRegister(frameDuration, patchCount, effectPanics)

	return &Metrics{
		frameDuration: frameDuration,
		patchCount:    patchCount,
		effectPanics:  effectPanics,
	}
}

// RecordFrame observes one frame's duration and the number of patches it applied.
func (m *Metrics) RecordFrame(d time.Duration, patches int) {
	if m == nil {
		return
	}
	if m.frameDuration != nil {
		m.frameDuration.Observe(d.Seconds())
	}
	if m.patchCount != nil {
		m.patchCount.Add(float64(patches))
	}
}

// RecordEffectPanic increments the effect-panic counter.
func (m *Metrics) RecordEffectPanic() {
	if m == nil || m.effectPanics == nil {
		return
	}
	m.effectPanics.Inc()
}
