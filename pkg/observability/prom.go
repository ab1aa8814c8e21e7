package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PromHooks implements FrameHooks and LayoutHooks on a dedicated Prometheus
// registry. Gauge/counter updates are lock-free and cheap enough for the
// frame loop.
type PromHooks struct {
	registry *prometheus.Registry

	framesTotal    prometheus.Counter
	fps            prometheus.Gauge
	renderedTotal  prometheus.Counter
	culledTotal    prometheus.Counter
	renderedGauge  prometheus.Gauge
	culledGauge    prometheus.Gauge
	layoutDuration *prometheus.HistogramVec
	layoutErrors   *prometheus.CounterVec
}

// NewPromHooks creates a hook set with its own registry.
func NewPromHooks() *PromHooks {
	reg := prometheus.NewRegistry()
	h := &PromHooks{registry: reg}

	h.framesTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "depscape_frames_total",
		Help: "Frames processed by the LOD manager",
	})
	h.fps = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "depscape_fps",
		Help: "Instantaneous frames per second",
	})
	h.renderedTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "depscape_artifacts_rendered_total",
		Help: "Artifacts marked for rendering across all frames",
	})
	h.culledTotal = promauto.With(reg).NewCounter(prometheus.CounterOpts{
		Name: "depscape_artifacts_culled_total",
		Help: "Artifacts culled across all frames",
	})
	h.renderedGauge = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "depscape_frame_rendered",
		Help: "Artifacts rendered in the most recent frame",
	})
	h.culledGauge = promauto.With(reg).NewGauge(prometheus.GaugeOpts{
		Name: "depscape_frame_culled",
		Help: "Artifacts culled in the most recent frame",
	})
	h.layoutDuration = promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
		Name:    "depscape_layout_duration_seconds",
		Help:    "Layout computation time by algorithm",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})
	h.layoutErrors = promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
		Name: "depscape_layout_errors_total",
		Help: "Layout failures by algorithm",
	}, []string{"algorithm"})

	return h
}

// Handler returns an HTTP handler exposing the registry in the Prometheus
// text format, for mounting at /metrics.
func (h *PromHooks) Handler() http.Handler {
	return promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{})
}

// Registry exposes the underlying registry for additional collectors.
func (h *PromHooks) Registry() *prometheus.Registry {
	return h.registry
}

// OnFrameStart implements FrameHooks.
func (h *PromHooks) OnFrameStart(uint64) {
	h.framesTotal.Inc()
}

// OnFrameComplete implements FrameHooks.
func (h *PromHooks) OnFrameComplete(_ uint64, rendered, culled int, fps float32) {
	h.fps.Set(float64(fps))
	h.renderedGauge.Set(float64(rendered))
	h.culledGauge.Set(float64(culled))
	h.renderedTotal.Add(float64(rendered))
	h.culledTotal.Add(float64(culled))
}

// OnLayoutStart implements LayoutHooks.
func (h *PromHooks) OnLayoutStart(string, int) {}

// OnLayoutComplete implements LayoutHooks.
func (h *PromHooks) OnLayoutComplete(algorithm string, duration time.Duration, err error) {
	h.layoutDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	if err != nil {
		h.layoutErrors.WithLabelValues(algorithm).Inc()
	}
}

var (
	_ FrameHooks  = (*PromHooks)(nil)
	_ LayoutHooks = (*PromHooks)(nil)
)
