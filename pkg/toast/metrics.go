package toast

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Dismiss triggers recorded by the dismissed counter.
const (
	TriggerTimer  = "timer"
	TriggerManual = "manual"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "toastkit").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// Metrics holds the toast lifecycle collectors.
type Metrics struct {
	shown     *prometheus.CounterVec
	dismissed *prometheus.CounterVec
	removed   prometheus.Counter
	active    prometheus.Gauge
}

// NewMetrics registers the toast collectors:
//   - toastkit_toasts_shown_total: toasts shown by variant
//   - toastkit_toasts_dismissed_total: exits started by trigger (timer, manual)
//   - toastkit_toasts_removed_total: toasts detached after their exit animation
//   - toastkit_toasts_active: toasts currently attached to the display surface
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := MetricsConfig{
		Namespace: "toastkit",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		shown: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_shown_total",
			Help:        "Total number of toasts shown",
			ConstLabels: config.ConstLabels,
		}, []string{"variant"}),

		dismissed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_dismissed_total",
			Help:        "Total number of toast exits started",
			ConstLabels: config.ConstLabels,
		}, []string{"trigger"}),

		removed: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_removed_total",
			Help:        "Total number of toasts removed after their exit animation",
			ConstLabels: config.ConstLabels,
		}),

		active: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "toasts_active",
			Help:        "Number of toasts attached to the display surface",
			ConstLabels: config.ConstLabels,
		}),
	}
}

func (m *Metrics) recordShown(v Variant) {
	if m == nil {
		return
	}
	m.shown.WithLabelValues(string(v)).Inc()
	m.active.Inc()
}

func (m *Metrics) recordDismissed(trigger string) {
	if m == nil {
		return
	}
	m.dismissed.WithLabelValues(trigger).Inc()
}

func (m *Metrics) recordRemoved() {
	if m == nil {
		return
	}
	m.removed.Inc()
	m.active.Dec()
}
