package enneabot

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors reporting quiz activity.
type Metrics struct {
	Messages     prometheus.Counter
	LookupMisses prometheus.Counter
	ResultsSaved prometheus.Counter
	TableRows    prometheus.Gauge
}

var (
	defaultMetricsOnce sync.Once
	sharedMetrics      *Metrics
)

// defaultMetrics returns the package-level instance registered with the
// global registry. Created only once so that multiple bots (e.g. in tests)
// do not trip duplicate-registration panics.
func defaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		sharedMetrics = NewMetrics(prometheus.DefaultRegisterer)
	})
	return sharedMetrics
}

// NewMetrics constructs and registers the collectors with reg. Pass a fresh
// registry in tests to avoid duplicate-registration panics; nil falls back
// to the global default registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		Messages: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "enneabot",
			Name:      "messages_total",
			Help:      "Inbound chat messages handled.",
		}),
		LookupMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "enneabot",
			Name:      "lookup_misses_total",
			Help:      "Answer combinations with no classification row.",
		}),
		ResultsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "enneabot",
			Name:      "results_saved_total",
			Help:      "Quiz results persisted on user confirmation.",
		}),
		TableRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "enneabot",
			Name:      "table_rows",
			Help:      "Classification rows accepted at load time.",
		}),
	}
	reg.MustRegister(m.Messages, m.LookupMisses, m.ResultsSaved, m.TableRows)
	return m
}
