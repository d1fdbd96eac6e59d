// Package metrics owns the Prometheus registry for the persona service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Outcome labels for setting requests.
const (
	OutcomeOK      = "ok"
	OutcomeMissing = "missing"
)

// Metrics holds the app's collectors and the registry they are bound to.
type Metrics struct {
	reg             *prometheus.Registry
	settingRequests *prometheus.CounterVec
}

// New builds a registry with the Go and process collectors plus the
// persona counters.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		reg: reg,
		settingRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "persona_setting_requests_total",
			Help: "Requests for a configured setting, by setting and outcome.",
		}, []string{"setting", "outcome"}),
	}
	reg.MustRegister(m.settingRequests)
	return m
}

// ObserveSetting counts one request for key. A nil receiver is a no-op.
func (m *Metrics) ObserveSetting(key, outcome string) {
	if m == nil {
		return
	}
	m.settingRequests.WithLabelValues(key, outcome).Inc()
}

// SettingCounter returns the request counter for one setting and outcome.
func (m *Metrics) SettingCounter(key, outcome string) prometheus.Counter {
	return m.settingRequests.WithLabelValues(key, outcome)
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.reg
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.reg, promhttp.HandlerOpts{})
}
