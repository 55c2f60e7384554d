// Package metrics exposes session counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder is what the HTTP layer reports session activity to.
type Recorder interface {
	RecordIssued()
	RecordRejected(reason string)
	RecordAuthorized(outcome string)
	RecordEnded()
}

// Collector is the Prometheus Recorder.
type Collector struct {
	issued     prometheus.Counter
	ended      prometheus.Counter
	rejected   *prometheus.CounterVec
	authorized *prometheus.CounterVec
}

// NewCollector creates a Collector and registers it with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		issued: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "session_issued_total",
			Help: "Sessions issued after a successful login.",
		}),
		ended: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "session_ended_total",
			Help: "Sessions cleared by logout.",
		}),
		rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "session_rejected_total",
			Help: "Requests rejected by the session check, by reason.",
		}, []string{"reason"}),
		authorized: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "session_authorized_total",
			Help: "Requests admitted by the session check, by outcome.",
		}, []string{"outcome"}),
	}

	reg.MustRegister(c.issued, c.ended, c.rejected, c.authorized)

	return c
}

func (c *Collector) RecordIssued() {
	c.issued.Inc()
}

func (c *Collector) RecordEnded() {
	c.ended.Inc()
}

func (c *Collector) RecordRejected(reason string) {
	c.rejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordAuthorized(outcome string) {
	c.authorized.WithLabelValues(outcome).Inc()
}

// Nop discards everything.
type Nop struct{}

func (Nop) RecordIssued()           {}
func (Nop) RecordEnded()            {}
func (Nop) RecordRejected(string)   {}
func (Nop) RecordAuthorized(string) {}

// Handler serves the gathered metrics for scraping.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
