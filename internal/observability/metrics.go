package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics groups all Prometheus instruments used by the bot. A nil *Metrics
// is valid and records nothing.
type Metrics struct {
	SessionsStarted   prometheus.Counter
	SessionsAbandoned prometheus.Counter
	OpenSessions      prometheus.Gauge
	ActsSubmitted     prometheus.Counter
	StoreErrors       *prometheus.CounterVec
	AccessDenied      *prometheus.CounterVec
	SendErrors        prometheus.Counter
}

func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		SessionsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_sessions_started_total",
			Help:      "Intake sessions opened, restarts included.",
		}),
		SessionsAbandoned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_sessions_abandoned_total",
			Help:      "Intake sessions dropped before completion.",
		}),
		OpenSessions: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "intake_sessions_open",
			Help:      "Intake sessions currently in progress.",
		}),
		ActsSubmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "acts_submitted_total",
			Help:      "Acts written to the record store.",
		}),
		StoreErrors: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_errors_total",
			Help:      "Record store failures by operation.",
		}, []string{"op"}),
		AccessDenied: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "access_denied_total",
			Help:      "Rejected administrator requests by operation.",
		}, []string{"op"}),
		SendErrors: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "send_errors_total",
			Help:      "Messages or files the transport failed to deliver.",
		}),
	}
}

func (m *Metrics) SessionStarted(open int) {
	if m == nil {
		return
	}
	m.SessionsStarted.Inc()
	m.OpenSessions.Set(float64(open))
}

func (m *Metrics) SessionAbandoned(open int) {
	if m == nil {
		return
	}
	m.SessionsAbandoned.Inc()
	m.OpenSessions.Set(float64(open))
}

func (m *Metrics) SessionClosed(open int) {
	if m == nil {
		return
	}
	m.OpenSessions.Set(float64(open))
}

func (m *Metrics) ActSubmitted() {
	if m == nil {
		return
	}
	m.ActsSubmitted.Inc()
}

func (m *Metrics) StoreError(op string) {
	if m == nil {
		return
	}
	m.StoreErrors.WithLabelValues(op).Inc()
}

func (m *Metrics) Denied(op string) {
	if m == nil {
		return
	}
	m.AccessDenied.WithLabelValues(op).Inc()
}

func (m *Metrics) SendFailed() {
	if m == nil {
		return
	}
	m.SendErrors.Inc()
}
