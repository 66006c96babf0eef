// Package metrics exposes Prometheus counters for the approval engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's instrumentation. Construct one per process
// with a dedicated Registerer; tests pass prometheus.NewRegistry() to stay
// isolated from the default registry.
type Metrics struct {
	RequestsSubmitted *prometheus.CounterVec
	Decisions         *prometheus.CounterVec
	ChainsFinished    *prometheus.CounterVec
	BreachScans       prometheus.Counter
	BreachesDetected  prometheus.Counter
	DisputesOpened    *prometheus.CounterVec
	PenaltiesCharged  prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsSubmitted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corporatepay_requests_submitted_total",
			Help: "Requests submitted, by outcome (auto_confirmed or pending_approval).",
		}, []string{"outcome"}),
		Decisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corporatepay_approval_decisions_total",
			Help: "Approval step decisions recorded, by verdict.",
		}, []string{"verdict"}),
		ChainsFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corporatepay_chains_finished_total",
			Help: "Approval chains reaching a terminal status.",
		}, []string{"status"}),
		BreachScans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "corporatepay_breach_scans_total",
			Help: "Breach scan passes executed.",
		}),
		BreachesDetected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "corporatepay_sla_breaches_detected_total",
			Help: "SLA breaches detected across scan passes.",
		}),
		DisputesOpened: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "corporatepay_disputes_opened_total",
			Help: "Disputes opened, by origin (auto or manual).",
		}, []string{"origin"}),
		PenaltiesCharged: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "corporatepay_penalties_charged_total",
			Help: "Penalty settlements sent to the payment gateway.",
		}),
	}
	reg.MustRegister(
		m.RequestsSubmitted,
		m.Decisions,
		m.ChainsFinished,
		m.BreachScans,
		m.BreachesDetected,
		m.DisputesOpened,
		m.PenaltiesCharged,
	)
	return m
}
