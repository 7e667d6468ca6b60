package verify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for signature verification.
type Metrics struct {
	// Verification flow metrics
	VerifyAttemptsTotal   *prometheus.CounterVec
	VerifyAttemptsSuccess *prometheus.CounterVec
	VerifyAttemptsFail    *prometheus.CounterVec
	SignerMismatchTotal   *prometheus.CounterVec
}

// NewMetrics initializes and registers metrics on the default registry.
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers metrics with a custom
// registry. A nil registry means the default one.
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		VerifyAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sigil_verify_attempts_total",
				Help: "The total number of signature verification attempts",
			},
			[]string{"scheme"},
		),
		VerifyAttemptsSuccess: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sigil_verify_attempts_success",
				Help: "The total number of successful signature verifications",
			},
			[]string{"scheme"},
		),
		VerifyAttemptsFail: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sigil_verify_attempts_fail",
				Help: "The total number of failed signature verifications by reason",
			},
			[]string{"scheme", "reason"},
		),
		SignerMismatchTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sigil_signer_mismatch_total",
				Help: "The total number of well-formed signatures recovered to an unexpected signer",
			},
			[]string{"scheme"},
		),
	}
}

// The count helpers tolerate a nil receiver so the Verifier works without a
// metrics sink.

func (m *Metrics) countAttempt(scheme string) {
	if m == nil {
		return
	}
	m.VerifyAttemptsTotal.WithLabelValues(scheme).Inc()
}

func (m *Metrics) countSuccess(scheme string) {
	if m == nil {
		return
	}
	m.VerifyAttemptsSuccess.WithLabelValues(scheme).Inc()
}

func (m *Metrics) countFailure(scheme, reason string) {
	if m == nil {
		return
	}
	m.VerifyAttemptsFail.WithLabelValues(scheme, reason).Inc()
}

func (m *Metrics) countMismatch(scheme string) {
	if m == nil {
		return
	}
	m.SignerMismatchTotal.WithLabelValues(scheme).Inc()
}
