package metrics

import "github.com/prometheus/client_golang/prometheus"

const (
	LoginOutcomeSuccess  = "success"
	LoginOutcomeRejected = "rejected"
	LoginOutcomeError    = "error"
)

// AuthMetrics counts login attempts by identity kind and outcome.
type AuthMetrics struct {
	attempts *prometheus.CounterVec
}

func NewAuthMetrics(reg prometheus.Registerer) *AuthMetrics {
	if reg == nil {
		return &AuthMetrics{}
	}
	attempts := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Login attempts by identity kind and outcome.",
	}, []string{"kind", "outcome"})
	reg.MustRegister(attempts)
	return &AuthMetrics{attempts: attempts}
}

// IncLogin records a login attempt.
func (a *AuthMetrics) IncLogin(kind, outcome string) {
	if a == nil || a.attempts == nil {
		return
	}
	a.attempts.WithLabelValues(normalizeLabel(kind), normalizeLabel(outcome)).Inc()
}
