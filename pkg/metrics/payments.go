package metrics

import "github.com/prometheus/client_golang/prometheus"

// PaymentMetrics tracks Stripe interactions issued by the API.
type PaymentMetrics struct {
	sessions   *prometheus.CounterVec
	onboarding *prometheus.CounterVec
	feeMinor   prometheus.Counter
}

// NewPaymentMetrics registers the payment metrics on the provided registerer.
func NewPaymentMetrics(reg prometheus.Registerer) *PaymentMetrics {
	if reg == nil {
		return &PaymentMetrics{}
	}
	sessions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "checkout_sessions_total",
		Help: "Checkout sessions created, labelled by outcome.",
	}, []string{"outcome"})
	onboarding := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "connect_onboarding_total",
		Help: "Onboarding link requests, labelled by outcome.",
	}, []string{"outcome"})
	feeMinor := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "application_fee_minor_units_total",
		Help: "Sum of application fees attached to created sessions, in minor units.",
	})
	reg.MustRegister(sessions, onboarding, feeMinor)
	return &PaymentMetrics{
		sessions:   sessions,
		onboarding: onboarding,
		feeMinor:   feeMinor,
	}
}

// IncSession counts one checkout session attempt by outcome.
func (p *PaymentMetrics) IncSession(outcome string) {
	if p == nil || p.sessions == nil {
		return
	}
	p.sessions.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncOnboarding counts one onboarding link attempt by outcome.
func (p *PaymentMetrics) IncOnboarding(outcome string) {
	if p == nil || p.onboarding == nil {
		return
	}
	p.onboarding.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// AddFee accumulates the application fee attached to a created session.
func (p *PaymentMetrics) AddFee(minorUnits int64) {
	if p == nil || p.feeMinor == nil || minorUnits <= 0 {
		return
	}
	p.feeMinor.Add(float64(minorUnits))
}
