package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts ledger outcomes. Rejection reasons are bounded label
// values, never raw error strings.
type Metrics struct {
	Awards        prometheus.Counter
	Redemptions   prometheus.Counter
	Verifications prometheus.Counter
	ScanRejects   *prometheus.CounterVec
}

const (
	RejectReasonUsedCode     = "code_used"
	RejectReasonUnrecognized = "unrecognized"
	RejectReasonMismatch     = "kind_mismatch"
	RejectReasonWindow       = "window_elapsed"
	RejectReasonVerified     = "already_verified"
)

func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Awards: factory.NewCounter(prometheus.CounterOpts{
			Name: "punchcard_awards_total",
			Help: "Successful point/stamp awards.",
		}),
		Redemptions: factory.NewCounter(prometheus.CounterOpts{
			Name: "punchcard_redemptions_total",
			Help: "Successful coupon redemptions.",
		}),
		Verifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "punchcard_verifications_total",
			Help: "Successful coupon verifications.",
		}),
		ScanRejects: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "punchcard_scan_rejections_total",
			Help: "Rejected scan attempts by reason.",
		}, []string{"reason"}),
	}
}
