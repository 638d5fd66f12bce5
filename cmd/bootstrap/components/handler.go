package components

import (
	"punchcard/internal/handler"
	"punchcard/internal/handler/api"
	"punchcard/internal/handler/middleware"
	"punchcard/internal/infra/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		NewMetrics,
		api.NewQRCodeHandler,
		api.NewScanHandler,
		api.NewCouponHandler,
		api.NewRedemptionHandler,
		api.NewBalanceHandler,
		api.NewActionHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

// NewMetrics registers on the default registry so the promhttp
// handler mounted by the router picks everything up.
func NewMetrics() *metrics.Metrics {
	return metrics.New(prometheus.DefaultRegisterer)
}

func NewHandlers(
	qrCode *api.QRCodeHandler,
	scan *api.ScanHandler,
	coupon *api.CouponHandler,
	redemption *api.RedemptionHandler,
	balance *api.BalanceHandler,
	action *api.ActionHandler,
) handler.Handlers {
	return handler.Handlers{
		QRCode:     qrCode,
		Scan:       scan,
		Coupon:     coupon,
		Redemption: redemption,
		Balance:    balance,
		Action:     action,
	}
}
