package bootstrap

import (
	"context"

	"punchcard/internal/pkg/clock"
	"punchcard/internal/pkg/config"
	"punchcard/internal/worker"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewJanitor,
	),
	fx.Invoke(StartJanitor),
)

func NewJanitor(purger worker.QRCodePurger, clk clock.Clock, cfg config.Config) (*worker.Janitor, error) {
	return worker.NewJanitor(purger, clk, cfg.Janitor)
}

func StartJanitor(lc fx.Lifecycle, janitor *worker.Janitor) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return janitor.Start()
		},
		OnStop: func(_ context.Context) error {
			return janitor.Stop()
		},
	})
}
