package components

import (
	"punchcard/internal/pkg/clock"
	"punchcard/internal/pkg/config"
	"punchcard/internal/usecase"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQRCodeUseCase,
		commands.NewCouponUseCase,
		commands.NewRedemptionUseCase,
		NewScanCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBalanceQueries,
		queries.NewCouponQueries,
		queries.NewRedemptionQueries,
		queries.NewActionQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

// NewScanCommands exists to thread the verification window out of the
// config; everything else is plain constructor injection.
func NewScanCommands(
	qrRepo commands.QRCodeRepository,
	balanceRepo commands.BalanceRepository,
	couponRepo commands.CouponRepository,
	redemptionRepo commands.RedemptionRepository,
	actionRepo commands.ActionRepository,
	businessRepo commands.BusinessRepository,
	db commands.DB,
	clk clock.Clock,
	cfg config.Config,
) commands.ScanCommands {
	return commands.NewScanUseCase(
		qrRepo,
		balanceRepo,
		couponRepo,
		redemptionRepo,
		actionRepo,
		businessRepo,
		db,
		clk,
		cfg.Loyalty.VerifyWindow,
	)
}
