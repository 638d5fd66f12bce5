package components

import (
	"punchcard/internal/infra/db"
	repo_impl "punchcard/internal/infra/repository"
	"punchcard/internal/usecase/commands"
	"punchcard/internal/usecase/queries"
	"punchcard/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		NewCommandDB,
		fx.Annotate(
			repo_impl.NewQRCodeRepository,
			fx.As(new(commands.QRCodeRepository)),
			fx.As(new(worker.QRCodePurger)),
		),
		fx.Annotate(
			repo_impl.NewBalanceRepository,
			fx.As(new(commands.BalanceRepository)),
			fx.As(new(queries.BalanceViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewCouponRepository,
			fx.As(new(commands.CouponRepository)),
			fx.As(new(queries.CouponViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewRedemptionRepository,
			fx.As(new(commands.RedemptionRepository)),
			fx.As(new(queries.RedemptionViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewActionRepository,
			fx.As(new(commands.ActionRepository)),
			fx.As(new(queries.ActionViewRepo)),
		),
		fx.Annotate(
			repo_impl.NewBusinessRepository,
			fx.As(new(commands.BusinessRepository)),
			fx.As(new(queries.BusinessViewRepo)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}

func NewCommandDB(pool *pgxpool.Pool) commands.DB {
	return pool
}
