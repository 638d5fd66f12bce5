package commands

import (
	"context"
	"time"

	"punchcard/internal/domain/action"
	"punchcard/internal/domain/coupon"
	"punchcard/internal/domain/qrcode"
	"punchcard/internal/domain/redemption"
	"punchcard/internal/infra/db"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// DB is the slice of pgxpool.Pool the write side needs: run statements
// directly, or open an explicit transaction.
type DB interface {
	db.DBTX
	Begin(ctx context.Context) (pgx.Tx, error)
}

type QRCodeRepository interface {
	FindActiveByUser(ctx context.Context, userID uuid.UUID) (*queries.QRCodeView, error)
	Create(ctx context.Context, code *qrcode.QRCode) (*queries.QRCodeView, error)
	// FindByPayload resolves a scanned payload regardless of used state.
	FindByPayload(ctx context.Context, payload string) (*queries.QRCodeView, error)
	// Claim flips used false→true as one conditional statement and
	// returns the owning user. KindConflict when the code was already
	// consumed or never existed.
	Claim(ctx context.Context, tx db.DBTX, payload string) (uuid.UUID, error)
}

type BalanceRepository interface {
	// All four are single-statement conditional upserts/updates; the
	// deducts reject (KindConflict) instead of going negative.
	AddPoints(ctx context.Context, tx db.DBTX, userID, businessID uuid.UUID, amount int32) (int32, error)
	AddStamps(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID, amount int32) (int32, error)
	DeductPoints(ctx context.Context, tx db.DBTX, userID, businessID uuid.UUID, amount int32) error
	DeductStamps(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID, amount int32) error
}

type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error)
	// Deactivate is the only mutation a coupon supports after issuance.
	Deactivate(ctx context.Context, id, businessID uuid.UUID) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID) (uuid.UUID, time.Time, error)
	FindByID(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error)
	// ClaimVerification flips verified false→true as one conditional
	// statement. KindConflict when already verified.
	ClaimVerification(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error
}

type ActionRepository interface {
	Append(ctx context.Context, a *action.StaffAction) error
}

type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.BusinessView, error)
}
