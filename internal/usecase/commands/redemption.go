package commands

import (
	"context"
	"log/slog"

	"punchcard/internal/domain/coupon"
	"punchcard/internal/domain/loyalty"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCouponNotFound      = errs.New("coupon not found")
	ErrCouponInactive      = errs.New("coupon is no longer active")
	ErrInsufficientBalance = errs.New("insufficient balance for this coupon")
)

type RedemptionCommands interface {
	// Redeem exchanges accumulated balance for a claim against the
	// coupon. The decrement is conditional on sufficiency and commits
	// together with the claim row; an insufficient balance mutates
	// nothing.
	Redeem(ctx context.Context, userID, couponID uuid.UUID) (*queries.RedemptionView, error)
}

type redemptionUseCaseImpl struct {
	couponRepo     CouponRepository
	balanceRepo    BalanceRepository
	redemptionRepo RedemptionRepository
	businessRepo   BusinessRepository
	db             DB
}

func NewRedemptionUseCase(
	couponRepo CouponRepository,
	balanceRepo BalanceRepository,
	redemptionRepo RedemptionRepository,
	businessRepo BusinessRepository,
	db DB,
) RedemptionCommands {
	return &redemptionUseCaseImpl{
		couponRepo:     couponRepo,
		balanceRepo:    balanceRepo,
		redemptionRepo: redemptionRepo,
		businessRepo:   businessRepo,
		db:             db,
	}
}

func (u *redemptionUseCaseImpl) Redeem(ctx context.Context, userID, couponID uuid.UUID) (*queries.RedemptionView, error) {
	couponView, err := u.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	c := coupon.Restore(
		couponView.ID, couponView.BusinessID, couponView.Name,
		couponView.Description, couponView.PointsRequired,
		couponView.ImageURL, couponView.IsActive,
	)
	if err := c.ValidateRedemption(); err != nil {
		return nil, errs.Mark(err, ErrCouponInactive)
	}

	business, err := u.businessRepo.FindByID(ctx, couponView.BusinessID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !isTxClosed(rollbackErr) {
			slog.Warn("failed to rollback transaction", "error", rollbackErr)
		}
	}()

	required := couponView.PointsRequired
	if loyalty.Type(business.LoyaltyType) == loyalty.TypeStamps {
		err = u.balanceRepo.DeductStamps(ctx, tx, userID, couponView.BusinessID, couponID, required)
	} else {
		err = u.balanceRepo.DeductPoints(ctx, tx, userID, couponView.BusinessID, required)
	}
	if err != nil {
		if infra.IsKind(err, infra.KindConflict) || infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInsufficientBalance
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	redemptionID, redeemedAt, err := u.redemptionRepo.Create(ctx, tx, userID, couponView.BusinessID, couponID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	return &queries.RedemptionView{
		ID:             redemptionID,
		UserID:         userID,
		BusinessID:     couponView.BusinessID,
		CouponID:       couponID,
		CouponName:     couponView.Name,
		PointsRequired: required,
		RedeemedAt:     redeemedAt,
		Verified:       false,
	}, nil
}
