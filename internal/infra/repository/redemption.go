package repository

import (
	"context"
	"time"

	"punchcard/internal/domain/redemption"
	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(db db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: db}
}

func (r *RedemptionRepository) Create(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID) (uuid.UUID, time.Time, error) {
	var (
		id         uuid.UUID
		redeemedAt pgtype.Timestamptz
	)
	err := tx.QueryRow(ctx,
		`INSERT INTO redeemed_coupons (user_id, business_id, coupon_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, redeemed_at`,
		userID, businessID, couponID).Scan(&id, &redeemedAt)
	if err != nil {
		return uuid.Nil, time.Time{}, infra.WrapRepoErr("failed to create redemption", err)
	}
	return id, pgconv.TimeFromPgtype(redeemedAt), nil
}

func (r *RedemptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error) {
	var (
		userID     uuid.UUID
		businessID uuid.UUID
		couponID   uuid.UUID
		redeemedAt pgtype.Timestamptz
		verified   bool
		verifiedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT user_id, business_id, coupon_id, redeemed_at, verified, verified_at
		 FROM redeemed_coupons WHERE id = $1`,
		id).Scan(&userID, &businessID, &couponID, &redeemedAt, &verified, &verifiedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption by ID", err)
	}

	return redemption.Restore(
		id, userID, businessID, couponID,
		pgconv.TimeFromPgtype(redeemedAt),
		verified,
		pgconv.TimePtrFromPgtype(verifiedAt),
	), nil
}

func (r *RedemptionRepository) FindViewByID(ctx context.Context, id uuid.UUID) (*queries.RedemptionView, error) {
	var (
		view       queries.RedemptionView
		redeemedAt pgtype.Timestamptz
		verifiedAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx,
		`SELECT rc.id, rc.user_id, rc.business_id, rc.coupon_id, c.name, c.points_required,
		        rc.redeemed_at, rc.verified, rc.verified_at
		 FROM redeemed_coupons rc
		 JOIN coupons c ON c.id = rc.coupon_id
		 WHERE rc.id = $1`,
		id).Scan(&view.ID, &view.UserID, &view.BusinessID, &view.CouponID, &view.CouponName,
		&view.PointsRequired, &redeemedAt, &view.Verified, &verifiedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("redemption not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find redemption view", err)
	}
	view.RedeemedAt = pgconv.TimeFromPgtype(redeemedAt)
	view.VerifiedAt = pgconv.TimePtrFromPgtype(verifiedAt)
	return &view, nil
}

// ClaimVerification performs the false→true transition. Filtering on
// verified = false makes double verification impossible regardless of
// how many staff terminals scan the same claim.
func (r *RedemptionRepository) ClaimVerification(ctx context.Context, tx db.DBTX, id uuid.UUID, at time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE redeemed_coupons SET verified = true, verified_at = $2
		 WHERE id = $1 AND verified = false`,
		id, at)
	if err != nil {
		return infra.WrapRepoErr("failed to claim verification", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("redemption already verified", nil, infra.KindConflict)
	}
	return nil
}
