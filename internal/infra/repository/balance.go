package repository

import (
	"context"

	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

// BalanceRepository owns the two contended counter tables. Every
// mutation is a single conditional statement; an application-level
// read-modify-write here would reintroduce the double-award race the
// whole design exists to prevent.
type BalanceRepository struct {
	db db.DBTX
}

func NewBalanceRepository(db db.DBTX) *BalanceRepository {
	return &BalanceRepository{db: db}
}

func (r *BalanceRepository) AddPoints(ctx context.Context, tx db.DBTX, userID, businessID uuid.UUID, amount int32) (int32, error) {
	var total int32
	err := tx.QueryRow(ctx,
		`INSERT INTO point_balances (user_id, business_id, total_points)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (user_id, business_id)
		 DO UPDATE SET total_points = point_balances.total_points + EXCLUDED.total_points,
		               updated_at = now()
		 RETURNING total_points`,
		userID, businessID, amount).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add points", err)
	}
	return total, nil
}

func (r *BalanceRepository) AddStamps(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID, amount int32) (int32, error) {
	var points int32
	err := tx.QueryRow(ctx,
		`INSERT INTO stamp_balances (user_id, business_id, coupon_id, points)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (user_id, business_id, coupon_id)
		 DO UPDATE SET points = stamp_balances.points + EXCLUDED.points,
		               updated_at = now()
		 RETURNING points`,
		userID, businessID, couponID, amount).Scan(&points)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to add stamps", err)
	}
	return points, nil
}

// DeductPoints rejects instead of going negative: the sufficiency check
// is part of the UPDATE's WHERE clause, so zero affected rows means
// "insufficient" and nothing was mutated.
func (r *BalanceRepository) DeductPoints(ctx context.Context, tx db.DBTX, userID, businessID uuid.UUID, amount int32) error {
	tag, err := tx.Exec(ctx,
		`UPDATE point_balances
		 SET total_points = total_points - $3, updated_at = now()
		 WHERE user_id = $1 AND business_id = $2 AND total_points >= $3`,
		userID, businessID, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to deduct points", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient points", nil, infra.KindConflict)
	}
	return nil
}

func (r *BalanceRepository) DeductStamps(ctx context.Context, tx db.DBTX, userID, businessID, couponID uuid.UUID, amount int32) error {
	tag, err := tx.Exec(ctx,
		`UPDATE stamp_balances
		 SET points = points - $4, updated_at = now()
		 WHERE user_id = $1 AND business_id = $2 AND coupon_id = $3 AND points >= $4`,
		userID, businessID, couponID, amount)
	if err != nil {
		return infra.WrapRepoErr("failed to deduct stamps", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("insufficient stamps", nil, infra.KindConflict)
	}
	return nil
}

func (r *BalanceRepository) GetTotalPoints(ctx context.Context, userID, businessID uuid.UUID) (int32, error) {
	var total int32
	err := r.db.QueryRow(ctx,
		`SELECT total_points FROM point_balances
		 WHERE user_id = $1 AND business_id = $2`,
		userID, businessID).Scan(&total)
	if err != nil {
		if pgconv.IsNoRows(err) {
			// no balance row yet means zero, not an error
			return 0, nil
		}
		return 0, infra.WrapRepoErr("failed to get point balance", err)
	}
	return total, nil
}

func (r *BalanceRepository) ListStamps(ctx context.Context, userID, businessID uuid.UUID) ([]queries.StampBalanceView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT sb.coupon_id, c.name, sb.points, c.points_required
		 FROM stamp_balances sb
		 JOIN coupons c ON c.id = sb.coupon_id
		 WHERE sb.user_id = $1 AND sb.business_id = $2 AND c.is_active
		 ORDER BY c.name`,
		userID, businessID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stamp balances", err)
	}
	defer rows.Close()

	var stamps []queries.StampBalanceView
	for rows.Next() {
		var s queries.StampBalanceView
		if err := rows.Scan(&s.CouponID, &s.CouponName, &s.Points, &s.PointsRequired); err != nil {
			return nil, infra.WrapRepoErr("failed to scan stamp balance row", err)
		}
		stamps = append(stamps, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read stamp balance rows", err)
	}
	return stamps, nil
}
