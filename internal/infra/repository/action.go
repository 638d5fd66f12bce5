package repository

import (
	"context"

	"punchcard/internal/domain/action"
	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// ActionRepository only knows INSERT and SELECT. The audit log is
// append-only; there is deliberately no update or delete here.
type ActionRepository struct {
	db db.DBTX
}

func NewActionRepository(db db.DBTX) *ActionRepository {
	return &ActionRepository{db: db}
}

func (r *ActionRepository) Append(ctx context.Context, a *action.StaffAction) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO staff_actions (id, business_id, staff_id, action_type, points, recipient_id, coupon_name)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID(), a.BusinessID(), a.StaffID(), a.ActionType().String(),
		pgconv.Int32PtrToPgtype(a.Points()),
		pgconv.UUIDPtrToPgtype(a.RecipientID()),
		pgconv.StringPtrToPgtype(a.CouponName()))
	if err != nil {
		return infra.WrapRepoErr("failed to append staff action", err)
	}
	return nil
}

const actionColumns = `id, business_id, staff_id, action_type, points, recipient_id, coupon_name, created_at`

func (r *ActionRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, limit int32) ([]*queries.ActionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+actionColumns+` FROM staff_actions
		 WHERE business_id = $1
		 ORDER BY created_at DESC LIMIT $2`,
		businessID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff actions", err)
	}
	return collectActionRows(rows)
}

func (r *ActionRepository) ListByStaff(ctx context.Context, businessID, staffID uuid.UUID, limit int32) ([]*queries.ActionView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+actionColumns+` FROM staff_actions
		 WHERE business_id = $1 AND staff_id = $2
		 ORDER BY created_at DESC LIMIT $3`,
		businessID, staffID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list staff actions", err)
	}
	return collectActionRows(rows)
}

func collectActionRows(rows pgx.Rows) ([]*queries.ActionView, error) {
	defer rows.Close()

	var views []*queries.ActionView
	for rows.Next() {
		var (
			view        queries.ActionView
			points      pgtype.Int4
			recipientID pgtype.UUID
			couponName  pgtype.Text
			createdAt   pgtype.Timestamptz
		)
		err := rows.Scan(&view.ID, &view.BusinessID, &view.StaffID, &view.ActionType,
			&points, &recipientID, &couponName, &createdAt)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan staff action row", err)
		}
		view.Points = pgconv.Int32PtrFromPgtype(points)
		view.RecipientID = pgconv.UUIDPtrFromPgtype(recipientID)
		view.CouponName = pgconv.StringPtrFromPgtype(couponName)
		view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read staff action rows", err)
	}
	return views, nil
}
