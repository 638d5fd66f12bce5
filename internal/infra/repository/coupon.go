package repository

import (
	"context"

	"punchcard/internal/domain/coupon"
	"punchcard/internal/infra"
	"punchcard/internal/infra/db"
	"punchcard/internal/pkg/pgconv"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type CouponRepository struct {
	db db.DBTX
}

func NewCouponRepository(db db.DBTX) *CouponRepository {
	return &CouponRepository{db: db}
}

const couponColumns = `id, business_id, name, description, points_required, image_url, is_active, created_at, updated_at`

func (r *CouponRepository) Create(ctx context.Context, c *coupon.Coupon) (*queries.CouponView, error) {
	row := r.db.QueryRow(ctx,
		`INSERT INTO coupons (id, business_id, name, description, points_required, image_url)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+couponColumns,
		c.ID(), c.BusinessID(), c.Name().String(), c.Description(),
		c.PointsRequired().Value(), pgconv.StringPtrToPgtype(c.ImageURL()))

	view, err := scanCouponRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create coupon", err)
	}
	return view, nil
}

func (r *CouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.CouponView, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+couponColumns+` FROM coupons WHERE id = $1`,
		id)

	view, err := scanCouponRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("coupon not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find coupon by ID", err)
	}
	return view, nil
}

func (r *CouponRepository) ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*queries.CouponView, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+couponColumns+` FROM coupons
		 WHERE business_id = $1 AND (NOT $2 OR is_active)
		 ORDER BY created_at DESC`,
		businessID, activeOnly)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list coupons", err)
	}
	defer rows.Close()

	var views []*queries.CouponView
	for rows.Next() {
		view, err := scanCouponRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan coupon row", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read coupon rows", err)
	}
	return views, nil
}

// Deactivate is scoped by business so an owner cannot touch another
// tenant's coupon even with a guessed id.
func (r *CouponRepository) Deactivate(ctx context.Context, id, businessID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE coupons SET is_active = false, updated_at = now()
		 WHERE id = $1 AND business_id = $2 AND is_active`,
		id, businessID)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate coupon", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("coupon not found or already inactive", nil, infra.KindNotFound)
	}
	return nil
}

func scanCouponRow(row interface{ Scan(dest ...any) error }) (*queries.CouponView, error) {
	var (
		view      queries.CouponView
		imageURL  pgtype.Text
		createdAt pgtype.Timestamptz
		updatedAt pgtype.Timestamptz
	)
	err := row.Scan(&view.ID, &view.BusinessID, &view.Name, &view.Description,
		&view.PointsRequired, &imageURL, &view.IsActive, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	view.ImageURL = pgconv.StringPtrFromPgtype(imageURL)
	view.CreatedAt = pgconv.TimeFromPgtype(createdAt)
	view.UpdatedAt = pgconv.TimeFromPgtype(updatedAt)
	return &view, nil
}
