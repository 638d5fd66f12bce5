package queries

import (
	"context"

	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrCouponNotFound = errs.New("coupon not found")

type CouponViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, activeOnly bool) ([]*CouponView, error)
}

type CouponQueries interface {
	ListByBusiness(ctx context.Context, businessID uuid.UUID, includeInactive bool) ([]*CouponView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
}

type couponQueriesImpl struct {
	repo CouponViewRepo
}

func NewCouponQueries(repo CouponViewRepo) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) ListByBusiness(ctx context.Context, businessID uuid.UUID, includeInactive bool) ([]*CouponView, error) {
	return q.repo.ListByBusiness(ctx, businessID, !includeInactive)
}

func (q *couponQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCouponNotFound
		}
		return nil, err
	}
	return view, nil
}
