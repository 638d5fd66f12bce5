package commands

import (
	"context"

	"punchcard/internal/domain/coupon"
	"punchcard/internal/domain/principal"
	"punchcard/internal/infra"
	"punchcard/internal/pkg/errs"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrCouponForbidden  = errs.New("not authorized to manage coupons for this business")
	ErrDomainValidation = errs.New("domain validation error")
)

type CreateCouponInput struct {
	Name           string
	Description    string
	PointsRequired int32
	ImageURL       *string
}

type CouponCommands interface {
	Create(ctx context.Context, actor principal.Principal, in CreateCouponInput) (*queries.CouponView, error)
	// Deactivate is a soft delete; redemptions keep referencing the row.
	Deactivate(ctx context.Context, actor principal.Principal, id uuid.UUID) error
}

type couponUseCaseImpl struct {
	repo CouponRepository
}

func NewCouponUseCase(repo CouponRepository) CouponCommands {
	return &couponUseCaseImpl{repo: repo}
}

func (u *couponUseCaseImpl) Create(ctx context.Context, actor principal.Principal, in CreateCouponInput) (*queries.CouponView, error) {
	if !actor.CanManageCoupons() {
		return nil, ErrCouponForbidden
	}
	businessID, err := actor.RequireBusiness()
	if err != nil {
		return nil, errs.Mark(err, ErrCouponForbidden)
	}

	entity, err := coupon.NewCoupon(businessID, in.Name, in.Description, in.PointsRequired, in.ImageURL)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	view, err := u.repo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *couponUseCaseImpl) Deactivate(ctx context.Context, actor principal.Principal, id uuid.UUID) error {
	if !actor.CanManageCoupons() {
		return ErrCouponForbidden
	}
	businessID, err := actor.RequireBusiness()
	if err != nil {
		return errs.Mark(err, ErrCouponForbidden)
	}

	if err := u.repo.Deactivate(ctx, id, businessID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCouponNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
