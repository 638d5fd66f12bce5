//go:build unit || e2e

package builder

import (
	"time"

	domcoupon "punchcard/internal/domain/coupon"
	reqdto "punchcard/internal/handler/dto/request"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

type CouponBuilder struct {
	ID             uuid.UUID
	BusinessID     uuid.UUID
	Name           string
	Description    string
	PointsRequired int32
	ImageURL       *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewCouponBuilder() *CouponBuilder {
	now := time.Now()
	return &CouponBuilder{
		ID:             uuid.New(),
		BusinessID:     uuid.New(),
		Name:           "Free Coffee",
		Description:    "One free coffee of any size",
		PointsRequired: 10,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func (b *CouponBuilder) With(mutate func(*CouponBuilder)) *CouponBuilder {
	mutate(b)
	return b
}

func (b *CouponBuilder) BuildDomain() (*domcoupon.Coupon, error) {
	return domcoupon.NewCoupon(b.BusinessID, b.Name, b.Description, b.PointsRequired, b.ImageURL)
}

func (b *CouponBuilder) BuildView() *queries.CouponView {
	return &queries.CouponView{
		ID:             b.ID,
		BusinessID:     b.BusinessID,
		Name:           b.Name,
		Description:    b.Description,
		PointsRequired: b.PointsRequired,
		ImageURL:       b.ImageURL,
		IsActive:       b.IsActive,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

func (b *CouponBuilder) BuildCreateRequestDTO() reqdto.CreateCouponRequest {
	return reqdto.CreateCouponRequest{
		Name:           b.Name,
		Description:    b.Description,
		PointsRequired: b.PointsRequired,
		ImageURL:       b.ImageURL,
	}
}
