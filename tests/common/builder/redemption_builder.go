//go:build unit || e2e

package builder

import (
	"time"

	domredemption "punchcard/internal/domain/redemption"
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
)

type RedemptionBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	BusinessID     uuid.UUID
	CouponID       uuid.UUID
	CouponName     string
	PointsRequired int32
	RedeemedAt     time.Time
	Verified       bool
	VerifiedAt     *time.Time
}

func NewRedemptionBuilder() *RedemptionBuilder {
	return &RedemptionBuilder{
		ID:             uuid.New(),
		UserID:         uuid.New(),
		BusinessID:     uuid.New(),
		CouponID:       uuid.New(),
		CouponName:     "Free Coffee",
		PointsRequired: 10,
		RedeemedAt:     time.Now(),
		Verified:       false,
	}
}

func (b *RedemptionBuilder) With(mutate func(*RedemptionBuilder)) *RedemptionBuilder {
	mutate(b)
	return b
}

func (b *RedemptionBuilder) BuildDomain() *domredemption.Redemption {
	return domredemption.Restore(b.ID, b.UserID, b.BusinessID, b.CouponID, b.RedeemedAt, b.Verified, b.VerifiedAt)
}

func (b *RedemptionBuilder) BuildView() *queries.RedemptionView {
	return &queries.RedemptionView{
		ID:             b.ID,
		UserID:         b.UserID,
		BusinessID:     b.BusinessID,
		CouponID:       b.CouponID,
		CouponName:     b.CouponName,
		PointsRequired: b.PointsRequired,
		RedeemedAt:     b.RedeemedAt,
		Verified:       b.Verified,
		VerifiedAt:     b.VerifiedAt,
	}
}
