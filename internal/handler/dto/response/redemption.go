package response

import (
	"time"

	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RedemptionResponse struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	BusinessID     uuid.UUID  `json:"business_id"`
	CouponID       uuid.UUID  `json:"coupon_id"`
	CouponName     string     `json:"coupon_name"`
	PointsRequired int32      `json:"points_required"`
	RedeemedAt     time.Time  `json:"redeemed_at"`
	Verified       bool       `json:"verified"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
}

func FromRedemptionView(v *queries.RedemptionView) *RedemptionResponse {
	var resp RedemptionResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
