package request

import "github.com/google/uuid"

type RedeemCouponRequest struct {
	CouponID uuid.UUID `json:"coupon_id" binding:"required"`
}
