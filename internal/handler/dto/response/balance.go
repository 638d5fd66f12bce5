package response

import (
	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StampBalanceResponse struct {
	CouponID       uuid.UUID `json:"coupon_id"`
	CouponName     string    `json:"coupon_name"`
	Points         int32     `json:"points"`
	PointsRequired int32     `json:"points_required"`
}

type BalanceResponse struct {
	BusinessID  uuid.UUID              `json:"business_id"`
	LoyaltyType string                 `json:"loyalty_type"`
	TotalPoints int32                  `json:"total_points"`
	Stamps      []StampBalanceResponse `json:"stamps,omitempty"`
}

func FromBalanceView(v *queries.BalanceView) *BalanceResponse {
	var resp BalanceResponse
	_ = copier.Copy(&resp, v)
	return &resp
}
