package response

import (
	"time"

	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ActionResponse struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"business_id"`
	StaffID     uuid.UUID  `json:"staff_id"`
	ActionType  string     `json:"action_type"`
	Points      *int32     `json:"points,omitempty"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	CouponName  *string    `json:"coupon_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func FromActionViews(vs []*queries.ActionView) []*ActionResponse {
	resps := make([]*ActionResponse, 0, len(vs))
	for _, v := range vs {
		var resp ActionResponse
		_ = copier.Copy(&resp, v)
		resps = append(resps, &resp)
	}
	return resps
}
