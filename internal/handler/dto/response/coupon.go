package response

import (
	"time"

	"punchcard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CouponResponse struct {
	ID             uuid.UUID `json:"id"`
	BusinessID     uuid.UUID `json:"business_id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	PointsRequired int32     `json:"points_required"`
	ImageURL       *string   `json:"image_url,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromCouponView(v *queries.CouponView) *CouponResponse {
	var resp CouponResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromCouponViews(vs []*queries.CouponView) []*CouponResponse {
	resps := make([]*CouponResponse, 0, len(vs))
	for _, v := range vs {
		resps = append(resps, FromCouponView(v))
	}
	return resps
}
