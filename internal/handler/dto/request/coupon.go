package request

import "strings"

type CreateCouponRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description"`
	PointsRequired int32   `json:"points_required" binding:"required"`
	ImageURL       *string `json:"image_url,omitempty"`
}

func (r CreateCouponRequest) GetName() string {
	return strings.TrimSpace(r.Name)
}

func (r CreateCouponRequest) GetImageURL() *string {
	if r.ImageURL == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ImageURL)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
