package request

import (
	"strings"

	"github.com/google/uuid"
)

// ScanRequest carries one scanned payload. A present amount means the
// staff member intends an award; absence means a verification. The
// payload kind is resolved server-side, never inferred from shape here.
type ScanRequest struct {
	Data     string  `json:"data" binding:"required"`
	Amount   *int32  `json:"amount,omitempty"`
	CouponID *string `json:"coupon_id,omitempty"`
}

func (r ScanRequest) GetData() string {
	return strings.TrimSpace(r.Data)
}

func (r ScanRequest) GetCouponID() (*uuid.UUID, error) {
	if r.CouponID == nil {
		return nil, nil
	}
	id, err := uuid.Parse(*r.CouponID)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
