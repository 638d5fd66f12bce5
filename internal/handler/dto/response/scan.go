package response

import (
	"time"

	"punchcard/internal/usecase/commands"

	"github.com/google/uuid"
)

type AwardResponse struct {
	RecipientID uuid.UUID `json:"recipient_id"`
	Awarded     int32     `json:"awarded"`
	NewBalance  int32     `json:"new_balance"`
}

type VerificationResponse struct {
	RedemptionID uuid.UUID       `json:"redemption_id"`
	RecipientID  uuid.UUID       `json:"recipient_id"`
	Coupon       *CouponResponse `json:"coupon"`
	VerifiedAt   time.Time       `json:"verified_at"`
}

// ScanResponse reports which flow the payload dispatched to. Exactly
// one of the two fields is set.
type ScanResponse struct {
	Result       string                `json:"result"`
	Award        *AwardResponse        `json:"award,omitempty"`
	Verification *VerificationResponse `json:"verification,omitempty"`
}

func FromScanResult(r *commands.ScanResult) *ScanResponse {
	if r.Award != nil {
		return &ScanResponse{
			Result: "points_awarded",
			Award: &AwardResponse{
				RecipientID: r.Award.RecipientID,
				Awarded:     r.Award.Awarded,
				NewBalance:  r.Award.NewBalance,
			},
		}
	}
	return &ScanResponse{
		Result: "coupon_verified",
		Verification: &VerificationResponse{
			RedemptionID: r.Verification.RedemptionID,
			RecipientID:  r.Verification.RecipientID,
			Coupon:       FromCouponView(r.Verification.Coupon),
			VerifiedAt:   r.Verification.VerifiedAt,
		},
	}
}
