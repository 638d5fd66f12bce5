package redemption

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrAlreadyVerified = errors.New("coupon already verified")
	ErrWindowElapsed   = errors.New("verification window elapsed")
)

// Redemption is a customer's claim against a coupon once the threshold
// was met. Its id doubles as the scannable verification code.
// verified transitions false→true exactly once.
type Redemption struct {
	id         uuid.UUID
	userID     uuid.UUID
	businessID uuid.UUID
	couponID   uuid.UUID
	redeemedAt time.Time
	verified   bool
	verifiedAt *time.Time
}

func Restore(id, userID, businessID, couponID uuid.UUID, redeemedAt time.Time, verified bool, verifiedAt *time.Time) *Redemption {
	return &Redemption{
		id:         id,
		userID:     userID,
		businessID: businessID,
		couponID:   couponID,
		redeemedAt: redeemedAt,
		verified:   verified,
		verifiedAt: verifiedAt,
	}
}

// ValidateVerification checks the pre-claim conditions. The actual
// false→true transition still happens as a conditional update in
// storage; this only produces the precise rejection reason.
// A zero window disables the elapsed-time check.
func (r *Redemption) ValidateVerification(now time.Time, window time.Duration) error {
	if r.verified {
		return ErrAlreadyVerified
	}
	if window > 0 && now.Sub(r.redeemedAt) > window {
		return ErrWindowElapsed
	}
	return nil
}

func (r *Redemption) ID() uuid.UUID         { return r.id }
func (r *Redemption) UserID() uuid.UUID     { return r.userID }
func (r *Redemption) BusinessID() uuid.UUID { return r.businessID }
func (r *Redemption) CouponID() uuid.UUID   { return r.couponID }
func (r *Redemption) RedeemedAt() time.Time { return r.redeemedAt }
func (r *Redemption) Verified() bool        { return r.verified }
func (r *Redemption) VerifiedAt() *time.Time {
	return r.verifiedAt
}
