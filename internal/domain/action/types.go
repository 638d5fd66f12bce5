package action

import "errors"

var ErrInvalidActionType = errors.New("invalid action type")

// Type tags an audit entry. The log is append-only; no component ever
// updates or deletes a row.
type Type string

const (
	TypeAwardPoints  Type = "AWARD_POINTS"
	TypeVerifyCoupon Type = "VERIFY_COUPON"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeAwardPoints, TypeVerifyCoupon:
		return true
	default:
		return false
	}
}
