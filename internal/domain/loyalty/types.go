package loyalty

import "errors"

var ErrInvalidLoyaltyType = errors.New("invalid loyalty type")

// Type selects which balance shape a business accumulates value in.
// The two modes never share a counter.
type Type string

const (
	// TypePoints keeps a single running total per (user, business).
	TypePoints Type = "points"
	// TypeStamps keeps an independent counter per (user, business, coupon).
	TypeStamps Type = "stamps"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypePoints, TypeStamps:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidLoyaltyType
	}
	return t, nil
}
