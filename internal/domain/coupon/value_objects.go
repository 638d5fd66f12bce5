package coupon

import (
	"errors"
	"strings"
)

var (
	ErrInvalidName      = errors.New("coupon name must be 1-100 characters")
	ErrInvalidThreshold = errors.New("points required must be positive")
	ErrDescriptionLong  = errors.New("coupon description too long")
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

type Name string

func NewName(s string) (Name, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxNameLength {
		return "", ErrInvalidName
	}
	return Name(s), nil
}

func (n Name) String() string {
	return string(n)
}

// Threshold is the points a balance must reach before redemption.
type Threshold int32

func NewThreshold(points int32) (Threshold, error) {
	if points <= 0 {
		return 0, ErrInvalidThreshold
	}
	return Threshold(points), nil
}

func (t Threshold) Value() int32 {
	return int32(t)
}
