package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type QRCodeView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Data      string     `json:"data"`
	Used      bool       `json:"used"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type BusinessView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LoyaltyType string    `json:"loyalty_type"`
}

type CouponView struct {
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

type StampBalanceView struct {
	CouponID       uuid.UUID `json:"coupon_id"`
	CouponName     string    `json:"coupon_name"`
	Points         int32     `json:"points"`
	PointsRequired int32     `json:"points_required"`
}

type BalanceView struct {
	BusinessID  uuid.UUID          `json:"business_id"`
	LoyaltyType string             `json:"loyalty_type"`
	TotalPoints int32              `json:"total_points"`
	Stamps      []StampBalanceView `json:"stamps,omitempty"`
}

type RedemptionView struct {
	ID             uuid.UUID  `json:"id"`
	UserID         uuid.UUID  `json:"user_id"`
	BusinessID     uuid.UUID  `json:"business_id"`
	CouponID       uuid.UUID  `json:"coupon_id"`
	CouponName     string     `json:"coupon_name"`
	PointsRequired int32      `json:"points_required"`
	RedeemedAt     time.Time  `json:"redeemed_at"`
	Verified       bool       `json:"verified"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
}

type ActionView struct {
	ID          uuid.UUID  `json:"id"`
	BusinessID  uuid.UUID  `json:"business_id"`
	StaffID     uuid.UUID  `json:"staff_id"`
	ActionType  string     `json:"action_type"`
	Points      *int32     `json:"points,omitempty"`
	RecipientID *uuid.UUID `json:"recipient_id,omitempty"`
	CouponName  *string    `json:"coupon_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
