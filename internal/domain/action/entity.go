package action

import (
	"github.com/google/uuid"
)

// StaffAction records one staff-performed ledger mutation for dispute
// resolution. Losing an entry is tolerated; losing award correctness
// is not, so writers treat the append as best-effort.
type StaffAction struct {
	id          uuid.UUID
	businessID  uuid.UUID
	staffID     uuid.UUID
	actionType  Type
	points      *int32
	recipientID *uuid.UUID
	couponName  *string
}

func NewAward(businessID, staffID, recipientID uuid.UUID, points int32) *StaffAction {
	return &StaffAction{
		id:          uuid.New(),
		businessID:  businessID,
		staffID:     staffID,
		actionType:  TypeAwardPoints,
		points:      &points,
		recipientID: &recipientID,
	}
}

func NewVerification(businessID, staffID, recipientID uuid.UUID, couponName string) *StaffAction {
	return &StaffAction{
		id:          uuid.New(),
		businessID:  businessID,
		staffID:     staffID,
		actionType:  TypeVerifyCoupon,
		recipientID: &recipientID,
		couponName:  &couponName,
	}
}

func (a *StaffAction) ID() uuid.UUID           { return a.id }
func (a *StaffAction) BusinessID() uuid.UUID   { return a.businessID }
func (a *StaffAction) StaffID() uuid.UUID      { return a.staffID }
func (a *StaffAction) ActionType() Type        { return a.actionType }
func (a *StaffAction) Points() *int32          { return a.points }
func (a *StaffAction) RecipientID() *uuid.UUID { return a.recipientID }
func (a *StaffAction) CouponName() *string     { return a.couponName }
