package principal

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrNoBusinessScope    = errors.New("principal has no business scope")
	ErrWrongBusiness      = errors.New("principal belongs to a different business")
	ErrClientRoleRequired = errors.New("operation requires a client principal")
)

// Principal is the authenticated actor as attested by the identity
// provider. The token claims are the single source of truth for
// role and business binding; nothing here is read from the database.
type Principal struct {
	userID     uuid.UUID
	role       Role
	businessID *uuid.UUID
}

func New(userID uuid.UUID, role Role, businessID *uuid.UUID) Principal {
	return Principal{
		userID:     userID,
		role:       role,
		businessID: businessID,
	}
}

func (p Principal) UserID() uuid.UUID      { return p.userID }
func (p Principal) Role() Role             { return p.role }
func (p Principal) BusinessID() *uuid.UUID { return p.businessID }

// RequireBusiness returns the business the principal operates for.
// Staff and owner tokens always carry one; client tokens do not.
func (p Principal) RequireBusiness() (uuid.UUID, error) {
	if !p.role.CanOperateCounter() {
		return uuid.Nil, ErrNoBusinessScope
	}
	if p.businessID == nil {
		return uuid.Nil, ErrNoBusinessScope
	}
	return *p.businessID, nil
}

// ScopedTo checks the principal against the business owning a record.
func (p Principal) ScopedTo(businessID uuid.UUID) error {
	own, err := p.RequireBusiness()
	if err != nil {
		return err
	}
	if own != businessID {
		return ErrWrongBusiness
	}
	return nil
}

// CanSeeAllActions: owners audit every staff member, staff only themselves.
func (p Principal) CanSeeAllActions() bool {
	return p.role == RoleOwner
}

// CanManageCoupons: the coupon catalog is owner surface; staff only
// operate the counter.
func (p Principal) CanManageCoupons() bool {
	return p.role == RoleOwner
}
