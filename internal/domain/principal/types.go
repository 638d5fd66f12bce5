package principal

import "errors"

var ErrInvalidRole = errors.New("invalid role")

type Role string

const (
	RoleClient Role = "client"
	RoleStaff  Role = "staff"
	RoleOwner  Role = "owner"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleClient, RoleStaff, RoleOwner:
		return true
	default:
		return false
	}
}

// CanOperateCounter reports whether the role may perform staff-side
// ledger operations (scanning, awarding, verifying).
func (r Role) CanOperateCounter() bool {
	return r == RoleStaff || r == RoleOwner
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
