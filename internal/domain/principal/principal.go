package principal

import (
	"errors"

	"github.com/google/uuid"
)

var ErrInvalidRole = errors.New("invalid principal role")

// Role is the kind of account the auth provider signed the token for.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleBusiness Role = "business"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleBusiness:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the verified identity a request acts as. For a business
// account the ID doubles as the business ID.
type Principal struct {
	ID   uuid.UUID
	Role Role
}

func (p Principal) IsCustomer() bool { return p.Role == RoleCustomer }
func (p Principal) IsBusiness() bool { return p.Role == RoleBusiness }
