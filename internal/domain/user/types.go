package user

import "strings"

// Role is what a hotel operator account is allowed to do. Staff run the
// front desk (bookings, check-in/out, invoices); admins additionally manage
// rooms and see the full booking list.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(strings.ToLower(s))
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
