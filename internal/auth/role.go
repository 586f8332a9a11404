package auth

import "fmt"

// Role is the closed set of account roles. Pharmacist capabilities are a
// strict subset of admin's.
type Role string

const (
	RoleCustomer   Role = "customer"
	RolePharmacist Role = "pharmacist"
	RoleAdmin      Role = "admin"
)

// ParseRole maps a stored string onto the closed Role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCustomer, RolePharmacist, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// IsAdmin reports whether the role may use admin-only operations.
func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// CanReview reports whether the role may review prescriptions.
func (r Role) CanReview() bool {
	return r == RolePharmacist || r == RoleAdmin
}
