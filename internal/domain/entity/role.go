// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
// The set is closed: every caller is exactly one of these four.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "customer"
	// RoleWaiter indicates front-of-house staff.
	RoleWaiter Role = "waiter"
	// RoleKitchen indicates kitchen staff.
	RoleKitchen Role = "kitchen"
	// RoleAdmin indicates an administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleWaiter, RoleKitchen, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role belongs to restaurant personnel.
func (r Role) IsStaff() bool {
	switch r {
	case RoleWaiter, RoleKitchen, RoleAdmin:
		return true
	default:
		return false
	}
}

// CanSetOrderStatus reports whether the role may use the unguarded
// status-set operation on orders.
func (r Role) CanSetOrderStatus() bool {
	return r == RoleKitchen || r == RoleAdmin
}
