package domain

import "time"

// UserRole represents the role of a user in the marketplace
type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
)

// IsValid returns true if the role is one of the known roles
func (r UserRole) IsValid() bool {
	return r == RoleCustomer || r == RoleProvider
}

// Profile contact details of a user, stored as an opaque JSON document
type Profile struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// FullName returns the display name of the user
func (p Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

// User represents a registered account.
// Role is immutable after registration: providers own services,
// customers own bookings.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         UserRole
	Profile      Profile

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsProvider returns true if the user can own services
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// IsCustomer returns true if the user can create bookings
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}
