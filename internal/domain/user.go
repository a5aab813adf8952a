package domain

import "time"

// UserRole enumerates supported roles.
type UserRole string

const (
	UserRoleDonor     UserRole = "donor"
	UserRoleVolunteer UserRole = "volunteer"
	UserRoleAdmin     UserRole = "admin"
)

// User represents a registered account. The password hash never leaves the
// service boundary.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may perform administrative operations.
func (u User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
