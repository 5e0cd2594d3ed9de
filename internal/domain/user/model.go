package user

import "strings"

// Role is the account role assigned by the user service.
type Role string

const (
	RoleUser     Role = "USER"
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
)

// User is an account as returned by the user service.
type User struct {
	ID          int64  `json:"id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	PhoneNumber string `json:"phoneNumber"`
}

// FullName joins the non-empty name parts.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether u may use the admin pages.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
