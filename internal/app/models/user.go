package models

import "time"

// DefaultRole is shown when the backend does not report a role
const DefaultRole = "User"

// User is the identity the backend reports for an authenticated staff member.
// No password material is kept.
type User struct {
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// DisplayName returns the full name, falling back to the username
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// DisplayRole returns the role, falling back to DefaultRole
func (u User) DisplayRole() string {
	if u.Role != "" {
		return u.Role
	}
	return DefaultRole
}

// Initial returns the upper-cased first letter of the username
func (u User) Initial() string {
	return initial(u.Username)
}

// Session is one authenticated console session
type Session struct {
	ID        string
	User      User
	Token     string
	CreatedAt time.Time
}
