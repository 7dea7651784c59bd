package domain

import "time"

// Role is the coarse permission tier attached to a user record.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// VerifyStatus tracks seller identity verification.
type VerifyStatus string

const (
	VerifyStatusUnverified VerifyStatus = "unverified"
	VerifyStatusPending    VerifyStatus = "pending"
	VerifyStatusVerified   VerifyStatus = "verified"
	VerifyStatusRejected   VerifyStatus = "rejected"
)

// Valid reports whether s is a known verification status.
func (s VerifyStatus) Valid() bool {
	switch s {
	case VerifyStatusUnverified, VerifyStatusPending, VerifyStatusVerified, VerifyStatusRejected:
		return true
	}
	return false
}

// User is a registered marketplace member. Email is the unique identity.
type User struct {
	ID                  string
	Name                string
	Email               string
	PhotoURL            string
	Role                Role
	PasswordHash        string
	Phone               string
	Address             string
	VerificationRequest bool
	VerifyStatus        VerifyStatus
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
