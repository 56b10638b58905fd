// Package entity contains the core business objects of the book shop,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account that can log in, list books for sale and edit its own profile.
type User struct {
	ID                 int64      // Serial identifier assigned by the store.
	Username           string     // Unique public handle, also accepted as a login identifier.
	Email              string     // Unique contact email, also accepted as a login identifier.
	PasswordHash       string     // bcrypt hash of the password. Never leaves the service.
	ResetCodeHash      *string    // SHA-256 of the pending password reset code, nil when none was requested.
	ResetCodeExpiresAt *time.Time // Moment after which the pending reset code is rejected.
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// HasPendingReset reports whether a password reset code was issued and not yet consumed.
func (u *User) HasPendingReset() bool {
	return u.ResetCodeHash != nil && *u.ResetCodeHash != ""
}

// ResetCodeExpired reports whether the pending reset code is past its expiry at now.
func (u *User) ResetCodeExpired(now time.Time) bool {
	return u.ResetCodeExpiresAt == nil || !now.Before(*u.ResetCodeExpiresAt)
}

// UserUpdate carries the profile fields to change; nil fields are left untouched.
type UserUpdate struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether no field was supplied.
func (u UserUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil
}
