package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"userId"`

	// Username is the unique public handle chosen at registration.
	Username string `json:"username"`

	// Email is the unique address the account is registered under.
	// Used during registration only; never shown on posts.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// It is never exposed via JSON and exists only at the persistence layer.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
