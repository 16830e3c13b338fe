package models

import "time"

// User represents a storefront account.
// The credential is stored alongside the profile but is never rendered to
// clients.
type User struct {
	// ID is the store-generated identifier (UUIDv7 in canonical text form).
	ID string `json:"_id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Username is the login handle used for authentication.
	// Unique across all accounts (enforced by the database).
	Username string `json:"username"`

	// Email is the contact address of the user. It is not verified.
	Email string `json:"email"`

	// Password holds the credential: the bcrypt output of the user's
	// password, never plaintext. Excluded from JSON.
	Password string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
