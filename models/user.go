package models

import "time"

// User represents an account record exposed by the /users resource.
// Identity is assigned by the storage layer on first persist and never
// changes afterwards.
type User struct {
	// ID is the opaque identifier of the user (UUIDv7 string).
	ID string `json:"id"`

	// Email is the unique contact address of the user.
	Email string `json:"email"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone"`

	// Password is write-only: it carries the plaintext on input and the
	// stored hash inside the application. It MUST be hashed before it
	// reaches storage and is stripped from every response (see Public).
	Password string `json:"password,omitempty"`

	// CreatedAt and UpdatedAt are owned by the storage layer.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Public returns a copy of u that is safe to serialize into a response.
func (u User) Public() User {
	u.Password = ""
	return u
}

// PublicUsers maps Public over users. A nil input produces an empty,
// non-nil slice so that it is encoded as [] rather than null.
func PublicUsers(users []User) []User {
	public := make([]User, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	return public
}
