package users

import (
	"time"
)

// User is a registered account in the blog database.
// Accounts are local: a username plus a bcrypt password hash. The session
// middleware resolves the logged-in viewer to a *User once per request and
// everything downstream receives it explicitly.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

// RegisterRequest represents the input for creating a new account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Credentials represents the input for password login
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
