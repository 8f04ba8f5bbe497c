package users

import "context"

// UserRepository defines the interface for user data persistence
type UserRepository interface {
	// Create inserts a new user and returns it with ID and CreatedAt populated.
	// Returns ErrUsernameTaken when the username is already registered.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by primary key
	GetByID(ctx context.Context, id int64) (*User, error)

	// GetByUsername retrieves a user by exact username
	GetByUsername(ctx context.Context, username string) (*User, error)

	// List returns every registered user, newest first.
	// Backs the audience selector on the post forms.
	List(ctx context.Context) ([]*User, error)
}

// UserService defines the interface for account business logic
type UserService interface {
	// Register validates the request, hashes the password, and stores the account
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Authenticate verifies a username/password pair and returns the account.
	// Returns ErrInvalidCredentials on any mismatch.
	Authenticate(ctx context.Context, creds Credentials) (*User, error)

	// GetByID retrieves a user by primary key.
	// Called by the session middleware to resolve the viewer on each request.
	GetByID(ctx context.Context, id int64) (*User, error)

	// List returns every registered user, newest first
	List(ctx context.Context) ([]*User, error)
}
