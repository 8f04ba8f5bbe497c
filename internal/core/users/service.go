package users

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

// Usernames render in page titles and the audience selector; keep them short.
const maxUsernameLen = 64

type userService struct {
	userRepo UserRepository
	logger   *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(userRepo UserRepository, logger *slog.Logger) UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register validates the request, hashes the password, and stores the account
func (s *userService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	req.Username = strings.TrimSpace(req.Username)

	if req.Username == "" {
		return nil, NewValidationError("username", "Username is required.")
	}
	if utf8.RuneCountInString(req.Username) > maxUsernameLen {
		return nil, NewValidationError("username", fmt.Sprintf("Username must be at most %d characters.", maxUsernameLen))
	}
	if req.Password == "" {
		return nil, NewValidationError("password", "Password is required.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := s.userRepo.Create(ctx, &User{
		Username:     req.Username,
		PasswordHash: string(hash),
	})
	if err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return nil, NewValidationError("username", fmt.Sprintf("User %s is already registered.", req.Username))
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("user registered", "userID", user.ID, "username", user.Username)
	return user, nil
}

// Authenticate verifies a username/password pair and returns the account
func (s *userService) Authenticate(ctx context.Context, creds Credentials) (*User, error) {
	creds.Username = strings.TrimSpace(creds.Username)
	if creds.Username == "" || creds.Password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.userRepo.GetByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByID retrieves a user by primary key
func (s *userService) GetByID(ctx context.Context, id int64) (*User, error) {
	if id <= 0 {
		return nil, ErrUserNotFound
	}
	return s.userRepo.GetByID(ctx, id)
}

// List returns every registered user, newest first
func (s *userService) List(ctx context.Context) ([]*User, error) {
	list, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return list, nil
}
