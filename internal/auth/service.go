package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"finance-tracker/internal/models"
	"finance-tracker/internal/storage"
)

var (
	// ErrUserExists is returned by CreateUser when the username is taken.
	ErrUserExists = errors.New("username already exists")
	// ErrEmptyUsername is returned by CreateUser for a blank username.
	ErrEmptyUsername = errors.New("username cannot be empty")
	// ErrInvalidCredentials is returned by Login for an unknown user and for
	// a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// UserStore is the part of storage the Service needs.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service creates accounts and verifies logins.
type Service struct {
	users  UserStore
	logger *slog.Logger

	dummyOnce sync.Once
	dummyHash string
}

// NewService returns a Service backed by users. A nil logger discards output.
func NewService(users UserStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{users: users, logger: logger.With("component", "auth")}
}

// CreateUser stores username with a digest of password. Duplicate usernames
// fail with ErrUserExists.
func (s *Service) CreateUser(ctx context.Context, username, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrEmptyUsername
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.CreateUser(ctx, username, hash)
	if errors.Is(err, storage.ErrDuplicate) {
		s.logger.InfoContext(ctx, "signup rejected", "reason", "duplicate username")
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user created", "user_id", user.ID)
	return user, nil
}

// Login returns the user when password matches, and ErrInvalidCredentials
// otherwise. Other errors come from storage.
func (s *Service) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetUserByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, storage.ErrNotFound) {
		// Spend the same bcrypt work as a real check.
		CheckPassword(password, s.dummy())
		s.logger.InfoContext(ctx, "login failed")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	if !CheckPassword(password, user.PasswordHash) {
		s.logger.InfoContext(ctx, "login failed")
		return nil, ErrInvalidCredentials
	}

	s.logger.DebugContext(ctx, "login succeeded", "user_id", user.ID)
	return user, nil
}

func (s *Service) dummy() string {
	s.dummyOnce.Do(func() {
		s.dummyHash, _ = HashPassword("not-a-real-password")
	})
	return s.dummyHash
}
