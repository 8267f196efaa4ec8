package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/iliyamo/sports-ground-booking/internal/model"
	"github.com/iliyamo/sports-ground-booking/internal/repository"
)

// ErrInvalidCredentials is returned on login when the email is unknown
// or the password does not match. Both cases are indistinguishable to
// the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, u *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	Update(ctx context.Context, u *model.User) error
}

// AuthService registers and authenticates users. Passwords are stored
// as bcrypt hashes only.
type AuthService struct {
	users  UserStore
	cost   int
	logger *zerolog.Logger
}

// NewAuthService constructs an AuthService with the given bcrypt cost.
func NewAuthService(users UserStore, cost int, logger *zerolog.Logger) *AuthService {
	return &AuthService{users: users, cost: cost, logger: logger}
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	PhoneNumber string
	Address     string
}

// Register creates a non-admin user. A taken email surfaces as
// repository.ErrEmailExists.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &model.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: string(hash),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		Address:      strings.TrimSpace(in.Address),
		IsAdmin:      false,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.logger.Info().Int64("user_id", u.ID).Str("email", u.Email).Msg("user registered")
	return u, nil
}

// Login verifies credentials and returns the user.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}

// EnsureAdmin seeds the admin account at startup when no user with the
// given email exists yet.
func (s *AuthService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	u := &model.User{
		FirstName:    "Admin",
		LastName:     "User",
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: string(hash),
		PhoneNumber:  "1234567890",
		Address:      "Admin Address",
		IsAdmin:      true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	s.logger.Info().Str("email", u.Email).Msg("admin user seeded")
	return nil
}
