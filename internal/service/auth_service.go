package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"techsync/internal/auth"
	"techsync/internal/domain"
	"techsync/internal/repository"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
var letterPattern = regexp.MustCompile(`[a-zA-Z]`)

// RegisterInput carries the fields of a registration request.
type RegisterInput struct {
	Email    string
	Password string
	FullName string
	Role     domain.Role
}

// Token is the login result handed back to the client.
type Token struct {
	AccessToken string
	TokenType   string
}

// AuthService orchestrates registration, login and request authentication.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*Token, error)
	// Authenticate resolves a bearer credential to an existing active user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)
	// Authorize re-runs Authenticate and additionally requires an exact role match.
	Authorize(ctx context.Context, token string, role domain.Role) (*domain.User, error)
}

type authService struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
	tokens *auth.TokenCodec
}

func NewAuthService(users repository.UserRepository, hasher *auth.PasswordHasher, tokens *auth.TokenCodec) AuthService {
	return &authService{
		users:  users,
		hasher: hasher,
		tokens: tokens,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.FullName = strings.TrimSpace(input.FullName)
	if input.Role == "" {
		input.Role = domain.RoleTechnician
	}

	if err := validateRegistration(input); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByEmail(ctx, input.Email); err == nil {
		return nil, ErrDuplicateEmail
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, storeErr(err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        input.Email,
		FullName:     input.FullName,
		Role:         input.Role,
		IsActive:     true,
		PasswordHash: hash,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, storeErr(err)
	}

	return sanitizeUser(user), nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*Token, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeErr(err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountInactive
	}

	signed, err := s.tokens.Encode(user.Email)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: signed, TokenType: "bearer"}, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	subject, err := s.tokens.Decode(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, storeErr(err)
	}

	if !user.IsActive {
		return nil, ErrAccountInactive
	}
	return sanitizeUser(user), nil
}

func (s *authService) Authorize(ctx context.Context, token string, role domain.Role) (*domain.User, error) {
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}
	if user.Role != role {
		return nil, fmt.Errorf("%w: %s", ErrForbidden, role)
	}
	return user, nil
}

func validateRegistration(input RegisterInput) error {
	if !emailPattern.MatchString(input.Email) {
		return invalid("email", "must be a valid email address")
	}
	if len(input.Password) < 8 {
		return invalid("password", "must be at least 8 characters")
	}
	if len(input.Password) > 100 {
		return invalid("password", "must be at most 100 characters")
	}
	if !letterPattern.MatchString(input.Password) {
		return invalid("password", "must contain at least one letter")
	}
	if len(input.FullName) < 2 {
		return invalid("full_name", "must be at least 2 characters")
	}
	if len(input.FullName) > 100 {
		return invalid("full_name", "must be at most 100 characters")
	}
	if !input.Role.Valid() {
		return invalid("role", "must be admin or technician")
	}
	return nil
}

// storeErr keeps ErrNotConfigured recognizable and hides everything else
// behind a generic wrapper so raw store errors never reach the client.
func storeErr(err error) error {
	if errors.Is(err, repository.ErrNotConfigured) {
		return err
	}
	return fmt.Errorf("user store: %w", err)
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:       user.ID,
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		IsActive: user.IsActive,
	}
}
