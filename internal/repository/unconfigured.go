package repository

import (
	"context"

	"techsync/internal/domain"
)

// UnconfiguredUserRepository stands in for the user store when no database URL
// is set. Every operation answers ErrNotConfigured so the API can boot without
// infrastructure and report authentication as unavailable instead of crashing.
type UnconfiguredUserRepository struct{}

func NewUnconfiguredUserRepository() UserRepository {
	return &UnconfiguredUserRepository{}
}

func (r *UnconfiguredUserRepository) Init(ctx context.Context) error {
	return nil
}

func (r *UnconfiguredUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	return 0, ErrNotConfigured
}

func (r *UnconfiguredUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return nil, ErrNotConfigured
}

func (r *UnconfiguredUserRepository) Configured() bool {
	return false
}
