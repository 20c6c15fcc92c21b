package memory

import (
	"context"
	"sync"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

// UserRepository keeps users in memory behind the same interface as the
// postgres adapter. Used by tests and local development.
type UserRepository struct {
	mu     sync.Mutex
	nextID int64
	users  map[string]domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		nextID: 1,
		users:  make(map[string]domain.User),
	}
}

func (r *UserRepository) Init(ctx context.Context) error {
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[user.Email]; exists {
		return 0, repository.ErrDuplicateEmail
	}

	user.ID = r.nextID
	r.nextID++
	r.users[user.Email] = *user
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, exists := r.users[email]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return &user, nil
}

// SetActive flips the active flag on an existing user.
func (r *UserRepository) SetActive(email string, active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user, exists := r.users[email]; exists {
		user.IsActive = active
		r.users[email] = user
	}
}

func (r *UserRepository) Configured() bool {
	return true
}
