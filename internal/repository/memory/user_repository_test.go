package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()
	assert.True(t, repo.Configured())

	user := &domain.User{
		Email:        "a@b.com",
		FullName:     "A B",
		Role:         domain.RoleTechnician,
		IsActive:     true,
		PasswordHash: "hash",
	}
	id, err := repo.Create(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, "A B", got.FullName)
	assert.Equal(t, "hash", got.PasswordHash)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, &domain.User{Email: "a@b.com"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &domain.User{Email: "a@b.com"})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.GetByEmail(ctx, "missing@b.com")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_SetActive(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository()

	_, err := repo.Create(ctx, &domain.User{Email: "a@b.com", IsActive: true})
	require.NoError(t, err)

	repo.SetActive("a@b.com", false)

	got, err := repo.GetByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
