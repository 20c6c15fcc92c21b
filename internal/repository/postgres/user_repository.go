package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"techsync/internal/domain"
	"techsync/internal/repository"
)

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
	id BIGSERIAL PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	full_name TEXT NOT NULL,
	role TEXT NOT NULL,
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	password_hash TEXT NOT NULL
);
`

const uniqueViolation = "23505"

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) repository.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Init(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create users table: %w", err)
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	err := r.db.QueryRow(ctx, `
INSERT INTO users (email, full_name, role, is_active, password_hash)
VALUES ($1, $2, $3, $4, $5)
RETURNING id`,
		user.Email,
		user.FullName,
		user.Role,
		user.IsActive,
		user.PasswordHash,
	).Scan(&user.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return 0, repository.ErrDuplicateEmail
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return user.ID, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	err := r.db.QueryRow(ctx, `
SELECT id, email, full_name, role, is_active, password_hash
FROM users
WHERE email = $1`,
		email,
	).Scan(
		&user.ID,
		&user.Email,
		&user.FullName,
		&user.Role,
		&user.IsActive,
		&user.PasswordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("select user by email: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Configured() bool {
	return true
}
