package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcdev12/zodiarena/go/internal/models"
)

// Repository handles database operations for users.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const createUserQuery = `
INSERT INTO users (id, username, password_hash, created_at)
VALUES ($1, $2, $3, NOW())
RETURNING id, username, password_hash, created_at`

func (r *Repository) CreateUser(ctx context.Context, params CreateUserParams) (*models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx, createUserQuery, uuid.New(), params.Username, params.PasswordHash).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

const getUserByUsernameQuery = `
SELECT id, username, password_hash, created_at
FROM users
WHERE username = $1`

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.pool.QueryRow(ctx, getUserByUsernameQuery, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}
