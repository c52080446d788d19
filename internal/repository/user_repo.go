package repository

import (
	"context"
	"database/sql"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// userRepo is the concrete implementation of UserRepository
type userRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &userRepo{db: db}
}

// GetByID retrieves a user by ID
func (r *userRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT id, email, name, api_key, active, created_at, updated_at
		FROM users WHERE id = $1
	`
	var user models.User
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Name, &user.APIKey, &user.Active,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByAPIKey retrieves an active user by API key. Backs the authentication
// collaborator; inactive accounts are treated as not found.
func (r *userRepo) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	query := `
		SELECT id, email, name, api_key, active, created_at, updated_at
		FROM users WHERE api_key = $1 AND active = true
	`
	var user models.User
	err := r.db.QueryRowContext(ctx, query, apiKey).Scan(
		&user.ID, &user.Email, &user.Name, &user.APIKey, &user.Active,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Exists checks if a user with the given ID exists
func (r *userRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)", id).Scan(&exists)
	return exists, err
}
