package repository

import (
	"context"
	"errors"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// ErrNotFound is returned when a record does not exist or is owned by a
// different user. The two cases are deliberately indistinguishable.
var ErrNotFound = errors.New("record not found")

// ArticleRepository defines the interface for article data operations.
// Every read and delete is scoped to the owning user.
type ArticleRepository interface {
	Create(ctx context.Context, article *models.Article) error
	ListByOwner(ctx context.Context, userID string) ([]*models.Article, error)
	GetByID(ctx context.Context, id, userID string) (*models.Article, error)
	DeleteByID(ctx context.Context, id, userID string) error
	Count(ctx context.Context) (int, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Article ArticleRepository
	User    UserRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Article: NewArticleRepo(db),
		User:    NewUserRepo(db),
	}
}
