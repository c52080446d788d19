package service

import (
	"context"

	"github.com/article-writer-api/internal/generation"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/repository"
	"github.com/rs/zerolog"
)

// ArticleService defines the article generation and lifecycle operations.
// Every operation is scoped to the calling user.
type ArticleService interface {
	Generate(ctx context.Context, userID string, settings models.Settings) (*models.Article, error)
	List(ctx context.Context, userID string, params query.Params) ([]models.ArticleSummary, error)
	Get(ctx context.Context, id, userID string) (*models.Article, error)
	Delete(ctx context.Context, id, userID string) error
}

// Services holds all service interfaces
type Services struct {
	Article ArticleService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, generator generation.TextGenerator, log zerolog.Logger) *Services {
	return &Services{
		Article: newArticleService(repos, generator, log),
	}
}
