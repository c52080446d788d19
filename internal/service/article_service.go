package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/article-writer-api/internal/generation"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/prompt"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/validation"
)

// articleService is the concrete implementation of ArticleService
type articleService struct {
	repos     *repository.Repositories
	generator generation.TextGenerator
	log       zerolog.Logger
}

func newArticleService(repos *repository.Repositories, generator generation.TextGenerator, log zerolog.Logger) *articleService {
	return &articleService{
		repos:     repos,
		generator: generator,
		log:       log.With().Str("service", "article").Logger(),
	}
}

// Generate validates settings, compiles them into an instruction, invokes
// the text-generation service and persists the result. Validation failures
// never reach generation; generation failures never reach storage. An
// article is only reported created when both stages completed.
func (s *articleService) Generate(ctx context.Context, userID string, settings models.Settings) (*models.Article, error) {
	validation.Normalize(&settings)
	if fieldErrs := validation.ValidateSettings(&settings); len(fieldErrs) > 0 {
		return nil, validationError(fieldErrs)
	}

	exists, err := s.repos.User.Exists(ctx, userID)
	if err != nil {
		return nil, newError(KindPersistenceFailure, "could not verify account", err)
	}
	if !exists {
		return nil, newError(KindUnauthorized, "unknown account", nil)
	}

	instruction, tokenBudget, err := prompt.Compile(settings)
	if err != nil {
		// Only reachable when validation was bypassed
		return nil, newError(KindValidation, "invalid settings", err)
	}

	start := time.Now()
	content, err := s.generator.Generate(ctx, instruction, tokenBudget)
	if err != nil {
		return nil, classifyGenerationError(err)
	}

	now := time.Now().UTC()
	article := &models.Article{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     settings.Title,
		Content:   content,
		Keywords:  settings.Keywords,
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repos.Article.Create(ctx, article); err != nil {
		// Generated content is discarded, not surfaced; the operation as a
		// whole failed. Log the loss so it stays observable.
		s.log.Error().Err(err).
			Str("user_id", userID).
			Int("content_chars", len(content)).
			Msg("Generated article could not be persisted; content discarded")
		return nil, newError(KindPersistenceFailure, "article could not be saved", err)
	}

	s.log.Info().
		Str("article_id", article.ID).
		Str("user_id", userID).
		Str("size", string(settings.ArticleSize)).
		Int("token_budget", tokenBudget).
		Dur("generation_time", time.Since(start)).
		Msg("Article generated")

	return article, nil
}

// List returns filtered, sorted summaries of the user's articles. Filtering
// and sorting happen on the fetched snapshot, not in the store.
func (s *articleService) List(ctx context.Context, userID string, params query.Params) ([]models.ArticleSummary, error) {
	articles, err := s.repos.Article.ListByOwner(ctx, userID)
	if err != nil {
		return nil, newError(KindPersistenceFailure, "articles could not be loaded", err)
	}

	filtered := query.Apply(articles, params)
	summaries := make([]models.ArticleSummary, 0, len(filtered))
	for _, a := range filtered {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// Get returns the full article if the user owns it
func (s *articleService) Get(ctx context.Context, id, userID string) (*models.Article, error) {
	article, err := s.repos.Article.GetByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, newError(KindNotFound, "article not found", err)
	}
	if err != nil {
		return nil, newError(KindPersistenceFailure, "article could not be loaded", err)
	}
	return article, nil
}

// Delete hard-deletes the article if the user owns it
func (s *articleService) Delete(ctx context.Context, id, userID string) error {
	err := s.repos.Article.DeleteByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return newError(KindNotFound, "article not found", err)
	}
	if err != nil {
		return newError(KindPersistenceFailure, "article could not be deleted", err)
	}

	s.log.Info().Str("article_id", id).Str("user_id", userID).Msg("Article deleted")
	return nil
}

// classifyGenerationError maps invoker failures to user-safe service errors.
// Service payloads never reach the response message.
func classifyGenerationError(err error) *Error {
	switch {
	case errors.Is(err, generation.ErrUnauthorized):
		return newError(KindGenerationUnavailable, "generation service is temporarily unavailable", err)
	case errors.Is(err, generation.ErrQuotaExceeded):
		return newError(KindGenerationUnavailable, "generation service is temporarily unavailable, try again later", err)
	case errors.Is(err, generation.ErrInvalidRequest):
		return newError(KindGenerationInvalid, "generation failed, please try again", err)
	case errors.Is(err, generation.ErrEmptyOutput):
		return newError(KindInternal, "generation produced no content", err)
	default:
		return newError(KindInternal, "generation failed", err)
	}
}
