package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/article-writer-api/internal/database"
	"github.com/article-writer-api/internal/models"
)

// articleRepo is the concrete implementation of ArticleRepository
type articleRepo struct {
	db *database.DB
}

// NewArticleRepo creates a new article repository
func NewArticleRepo(db *database.DB) ArticleRepository {
	return &articleRepo{db: db}
}

// Create inserts a new article with its settings snapshot as a versioned
// JSONB envelope. The settings blob is never decomposed into columns.
func (r *articleRepo) Create(ctx context.Context, article *models.Article) error {
	settingsJSON, err := models.MarshalSettings(article.Settings)
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	query := `
		INSERT INTO articles (id, user_id, title, content, keywords, settings, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err = r.db.ExecContext(ctx, query,
		article.ID, article.UserID, article.Title, article.Content, article.Keywords,
		settingsJSON, article.CreatedAt, article.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert article: %w", err)
	}
	return nil
}

// ListByOwner retrieves every article owned by the user, most recent first
func (r *articleRepo) ListByOwner(ctx context.Context, userID string) ([]*models.Article, error) {
	query := `
		SELECT id, user_id, title, content, keywords, settings, created_at, updated_at
		FROM articles WHERE user_id = $1 ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query articles: %w", err)
	}
	defer rows.Close()

	var articles []*models.Article
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, err
		}
		articles = append(articles, article)
	}
	return articles, rows.Err()
}

// GetByID retrieves an article only if the given user owns it. A missing id
// and a foreign id both return ErrNotFound.
func (r *articleRepo) GetByID(ctx context.Context, id, userID string) (*models.Article, error) {
	query := `
		SELECT id, user_id, title, content, keywords, settings, created_at, updated_at
		FROM articles WHERE id = $1 AND user_id = $2
	`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	article, err := scanArticle(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return article, nil
}

// DeleteByID hard-deletes an article owned by the user. Missing or foreign
// ids return ErrNotFound.
func (r *articleRepo) DeleteByID(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM articles WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the total number of articles
func (r *articleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM articles").Scan(&count)
	return count, err
}

// scanner abstracts sql.Row and sql.Rows for scanArticle
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanArticle(s scanner) (*models.Article, error) {
	var article models.Article
	var settingsJSON []byte

	err := s.Scan(
		&article.ID, &article.UserID, &article.Title, &article.Content,
		&article.Keywords, &settingsJSON, &article.CreatedAt, &article.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	settings, err := models.UnmarshalSettings(settingsJSON)
	if err != nil {
		return nil, fmt.Errorf("article %s: %w", article.ID, err)
	}
	article.Settings = settings

	return &article, nil
}
