package mocks

import (
	"context"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/repository"
)

// MockArticleRepository is a mock implementation of ArticleRepository
type MockArticleRepository struct {
	Articles    map[string]*models.Article
	CreateError error
	ListError   error
	CreateCalls int
	ListCalls   int
	GetCalls    int
	DeleteCalls int
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		Articles: make(map[string]*models.Article),
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *models.Article) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	copied := *article
	m.Articles[article.ID] = &copied
	return nil
}

func (m *MockArticleRepository) ListByOwner(ctx context.Context, userID string) ([]*models.Article, error) {
	m.ListCalls++
	if m.ListError != nil {
		return nil, m.ListError
	}
	var out []*models.Article
	for _, a := range m.Articles {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *MockArticleRepository) GetByID(ctx context.Context, id, userID string) (*models.Article, error) {
	m.GetCalls++
	article, exists := m.Articles[id]
	if !exists || article.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return article, nil
}

func (m *MockArticleRepository) DeleteByID(ctx context.Context, id, userID string) error {
	m.DeleteCalls++
	article, exists := m.Articles[id]
	if !exists || article.UserID != userID {
		return repository.ErrNotFound
	}
	delete(m.Articles, id)
	return nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	return len(m.Articles), nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	Users       map[string]*models.User
	ExistsCalls int
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users: make(map[string]*models.User),
	}
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, exists := m.Users[id]
	if !exists {
		return nil, repository.ErrNotFound
	}
	return user, nil
}

func (m *MockUserRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.User, error) {
	for _, user := range m.Users {
		if user.APIKey == apiKey && user.Active {
			return user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *MockUserRepository) Exists(ctx context.Context, id string) (bool, error) {
	m.ExistsCalls++
	_, exists := m.Users[id]
	return exists, nil
}
