package mocks

import (
	"context"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/service"
)

// MockArticleService is a mock implementation of service.ArticleService
type MockArticleService struct {
	GenerateResult *models.Article
	GenerateErr    error
	ListResult     []models.ArticleSummary
	ListErr        error
	GetResult      *models.Article
	GetErr         error
	DeleteErr      error

	GenerateCalls int
	ListCalls     int
	GetCalls      int
	DeleteCalls   int

	LastUserID   string
	LastSettings models.Settings
	LastParams   query.Params
}

func NewMockArticleService() *MockArticleService {
	return &MockArticleService{}
}

func (m *MockArticleService) Generate(ctx context.Context, userID string, settings models.Settings) (*models.Article, error) {
	m.GenerateCalls++
	m.LastUserID = userID
	m.LastSettings = settings
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	return m.GenerateResult, nil
}

func (m *MockArticleService) List(ctx context.Context, userID string, params query.Params) ([]models.ArticleSummary, error) {
	m.ListCalls++
	m.LastUserID = userID
	m.LastParams = params
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListResult, nil
}

func (m *MockArticleService) Get(ctx context.Context, id, userID string) (*models.Article, error) {
	m.GetCalls++
	m.LastUserID = userID
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	return m.GetResult, nil
}

func (m *MockArticleService) Delete(ctx context.Context, id, userID string) error {
	m.DeleteCalls++
	m.LastUserID = userID
	return m.DeleteErr
}

var _ service.ArticleService = (*MockArticleService)(nil)
