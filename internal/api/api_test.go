package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/article-writer-api/internal/api"
	"github.com/article-writer-api/internal/mocks"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/service"
	"github.com/article-writer-api/internal/validation"
)

const (
	testToken  = "test-api-key"
	testUserID = "550e8400-e29b-41d4-a716-446655440000"
)

// stubAuthenticator resolves a fixed token to a fixed user
type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	if token == testToken {
		return testUserID, nil
	}
	return "", api.ErrInvalidToken
}

func setupTestRouter() (*gin.Engine, *mocks.MockArticleService) {
	gin.SetMode(gin.TestMode)

	mockArticles := mocks.NewMockArticleService()
	services := &service.Services{Article: mockArticles}

	router := api.NewRouter(services, stubAuthenticator{}, zerolog.Nop())
	return router, mockArticles
}

func authedRequest(method, path string, body []byte) *http.Request {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := setupTestRouter()

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)

	if response["status"] != "healthy" {
		t.Errorf("Expected status 'healthy', got %v", response["status"])
	}
	if response["service"] != "article-writer-api" {
		t.Errorf("Expected service name, got %v", response["service"])
	}
}

func TestUnauthenticatedRequestsRefusedBeforeAnyWork(t *testing.T) {
	router, mockArticles := setupTestRouter()

	requests := []*http.Request{
		httptest.NewRequest("POST", "/v1/articles/generate", bytes.NewReader([]byte(`{}`))),
		httptest.NewRequest("GET", "/v1/articles", nil),
		httptest.NewRequest("GET", "/v1/articles/some-id", nil),
		httptest.NewRequest("DELETE", "/v1/articles/some-id", nil),
	}

	for _, req := range requests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected 401, got %d", req.Method, req.URL.Path, w.Code)
		}
	}

	total := mockArticles.GenerateCalls + mockArticles.ListCalls + mockArticles.GetCalls + mockArticles.DeleteCalls
	if total != 0 {
		t.Errorf("Unauthenticated requests must not reach the service, got %d calls", total)
	}
}

func TestBadTokenRefused(t *testing.T) {
	router, mockArticles := setupTestRouter()

	req := httptest.NewRequest("GET", "/v1/articles", nil)
	req.Header.Set("Authorization", "Bearer wrong-key")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("Expected 401, got %d", w.Code)
	}
	if mockArticles.ListCalls != 0 {
		t.Error("Invalid token must not reach the service")
	}
}

func TestGenerateEndpoint(t *testing.T) {
	router, mockArticles := setupTestRouter()

	settings := models.Settings{
		Title:       "Best Coffee",
		Keywords:    "coffee,brew",
		ArticleType: models.ArticleTypeListicle,
		ArticleSize: models.SizeSmall,
		Language:    "en",
	}
	mockArticles.GenerateResult = &models.Article{
		ID:       "article-1",
		UserID:   testUserID,
		Title:    settings.Title,
		Content:  "generated body",
		Settings: settings,
	}

	body, _ := json.Marshal(settings)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/v1/articles/generate", body))

	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if mockArticles.LastUserID != testUserID {
		t.Errorf("Service called with wrong user: %s", mockArticles.LastUserID)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["id"] != "article-1" {
		t.Errorf("Expected article id in response, got %v", response["id"])
	}
	if response["content"] != "generated body" {
		t.Errorf("Expected content in response, got %v", response["content"])
	}
}

func TestGenerateValidationErrorResponse(t *testing.T) {
	router, mockArticles := setupTestRouter()
	mockArticles.GenerateErr = &service.Error{
		Kind:    service.KindValidation,
		Message: "invalid settings",
		Fields:  []validation.ValidationError{{Field: "title", Message: "title is required"}},
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/v1/articles/generate", []byte(`{}`)))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["kind"] != string(service.KindValidation) {
		t.Errorf("Expected validation kind, got %v", response["kind"])
	}
	if response["fields"] == nil {
		t.Error("Expected field-level detail in response")
	}
}

func TestGenerateServiceUnavailable(t *testing.T) {
	router, mockArticles := setupTestRouter()
	mockArticles.GenerateErr = &service.Error{
		Kind:    service.KindGenerationUnavailable,
		Message: "generation service is temporarily unavailable, try again later",
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("POST", "/v1/articles/generate", []byte(`{"title":"x"}`)))

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected 503, got %d", w.Code)
	}
}

func TestListEndpointPassesQueryParams(t *testing.T) {
	router, mockArticles := setupTestRouter()
	mockArticles.ListResult = []models.ArticleSummary{
		{ID: "a1", Title: "Best Coffee", CreatedAt: time.Now()},
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/v1/articles?search=coffee&type=Listicle&sort=title&order=asc", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if mockArticles.LastParams.Search != "coffee" {
		t.Errorf("Search param not passed: %+v", mockArticles.LastParams)
	}
	if mockArticles.LastParams.FilterType != "Listicle" {
		t.Errorf("Type param not passed: %+v", mockArticles.LastParams)
	}
	if mockArticles.LastParams.SortBy != query.SortByTitle {
		t.Errorf("Sort param not passed: %+v", mockArticles.LastParams)
	}
	if mockArticles.LastParams.Descending {
		t.Error("order=asc should not be descending")
	}

	var response map[string]interface{}
	json.Unmarshal(w.Body.Bytes(), &response)
	if response["count"].(float64) != 1 {
		t.Errorf("Expected count 1, got %v", response["count"])
	}
}

func TestGetEndpointNotFound(t *testing.T) {
	router, mockArticles := setupTestRouter()
	mockArticles.GetErr = &service.Error{Kind: service.KindNotFound, Message: "article not found"}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("GET", "/v1/articles/missing-id", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", w.Code)
	}
}

func TestDeleteEndpoint(t *testing.T) {
	router, mockArticles := setupTestRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authedRequest("DELETE", "/v1/articles/article-1", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected 200, got %d", w.Code)
	}
	if mockArticles.DeleteCalls != 1 {
		t.Errorf("Expected one delete call, got %d", mockArticles.DeleteCalls)
	}
}
