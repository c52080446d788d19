package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/article-writer-api/internal/generation"
	"github.com/article-writer-api/internal/mocks"
	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/repository"
	"github.com/article-writer-api/internal/service"
)

const testUserID = "550e8400-e29b-41d4-a716-446655440000"

func newTestService() (*service.Services, *mocks.MockArticleRepository, *mocks.MockUserRepository, *mocks.MockGenerator) {
	articleRepo := mocks.NewMockArticleRepository()
	userRepo := mocks.NewMockUserRepository()
	userRepo.Users[testUserID] = &models.User{ID: testUserID, Active: true}
	generator := mocks.NewMockGenerator("## Generated Article\n\nBody text.")

	repos := &repository.Repositories{Article: articleRepo, User: userRepo}
	services := service.NewServices(repos, generator, zerolog.Nop())
	return services, articleRepo, userRepo, generator
}

func testSettings() models.Settings {
	return models.Settings{
		Title:       "Best Coffee",
		Keywords:    "coffee,brew",
		ArticleType: models.ArticleTypeListicle,
		ArticleSize: models.SizeSmall,
		Tone:        models.ToneFriendly,
		PointOfView: models.POVNone,
		Readability: models.ReadabilityNone,
		AICleaning:  models.CleaningNone,
		Structure:   models.StructureFlags{Lists: true, Conclusion: true},
		Language:    "en",
	}
}

func kindOf(t *testing.T, err error) service.ErrorKind {
	t.Helper()
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		t.Fatalf("Expected *service.Error, got %T: %v", err, err)
	}
	return svcErr.Kind
}

func TestGenerateRoundTrip(t *testing.T) {
	services, _, _, generator := newTestService()
	ctx := context.Background()
	settings := testSettings()

	created, err := services.Article.Generate(ctx, testUserID, settings)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if created.Content != generator.Output {
		t.Error("Created article should carry the generated content")
	}
	if generator.LastTokenBudget != 4000 {
		t.Errorf("Small size should invoke with budget 4000, got %d", generator.LastTokenBudget)
	}

	fetched, err := services.Article.Get(ctx, created.ID, testUserID)
	if err != nil {
		t.Fatalf("Get after create failed: %v", err)
	}
	if fetched.Title != settings.Title {
		t.Errorf("Title not round-tripped: got %q", fetched.Title)
	}
	if fetched.Content != created.Content {
		t.Error("Content not round-tripped")
	}
	if fetched.Settings != settings {
		t.Errorf("Settings not round-tripped: got %+v", fetched.Settings)
	}
}

func TestGenerateValidationBeforeAnyWork(t *testing.T) {
	services, articleRepo, _, generator := newTestService()

	settings := testSettings()
	settings.Title = ""

	_, err := services.Article.Generate(context.Background(), testUserID, settings)
	if kindOf(t, err) != service.KindValidation {
		t.Errorf("Expected validation error, got %v", err)
	}

	var svcErr *service.Error
	errors.As(err, &svcErr)
	if len(svcErr.Fields) == 0 {
		t.Error("Validation error should carry field-level detail")
	}
	if generator.Calls != 0 {
		t.Error("Validation failure must not reach the generator")
	}
	if articleRepo.CreateCalls != 0 {
		t.Error("Validation failure must not reach the store")
	}
}

func TestGenerateUnknownOwner(t *testing.T) {
	services, articleRepo, _, generator := newTestService()

	_, err := services.Article.Generate(context.Background(), "missing-user", testSettings())
	if kindOf(t, err) != service.KindUnauthorized {
		t.Errorf("Expected unauthorized, got %v", err)
	}
	if generator.Calls != 0 || articleRepo.CreateCalls != 0 {
		t.Error("Unknown owner must not trigger generation or storage")
	}
}

func TestGenerateFailureClassification(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want service.ErrorKind
	}{
		{"quota", generation.ErrQuotaExceeded, service.KindGenerationUnavailable},
		{"credentials", generation.ErrUnauthorized, service.KindGenerationUnavailable},
		{"rejected", generation.ErrInvalidRequest, service.KindGenerationInvalid},
		{"empty", generation.ErrEmptyOutput, service.KindInternal},
		{"unknown", errors.New("connection reset"), service.KindInternal},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			services, articleRepo, _, generator := newTestService()
			generator.Err = tc.err

			_, err := services.Article.Generate(context.Background(), testUserID, testSettings())
			if kindOf(t, err) != tc.want {
				t.Errorf("Expected kind %s, got %v", tc.want, err)
			}
			if articleRepo.CreateCalls != 0 {
				t.Error("Failed generation must never be persisted")
			}
		})
	}
}

func TestGeneratePersistenceFailureDiscardsContent(t *testing.T) {
	services, articleRepo, _, _ := newTestService()
	articleRepo.CreateError = errors.New("connection refused")

	article, err := services.Article.Generate(context.Background(), testUserID, testSettings())
	if kindOf(t, err) != service.KindPersistenceFailure {
		t.Errorf("Expected persistence failure, got %v", err)
	}
	if article != nil {
		t.Error("Generated-but-unpersisted content must not be returned as success")
	}
	if len(articleRepo.Articles) != 0 {
		t.Error("No article should remain stored")
	}
}

func TestDeleteTwice(t *testing.T) {
	services, _, _, _ := newTestService()
	ctx := context.Background()

	created, err := services.Article.Generate(ctx, testUserID, testSettings())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if err := services.Article.Delete(ctx, created.ID, testUserID); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}

	err = services.Article.Delete(ctx, created.ID, testUserID)
	if kindOf(t, err) != service.KindNotFound {
		t.Errorf("Second delete should be not-found, got %v", err)
	}
}

func TestGetForeignArticleIsNotFound(t *testing.T) {
	services, articleRepo, userRepo, _ := newTestService()
	ctx := context.Background()

	otherUser := "660e8400-e29b-41d4-a716-446655440001"
	userRepo.Users[otherUser] = &models.User{ID: otherUser, Active: true}

	created, err := services.Article.Generate(ctx, testUserID, testSettings())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	_, err = services.Article.Get(ctx, created.ID, otherUser)
	if kindOf(t, err) != service.KindNotFound {
		t.Errorf("Foreign article must be indistinguishable from missing, got %v", err)
	}

	err = services.Article.Delete(ctx, created.ID, otherUser)
	if kindOf(t, err) != service.KindNotFound {
		t.Errorf("Foreign delete must be not-found, got %v", err)
	}
	if len(articleRepo.Articles) != 1 {
		t.Error("Foreign delete must not remove the article")
	}
}

func TestListFiltersAndSummarizes(t *testing.T) {
	services, _, _, generator := newTestService()
	ctx := context.Background()

	first := testSettings()
	if _, err := services.Article.Generate(ctx, testUserID, first); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	generator.Output = "different content"
	second := testSettings()
	second.Title = "Tea Handbook"
	second.Keywords = "tea,leaves"
	if _, err := services.Article.Generate(ctx, testUserID, second); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	summaries, err := services.Article.List(ctx, testUserID, query.Params{Search: "coffee"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("Expected 1 match, got %d", len(summaries))
	}
	if summaries[0].Title != "Best Coffee" {
		t.Errorf("Wrong article matched: %s", summaries[0].Title)
	}
	if summaries[0].ArticleType != models.ArticleTypeListicle {
		t.Error("Summary should expose the stored article type")
	}
}
