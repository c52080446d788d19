package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/article-writer-api/internal/repository"
)

// userIDKey is the gin context key holding the authenticated user ID
const userIDKey = "user_id"

// Authenticator resolves a bearer token to a user ID. The concrete session
// mechanism is a collaborator; the API only consumes the resolved identity.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (string, error)
}

// ErrInvalidToken is returned when a token does not resolve to an active user
var ErrInvalidToken = errors.New("invalid or expired token")

// apiKeyAuthenticator authenticates bearer tokens against user API keys
type apiKeyAuthenticator struct {
	users repository.UserRepository
}

// NewAPIKeyAuthenticator creates an Authenticator backed by the user store
func NewAPIKeyAuthenticator(users repository.UserRepository) Authenticator {
	return &apiKeyAuthenticator{users: users}
}

func (a *apiKeyAuthenticator) Authenticate(ctx context.Context, token string) (string, error) {
	user, err := a.users.GetByAPIKey(ctx, token)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidToken
	}
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// authMiddleware refuses unauthenticated requests before any handler runs.
// No generation or storage work happens for an anonymous caller.
func authMiddleware(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		userID, err := auth.Authenticate(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// currentUserID returns the authenticated user ID set by authMiddleware
func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
