package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/article-writer-api/internal/models"
	"github.com/article-writer-api/internal/query"
	"github.com/article-writer-api/internal/service"
)

// ArticleHandler handles article endpoints
type ArticleHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(services *service.Services, log zerolog.Logger) *ArticleHandler {
	return &ArticleHandler{
		services: services,
		log:      log.With().Str("handler", "article").Logger(),
	}
}

// Generate handles POST /v1/articles/generate
func (h *ArticleHandler) Generate(c *gin.Context) {
	var settings models.Settings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.services.Article.Generate(c.Request.Context(), currentUserID(c), settings)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       article.ID,
		"title":    article.Title,
		"content":  article.Content,
		"settings": article.Settings,
	})
}

// List handles GET /v1/articles with optional search/type/sort/order params
func (h *ArticleHandler) List(c *gin.Context) {
	params := query.Params{
		Search:     c.Query("search"),
		FilterType: c.DefaultQuery("type", query.FilterTypeAll),
		SortBy:     query.SortField(c.DefaultQuery("sort", string(query.SortByCreatedAt))),
		Descending: c.DefaultQuery("order", "desc") == "desc",
	}

	summaries, err := h.services.Article.List(c.Request.Context(), currentUserID(c), params)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"articles": summaries,
		"count":    len(summaries),
	})
}

// Get handles GET /v1/articles/:id
func (h *ArticleHandler) Get(c *gin.Context) {
	article, err := h.services.Article.Get(c.Request.Context(), c.Param("id"), currentUserID(c))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, article)
}

// Delete handles DELETE /v1/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	if err := h.services.Article.Delete(c.Request.Context(), c.Param("id"), currentUserID(c)); err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// renderError maps service error kinds to HTTP responses. Internal detail
// stays in the logs; the response carries only the user-safe message.
func (h *ArticleHandler) renderError(c *gin.Context, err error) {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		h.log.Error().Err(err).Msg("Unclassified error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	status := http.StatusInternalServerError
	switch svcErr.Kind {
	case service.KindValidation:
		status = http.StatusBadRequest
	case service.KindUnauthorized:
		status = http.StatusUnauthorized
	case service.KindNotFound:
		status = http.StatusNotFound
	case service.KindGenerationInvalid:
		status = http.StatusUnprocessableEntity
	case service.KindGenerationUnavailable:
		status = http.StatusServiceUnavailable
	}

	if status >= 500 {
		h.log.Error().Err(svcErr).Str("kind", string(svcErr.Kind)).Msg("Request failed")
	}

	body := gin.H{
		"error": svcErr.Message,
		"kind":  svcErr.Kind,
	}
	if len(svcErr.Fields) > 0 {
		body["fields"] = svcErr.Fields
	}
	c.JSON(status, body)
}
