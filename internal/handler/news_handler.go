package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/service"
	"github.com/antoniolaudieri/rimborsami/internal/validator"
)

// NewsHandler handles the news and author endpoints.
type NewsHandler struct {
	content   service.ContentServiceInterface
	validator *validator.Validator
}

// NewNewsHandler creates a new NewsHandler.
func NewNewsHandler(content service.ContentServiceInterface, v *validator.Validator) *NewsHandler {
	return &NewsHandler{content: content, validator: v}
}

// ListNews handles GET /api/v1/news
func (h *NewsHandler) ListNews(c *gin.Context) {
	var q validator.NewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters"})
		return
	}
	if err := h.validator.ValidateNewsQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid query parameters",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	filter := domain.NewsFilter{Category: q.Category, Limit: q.Limit, Offset: q.Offset}.Normalize()
	articles := h.content.ListNews(c.Request.Context(), filter)

	c.JSON(http.StatusOK, gin.H{
		"data":   articles,
		"limit":  filter.Limit,
		"offset": filter.Offset,
	})
}

// GetArticle handles GET /api/v1/news/:slug
func (h *NewsHandler) GetArticle(c *gin.Context) {
	slug, ok := h.slugParam(c)
	if !ok {
		return
	}

	article := h.content.GetArticle(c.Request.Context(), slug)
	if article == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}

	c.JSON(http.StatusOK, article)
}

// RelatedArticles handles GET /api/v1/news/:slug/related
func (h *NewsHandler) RelatedArticles(c *gin.Context) {
	slug, ok := h.slugParam(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.content.RelatedArticles(c.Request.Context(), slug)})
}

// ListAuthors handles GET /api/v1/authors
func (h *NewsHandler) ListAuthors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.content.ListAuthors(c.Request.Context())})
}

// GetAuthor handles GET /api/v1/authors/:slug
func (h *NewsHandler) GetAuthor(c *gin.Context) {
	slug, ok := h.slugParam(c)
	if !ok {
		return
	}

	author := h.content.GetAuthor(c.Request.Context(), slug)
	if author == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "author not found"})
		return
	}

	c.JSON(http.StatusOK, author)
}

func (h *NewsHandler) slugParam(c *gin.Context) (string, bool) {
	slug := c.Param("slug")
	if err := h.validator.ValidateSlug(slug); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slug"})
		return "", false
	}
	return slug, true
}
