package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/antoniolaudieri/rimborsami/internal/category"
	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/service"
	"github.com/antoniolaudieri/rimborsami/internal/validator"
)

// OpportunityHandler handles opportunity, category and urgency endpoints.
type OpportunityHandler struct {
	content   service.ContentServiceInterface
	validator *validator.Validator
	now       func() time.Time
}

// NewOpportunityHandler creates a new OpportunityHandler.
func NewOpportunityHandler(content service.ContentServiceInterface, v *validator.Validator) *OpportunityHandler {
	return &OpportunityHandler{content: content, validator: v, now: time.Now}
}

// ListOpportunities handles GET /api/v1/opportunities
func (h *OpportunityHandler) ListOpportunities(c *gin.Context) {
	cat := c.Query("category")
	if err := h.validator.ValidateCategory(cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": h.content.ListOpportunities(c.Request.Context(), cat)})
}

// ListCategories handles GET /api/v1/categories
func (h *OpportunityHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": category.All()})
}

// GetCategory handles GET /api/v1/categories/:code. Unknown codes
// resolve to the "other" entry.
func (h *OpportunityHandler) GetCategory(c *gin.Context) {
	c.JSON(http.StatusOK, category.Lookup(category.Normalize(c.Param("code"))))
}

// ClassifyUrgency handles GET /api/v1/urgency?deadline=RFC3339
func (h *OpportunityHandler) ClassifyUrgency(c *gin.Context) {
	raw := c.Query("deadline")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline is required"})
		return
	}
	deadline, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "deadline must be RFC3339"})
		return
	}

	c.JSON(http.StatusOK, domain.ClassifyDeadline(deadline, h.now()))
}
