package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/antoniolaudieri/rimborsami/internal/domain"
	"github.com/antoniolaudieri/rimborsami/internal/middleware"
	"github.com/antoniolaudieri/rimborsami/internal/service"
	"github.com/antoniolaudieri/rimborsami/internal/validator"
)

// defaultRedirectSource is used when /go/:partner is hit without a source.
const defaultRedirectSource = "comparator"

// AffiliateHandler records outbound partner clicks.
type AffiliateHandler struct {
	tracker   service.ClickTracker
	partners  service.PartnerDirectory
	validator *validator.Validator
}

// NewAffiliateHandler creates a new AffiliateHandler.
func NewAffiliateHandler(tracker service.ClickTracker, partners service.PartnerDirectory, v *validator.Validator) *AffiliateHandler {
	return &AffiliateHandler{tracker: tracker, partners: partners, validator: v}
}

// ClickRequest is the body of POST /api/v1/affiliate/clicks.
type ClickRequest struct {
	Partner  string `json:"partner"`
	Source   string `json:"source"`
	Category string `json:"category"`
}

// TrackClick handles POST /api/v1/affiliate/clicks. It answers 202 as
// soon as the click is queued or dropped.
func (h *AffiliateHandler) TrackClick(c *gin.Context) {
	var req ClickRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	click := h.newClick(c, req.Partner, req.Source, req.Category)
	if err := h.validator.ValidateAffiliateClick(&click); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid click",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	h.tracker.Track(click)
	c.JSON(http.StatusAccepted, gin.H{"status": "accepted"})
}

// Redirect handles GET /go/:partner. The click is tracked and the browser
// is sent to the partner.
func (h *AffiliateHandler) Redirect(c *gin.Context) {
	source := c.DefaultQuery("source", defaultRedirectSource)
	click := h.newClick(c, c.Param("partner"), source, c.Query("category"))
	if err := h.validator.ValidateAffiliateClick(&click); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "invalid click",
			"fields": validator.FieldErrors(err),
		})
		return
	}

	link, ok := h.partners.Link(click.Partner)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown partner"})
		return
	}

	h.tracker.Track(click)
	c.Redirect(http.StatusFound, link)
}

func (h *AffiliateHandler) newClick(c *gin.Context, partner, source, cat string) domain.AffiliateClick {
	return domain.AffiliateClick{
		Partner:   strings.ToLower(strings.TrimSpace(partner)),
		Source:    strings.TrimSpace(source),
		Category:  strings.TrimSpace(cat),
		UserID:    middleware.GetUserID(c),
		RequestID: middleware.GetRequestID(c),
	}
}
