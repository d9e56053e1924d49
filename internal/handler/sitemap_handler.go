package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/antoniolaudieri/rimborsami/internal/service"
)

// SitemapHandler serves the XML sitemaps.
type SitemapHandler struct {
	sitemaps service.SitemapServiceInterface
}

// NewSitemapHandler creates a new SitemapHandler.
func NewSitemapHandler(sitemaps service.SitemapServiceInterface) *SitemapHandler {
	return &SitemapHandler{sitemaps: sitemaps}
}

// News handles GET /sitemap-news.xml
func (h *SitemapHandler) News(c *gin.Context) {
	h.serve(c, service.SitemapNews)
}

// Opportunities handles GET /sitemap-opportunities.xml
func (h *SitemapHandler) Opportunities(c *gin.Context) {
	h.serve(c, service.SitemapOpportunities)
}

// Options answers preflight requests with no body.
func (h *SitemapHandler) Options(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// serve always answers 200: generation failures are replaced by the
// fallback document inside the service.
func (h *SitemapHandler) serve(c *gin.Context, kind service.SitemapKind) {
	body, _ := h.sitemaps.Generate(c.Request.Context(), kind)

	c.Header("Cache-Control", SitemapCacheControl)
	c.Data(http.StatusOK, SitemapContentType, body)
}
