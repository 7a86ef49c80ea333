package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/http/middleware"
	"github.com/Rom943/ecommerce-template/internal/service"
	"github.com/Rom943/ecommerce-template/internal/tenant"
)

// homeSlug is the page rendered for the storefront root.
const homeSlug = "home"

// StorefrontHandler serves the rendered storefront pages.
type StorefrontHandler struct {
	Pages  *service.PageService
	Tenant *tenant.Resolver
}

// NewStorefrontHandler creates the handler set.
func NewStorefrontHandler(pages *service.PageService, resolver *tenant.Resolver) *StorefrontHandler {
	return &StorefrontHandler{Pages: pages, Tenant: resolver}
}

// Home renders the tenant's home page.
func (h *StorefrontHandler) Home(c *gin.Context) {
	h.renderPage(c, homeSlug)
}

// Page renders an arbitrary page slug for the resolved tenant.
func (h *StorefrontHandler) Page(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		slug = homeSlug
	}
	h.renderPage(c, slug)
}

// Healthz reports liveness.
func (h *StorefrontHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *StorefrontHandler) renderPage(c *gin.Context, slug string) {
	tc, ok := middleware.GetTenantContext(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Unknown storefront."})
		return
	}

	html, err := h.Pages.Render(c.Request.Context(), tc, slug, viewportFrom(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Page not found."})
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// viewportFrom reads the client-reported viewport width. A missing or
// unparsable header yields width zero, which renders the desktop variant.
func viewportFrom(c *gin.Context) composition.Viewport {
	raw := c.GetHeader("X-Viewport-Width")
	if raw == "" {
		return composition.Viewport{}
	}
	width, err := strconv.Atoi(raw)
	if err != nil || width < 0 {
		return composition.Viewport{}
	}
	return composition.Viewport{Width: width}
}
