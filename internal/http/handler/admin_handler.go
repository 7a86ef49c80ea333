package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Rom943/ecommerce-template/internal/config"
	"github.com/Rom943/ecommerce-template/internal/http/middleware"
	"github.com/Rom943/ecommerce-template/internal/service"
	"github.com/Rom943/ecommerce-template/internal/session"
	"github.com/Rom943/ecommerce-template/internal/throttle"
)

// AdminHandler serves the back-office API: login behind the throttle, session
// verification, and catalog plus media management.
type AdminHandler struct {
	Auth     *service.AdminAuthService
	Catalog  *service.CatalogService
	Media    *service.MediaService
	Sessions *session.Manager

	codec        *throttle.Codec
	redisStore   *throttle.RedisStore
	throttleMode string
	secure       bool
}

// NewAdminHandler creates the handler set. redisClient may be nil when the
// throttle runs on cookies only.
func NewAdminHandler(
	cfg config.Config,
	auth *service.AdminAuthService,
	catalog *service.CatalogService,
	media *service.MediaService,
	sessions *session.Manager,
	codec *throttle.Codec,
	redisClient redis.UniversalClient,
) *AdminHandler {
	h := &AdminHandler{
		Auth:         auth,
		Catalog:      catalog,
		Media:        media,
		Sessions:     sessions,
		codec:        codec,
		throttleMode: cfg.ThrottleStore,
		secure:       !cfg.IsDevelopment(),
	}
	if redisClient != nil {
		h.redisStore = throttle.NewRedisStore(redisClient)
	}
	return h
}

// throttleStore selects the configured persistence for throttle records. The
// cookie store is the default and needs no server-side state.
func (h *AdminHandler) throttleStore(c *gin.Context) throttle.Store {
	if h.throttleMode == "redis" && h.redisStore != nil {
		return h.redisStore
	}
	return throttle.NewCookieStore(c, h.codec, h.secure)
}

// Login authenticates an admin and sets the session cookie.
func (h *AdminHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email and password are required"})
		return
	}

	store := h.throttleStore(c)
	admin, token, err := h.Auth.Login(c.Request.Context(), store, req.Email, req.Password)
	if err != nil {
		var authErr *service.AuthError
		if errors.As(err, &authErr) {
			body := gin.H{"message": authErr.Message}
			if authErr.LockedUntil > 0 {
				body["lockedUntil"] = authErr.LockedUntil
			}
			c.JSON(authErr.Status, body)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}

	http.SetCookie(c.Writer, h.Sessions.Cookie(token))
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"admin": gin.H{
			"id":        strconv.FormatInt(admin.ID, 10),
			"email":     admin.Email,
			"firstName": admin.FirstName,
			"lastName":  admin.LastName,
		},
	})
}

// Logout clears the session cookie.
func (h *AdminHandler) Logout(c *gin.Context) {
	http.SetCookie(c.Writer, h.Sessions.ClearCookie())
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Verify reports whether the current session is valid.
func (h *AdminHandler) Verify(c *gin.Context) {
	claims, ok := middleware.GetSessionClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"admin": gin.H{
			"id":        strconv.FormatInt(claims.ID, 10),
			"email":     claims.Email,
			"firstName": claims.FirstName,
			"lastName":  claims.LastName,
			"role":      claims.Role,
		},
	})
}

// CreateProduct handles POST /api/admin/products.
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	product, err := h.Catalog.CreateProduct(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "product": product})
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	product, err := h.Catalog.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "product": product})
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteProduct(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListProducts handles GET /api/admin/products with an optional categoryId
// filter.
func (h *AdminHandler) ListProducts(c *gin.Context) {
	var categoryID *int64
	if raw := c.Query("categoryId"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid categoryId"})
			return
		}
		categoryID = &id
	}
	products, err := h.Catalog.ListProducts(c.Request.Context(), categoryID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list products"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// GetProduct handles GET /api/admin/products/:id.
func (h *AdminHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	product, err := h.Catalog.GetProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": product})
}

// CreateCategory handles POST /api/admin/categories.
func (h *AdminHandler) CreateCategory(c *gin.Context) {
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	category, err := h.Catalog.CreateCategory(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "category": category})
}

// UpdateCategory handles PUT /api/admin/categories/:id.
func (h *AdminHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var input service.CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	category, err := h.Catalog.UpdateCategory(c.Request.Context(), id, input)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "category": category})
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *AdminHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Catalog.DeleteCategory(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete category"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListCategories handles GET /api/admin/categories.
func (h *AdminHandler) ListCategories(c *gin.Context) {
	categories, err := h.Catalog.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list categories"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

// RecordMedia handles POST /api/admin/media.
func (h *AdminHandler) RecordMedia(c *gin.Context) {
	var input service.MediaInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	media, err := h.Media.Record(c.Request.Context(), input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to record media"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "media": media})
}

// ListMedia handles GET /api/admin/media with an optional folder filter.
func (h *AdminHandler) ListMedia(c *gin.Context) {
	items, err := h.Media.List(c.Request.Context(), c.Query("folder"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to list media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"media": items})
}

// DeleteMedia handles DELETE /api/admin/media/:id.
func (h *AdminHandler) DeleteMedia(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.Media.Delete(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid id"})
		return 0, false
	}
	return id, true
}
