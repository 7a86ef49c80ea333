package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Rom943/ecommerce-template/internal/config"
	"github.com/Rom943/ecommerce-template/internal/http/handler"
	"github.com/Rom943/ecommerce-template/internal/http/middleware"
	"github.com/Rom943/ecommerce-template/internal/session"
	"github.com/Rom943/ecommerce-template/internal/tenant"
)

// NewRouter wires Gin routes and middleware.
func NewRouter(
	cfg config.Config,
	storefront *handler.StorefrontHandler,
	admin *handler.AdminHandler,
	sessions *session.Manager,
	resolver *tenant.Resolver,
	rateLimiter *middleware.RateLimiter,
) *gin.Engine {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(nil))
	if rateLimiter != nil {
		r.Use(rateLimiter.Handler())
	}
	r.Use(middleware.CORS(cfg))
	r.Use(otelgin.Middleware(cfg.ServiceName))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	r.GET("/healthz", storefront.Healthz)

	// Tenant resolution applies to storefront pages only; the admin API and
	// health probe work without a resolvable Host.
	pages := r.Group("", middleware.Tenant(resolver))
	{
		pages.GET("/", storefront.Home)
		pages.GET("/store/:slug", storefront.Page)
	}

	api := r.Group("/api/admin")
	{
		api.POST("/login", admin.Login)
		api.POST("/logout", admin.Logout)

		guarded := api.Group("", middleware.AdminAuth(sessions))
		{
			guarded.GET("/verify", admin.Verify)

			products := guarded.Group("/products")
			{
				products.GET("", admin.ListProducts)
				products.POST("", admin.CreateProduct)
				products.GET("/:id", admin.GetProduct)
				products.PUT("/:id", admin.UpdateProduct)
				products.DELETE("/:id", admin.DeleteProduct)
			}

			categories := guarded.Group("/categories")
			{
				categories.GET("", admin.ListCategories)
				categories.POST("", admin.CreateCategory)
				categories.PUT("/:id", admin.UpdateCategory)
				categories.DELETE("/:id", admin.DeleteCategory)
			}

			media := guarded.Group("/media")
			{
				media.GET("", admin.ListMedia)
				media.POST("", admin.RecordMedia)
				media.DELETE("/:id", admin.DeleteMedia)
			}
		}
	}

	return r
}
