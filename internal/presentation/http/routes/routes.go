package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/atkinsguitar/pos-api/internal/config"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/handler"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/middleware"
	"github.com/atkinsguitar/pos-api/pkg/utils"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Auth        *handler.AuthHandler
	Product     *handler.ProductHandler
	Checkout    *handler.CheckoutHandler
	Transaction *handler.TransactionHandler
	Report      *handler.ReportHandler
	Settings    *handler.SettingsHandler
	User        *handler.UserHandler
	Backup      *handler.BackupHandler
	Printer     *handler.PrinterHandler
}

// Setup wires every route with its middleware chain.
func Setup(
	cfg *config.Config,
	h *Handlers,
	jwtManager *utils.JWTManager,
	idempotencyRepo repository.IdempotencyRepository,
) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS(cfg.CORS))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimiter := middleware.NewRateLimiter(cfg.RateLimit)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Use(rateLimiter.Middleware())
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtManager))
	protected.Use(rateLimiter.Middleware())
	{
		protected.GET("/auth/me", h.Auth.Me)

		products := protected.Group("/products")
		{
			products.GET("", h.Product.List)
			products.GET("/catalog", h.Product.Catalog)
			products.GET("/categories", h.Product.Categories)
			products.GET("/low-stock", h.Product.LowStock)
			products.GET("/:id", h.Product.Get)
		}

		pos := protected.Group("/pos")
		{
			pos.POST("/cart/quote", h.Checkout.Quote)
			pos.POST("/checkout", middleware.IdempotencyRequired(idempotencyRepo), h.Checkout.Checkout)
		}

		transactions := protected.Group("/transactions")
		{
			transactions.GET("", h.Transaction.List)
			transactions.GET("/:id", h.Transaction.Get)
			transactions.GET("/:id/receipt", h.Transaction.Receipt)
			transactions.POST("/:id/print", h.Printer.Print)
		}

		protected.GET("/printer/status", h.Printer.Status)
		protected.GET("/settings", h.Settings.Get)

		// Admin-only surface: catalog writes, accounts, settings writes,
		// reports, and backup.
		admin := protected.Group("")
		admin.Use(middleware.RequireRole("admin"))
		{
			admin.POST("/products", h.Product.Create)
			admin.PUT("/products/:id", h.Product.Update)
			admin.DELETE("/products/:id", h.Product.Delete)

			admin.PUT("/settings", h.Settings.Update)

			users := admin.Group("/users")
			{
				users.POST("", h.User.Create)
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Deactivate)
			}

			reports := admin.Group("/reports")
			{
				reports.GET("/sales", h.Report.SalesSummary)
				reports.GET("/top-products", h.Report.TopProducts)
				reports.GET("/dashboard", h.Report.Dashboard)
			}

			backup := admin.Group("/backup")
			{
				backup.GET("/export", h.Backup.Export)
				backup.POST("/restore", h.Backup.Restore)
				backup.GET("/stats", h.Backup.Stats)
			}
		}
	}

	return router
}
