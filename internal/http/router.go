package http

import (
	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/handlers"
	"github.com/vendora/vendora-backend/internal/http/middleware"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log      *logger.Logger
	Auth     *middleware.AuthMiddleware
	AuthH    *handlers.AuthHandler
	StoreH   *handlers.StoreHandler
	ProductH *handlers.ProductHandler
	OrderH   *handlers.OrderHandler
	DashH    *handlers.DashboardHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.AttachTraceContext())
	r.Use(middleware.RequestLogger(cfg.Log))
	r.Use(middleware.CORS())

	r.GET("/healthcheck", handlers.Healthcheck)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", cfg.AuthH.Register)
			auth.POST("/login", cfg.AuthH.Login)
			auth.GET("/me", cfg.Auth.RequireAuth(), cfg.AuthH.Me)
		}

		protected := api.Group("")
		protected.Use(cfg.Auth.RequireAuth())
		{
			stores := protected.Group("/stores")
			{
				stores.POST("", cfg.StoreH.Create)
				stores.GET("", cfg.StoreH.Mine)
				stores.GET("/:id", cfg.StoreH.Get)
				stores.PUT("/:id", cfg.StoreH.Update)
			}

			products := protected.Group("/products")
			{
				products.POST("", cfg.ProductH.Create)
				products.GET("", cfg.ProductH.List)
				products.GET("/:id", cfg.ProductH.Get)
				products.PUT("/:id", cfg.ProductH.Update)
				products.DELETE("/:id", cfg.ProductH.Delete)
			}

			orders := protected.Group("/orders")
			{
				orders.POST("", cfg.OrderH.Create)
				orders.GET("", cfg.OrderH.List)
				orders.GET("/:id", cfg.OrderH.Get)
				orders.PUT("/:id/status", cfg.OrderH.UpdateStatus)
				orders.POST("/:id/notes", cfg.OrderH.AddNote)
				orders.GET("/:id/notes", cfg.OrderH.ListNotes)
			}

			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", cfg.DashH.Stats)
				dashboard.GET("/products", cfg.DashH.TopProducts)
				dashboard.GET("/orders", cfg.DashH.RecentOrders)
				dashboard.GET("/sales-chart", cfg.DashH.SalesChart)
			}
		}
	}

	return r
}
