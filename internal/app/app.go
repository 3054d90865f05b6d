package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	rediscache "github.com/vendora/vendora-backend/internal/clients/redis"
	"github.com/vendora/vendora-backend/internal/data/db"
	apphttp "github.com/vendora/vendora-backend/internal/http"
	"github.com/vendora/vendora-backend/internal/http/handlers"
	"github.com/vendora/vendora-backend/internal/http/middleware"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type App struct {
	Config *Config
	Log    *logger.Logger
	Router *gin.Engine

	pg     *db.PostgresService
	cache  *rediscache.Cache
	server *http.Server
}

func New(log *logger.Logger) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}

	pg, err := db.NewPostgresService(log)
	if err != nil {
		return nil, err
	}
	if err := pg.AutoMigrateAll(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	// Redis is optional. Without it the dashboard recomputes on every
	// request, which is fine for small stores.
	var cache *rediscache.Cache
	if os.Getenv("REDIS_ADDR") != "" {
		cache, err = rediscache.NewCache(log)
		if err != nil {
			log.Warn("redis unavailable, dashboard caching disabled", "error", err)
			cache = nil
		}
	}

	repos := newRepos(pg.DB(), log)
	svcs := newServices(pg.DB(), log, cfg, repos, cache)

	router := apphttp.NewRouter(apphttp.RouterConfig{
		Log:      log,
		Auth:     middleware.NewAuthMiddleware(log, svcs.Auth),
		AuthH:    handlers.NewAuthHandler(log, svcs.Auth),
		StoreH:   handlers.NewStoreHandler(log, svcs.Store),
		ProductH: handlers.NewProductHandler(log, svcs.Product),
		OrderH:   handlers.NewOrderHandler(log, svcs.Order),
		DashH:    handlers.NewDashboardHandler(log, svcs.Dashboard),
	})

	return &App{
		Config: cfg,
		Log:    log,
		Router: router,
		pg:     pg,
		cache:  cache,
	}, nil
}

func (a *App) Run() error {
	a.server = &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	a.Log.Info("server starting", "port", a.Config.Port)
	if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (a *App) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}
	if a.cache != nil {
		_ = a.cache.Close()
	}
	return nil
}
