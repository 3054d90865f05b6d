package app

import (
	"gorm.io/gorm"

	rediscache "github.com/vendora/vendora-backend/internal/clients/redis"
	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	dashrepo "github.com/vendora/vendora-backend/internal/data/repos/dashboard"
	orderrepo "github.com/vendora/vendora-backend/internal/data/repos/orders"
	vendorrepo "github.com/vendora/vendora-backend/internal/data/repos/vendor"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type repoSet struct {
	Vendor    vendorrepo.VendorRepo
	Store     catalogrepo.StoreRepo
	Product   catalogrepo.ProductRepo
	Order     orderrepo.OrderRepo
	OrderNote orderrepo.OrderNoteRepo
	Dashboard dashrepo.DashboardRepo
}

func newRepos(db *gorm.DB, log *logger.Logger) *repoSet {
	return &repoSet{
		Vendor:    vendorrepo.NewVendorRepo(db, log),
		Store:     catalogrepo.NewStoreRepo(db, log),
		Product:   catalogrepo.NewProductRepo(db, log),
		Order:     orderrepo.NewOrderRepo(db, log),
		OrderNote: orderrepo.NewOrderNoteRepo(db, log),
		Dashboard: dashrepo.NewDashboardRepo(db, log),
	}
}

type serviceSet struct {
	Auth      services.AuthService
	Store     services.StoreService
	Product   services.ProductService
	Order     services.OrderService
	Dashboard services.DashboardService
}

func newServices(db *gorm.DB, log *logger.Logger, cfg *Config, repos *repoSet, cache *rediscache.Cache) *serviceSet {
	return &serviceSet{
		Auth:    services.NewAuthService(db, log, repos.Vendor, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Store:   services.NewStoreService(db, log, repos.Store),
		Product: services.NewProductService(db, log, repos.Store, repos.Product),
		Order:   services.NewOrderService(db, log, repos.Store, repos.Product, repos.Order, repos.OrderNote, cache),
		Dashboard: services.NewDashboardService(
			log, repos.Store, repos.Product, repos.Order, repos.Dashboard, cache, cfg.DashboardCacheTTL,
		),
	}
}
