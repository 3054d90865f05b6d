package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	rediscache "github.com/vendora/vendora-backend/internal/clients/redis"
	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	dashrepo "github.com/vendora/vendora-backend/internal/data/repos/dashboard"
	orderrepo "github.com/vendora/vendora-backend/internal/data/repos/orders"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// ParsePeriod maps a query value to a reporting period, defaulting to
// month for anything unrecognized.
func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return Period(s)
	default:
		return PeriodMonth
	}
}

// Start returns the inclusive lower bound of the period ending at now.
// Week is a rolling seven days; the others snap to calendar boundaries.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour)
	case PeriodYear:
		return time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	}
}

// BucketLayout is the time layout used to group chart points: daily for
// day, week and month, monthly for year.
func (p Period) BucketLayout() string {
	if p == PeriodYear {
		return "2006-01"
	}
	return "2006-01-02"
}

type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

type SalesSummary struct {
	TotalSales        float64 `json:"total_sales"`
	TotalOrders       int64   `json:"total_orders"`
	AverageOrderValue float64 `json:"average_order_value"`
}

type OrderSummary struct {
	Total    int64            `json:"total"`
	ByStatus map[string]int64 `json:"by_status"`
}

type ProductSummary struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
}

type StatsView struct {
	Period    Period         `json:"period"`
	DateRange DateRange      `json:"date_range"`
	Sales     SalesSummary   `json:"sales"`
	Orders    OrderSummary   `json:"orders"`
	Products  ProductSummary `json:"products"`
}

type TopProductView struct {
	ProductID    uuid.UUID `json:"product_id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`
	Price        float64   `json:"price"`
	TotalSold    int64     `json:"total_sold"`
	TotalRevenue float64   `json:"total_revenue"`
}

type RecentOrderView struct {
	ID            uuid.UUID         `json:"id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	TotalAmount   float64           `json:"total_amount"`
	Status        types.OrderStatus `json:"status"`
	CreatedAt     time.Time         `json:"created_at"`
}

type SalesPoint struct {
	Date   string  `json:"date"`
	Sales  float64 `json:"sales"`
	Orders int64   `json:"orders"`
}

type SalesChartView struct {
	Period Period       `json:"period"`
	Data   []SalesPoint `json:"data"`
}

type DashboardService interface {
	Stats(ctx context.Context, vendorID uuid.UUID, period Period) (*StatsView, error)
	TopProducts(ctx context.Context, vendorID uuid.UUID, limit int) ([]TopProductView, error)
	RecentOrders(ctx context.Context, vendorID uuid.UUID, limit int) ([]RecentOrderView, error)
	SalesChart(ctx context.Context, vendorID uuid.UUID, period Period) (*SalesChartView, error)
}

type dashboardService struct {
	log         *logger.Logger
	storeRepo   catalogrepo.StoreRepo
	productRepo catalogrepo.ProductRepo
	orderRepo   orderrepo.OrderRepo
	dashRepo    dashrepo.DashboardRepo
	cache       *rediscache.Cache
	cacheTTL    time.Duration
	now         func() time.Time
}

func NewDashboardService(
	log *logger.Logger,
	storeRepo catalogrepo.StoreRepo,
	productRepo catalogrepo.ProductRepo,
	orderRepo orderrepo.OrderRepo,
	dashRepo dashrepo.DashboardRepo,
	cache *rediscache.Cache,
	cacheTTL time.Duration,
) DashboardService {
	serviceLog := log.With("service", "DashboardService")
	return &dashboardService{
		log:         serviceLog,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		dashRepo:    dashRepo,
		cache:       cache,
		cacheTTL:    cacheTTL,
		now:         time.Now,
	}
}

func (ds *dashboardService) Stats(ctx context.Context, vendorID uuid.UUID, period Period) (*StatsView, error) {
	store, err := storeForVendor(ctx, ds.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:stats:%s:%s", store.ID, period)
	if ds.cache != nil {
		var cached StatsView
		if hit, _ := ds.cache.GetJSON(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	now := ds.now()
	since := period.Start(now)

	var (
		completed     []*types.Order
		statusCounts  []dashrepo.StatusCount
		productTotal  int64
		productActive int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		completed, err = ds.dashRepo.CompletedOrdersSince(gctx, nil, store.ID, since)
		return err
	})
	g.Go(func() error {
		var err error
		statusCounts, err = ds.dashRepo.CountByStatus(gctx, nil, store.ID)
		return err
	})
	g.Go(func() error {
		var err error
		productTotal, err = ds.productRepo.CountByStore(gctx, nil, store.ID)
		return err
	})
	g.Go(func() error {
		var err error
		productActive, err = ds.productRepo.CountByStoreStatus(gctx, nil, store.ID, types.ProductStatusActive)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, apierr.Internal(err)
	}

	// The status breakdown is all-time while the sales figures are scoped
	// to the period; the two intentionally use different windows.
	sales := summarizeSales(completed)
	view := &StatsView{
		Period:    period,
		DateRange: DateRange{Start: since, End: now},
		Sales:     sales,
		Orders: OrderSummary{
			Total:    sales.TotalOrders,
			ByStatus: statusBreakdown(statusCounts),
		},
		Products: ProductSummary{
			Total:    productTotal,
			Active:   productActive,
			Inactive: productTotal - productActive,
		},
	}
	if ds.cache != nil {
		ds.cache.SetJSON(ctx, cacheKey, view, ds.cacheTTL)
	}
	return view, nil
}

func (ds *dashboardService) TopProducts(ctx context.Context, vendorID uuid.UUID, limit int) ([]TopProductView, error) {
	store, err := storeForVendor(ctx, ds.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = 10
	}

	rows, err := ds.dashRepo.TopProducts(ctx, nil, store.ID, limit)
	if err != nil {
		return nil, apierr.Internal(err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	products, err := ds.productRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	byID := make(map[uuid.UUID]*types.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]TopProductView, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		views = append(views, TopProductView{
			ProductID:    row.ProductID,
			Name:         p.Name,
			Category:     p.Category,
			Price:        p.Price,
			TotalSold:    row.TotalSold,
			TotalRevenue: row.TotalRevenue,
		})
	}
	return views, nil
}

func (ds *dashboardService) RecentOrders(ctx context.Context, vendorID uuid.UUID, limit int) ([]RecentOrderView, error) {
	store, err := storeForVendor(ctx, ds.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = 10
	}

	orders, err := ds.orderRepo.Recent(ctx, nil, store.ID, limit)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	views := make([]RecentOrderView, 0, len(orders))
	for _, o := range orders {
		views = append(views, RecentOrderView{
			ID:            o.ID,
			CustomerName:  o.CustomerName,
			CustomerEmail: o.CustomerEmail,
			TotalAmount:   o.TotalAmount,
			Status:        o.Status,
			CreatedAt:     o.CreatedAt,
		})
	}
	return views, nil
}

func (ds *dashboardService) SalesChart(ctx context.Context, vendorID uuid.UUID, period Period) (*SalesChartView, error) {
	store, err := storeForVendor(ctx, ds.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("dashboard:sales:%s:%s", store.ID, period)
	if ds.cache != nil {
		var cached SalesChartView
		if hit, _ := ds.cache.GetJSON(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	since := period.Start(ds.now())
	completed, err := ds.dashRepo.CompletedOrdersSince(ctx, nil, store.ID, since)
	if err != nil {
		return nil, apierr.Internal(err)
	}

	view := &SalesChartView{
		Period: period,
		Data:   bucketSales(completed, period.BucketLayout()),
	}
	if ds.cache != nil {
		ds.cache.SetJSON(ctx, cacheKey, view, ds.cacheTTL)
	}
	return view, nil
}

// dashboardCacheKeys lists every cached dashboard entry for a store.
// Order writes delete these so stats never outlive a status change.
func dashboardCacheKeys(storeID uuid.UUID) []string {
	periods := []Period{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}
	keys := make([]string, 0, 2*len(periods))
	for _, p := range periods {
		keys = append(keys,
			fmt.Sprintf("dashboard:stats:%s:%s", storeID, p),
			fmt.Sprintf("dashboard:sales:%s:%s", storeID, p),
		)
	}
	return keys
}

// summarizeSales reduces a period's completed orders to totals. The
// average is rounded to 2 decimals and zero when there are no orders.
func summarizeSales(completed []*types.Order) SalesSummary {
	var totalSales float64
	for _, o := range completed {
		totalSales += o.TotalAmount
	}
	totalOrders := int64(len(completed))
	var avg float64
	if totalOrders > 0 {
		avg = math.Round(totalSales/float64(totalOrders)*100) / 100
	}
	return SalesSummary{
		TotalSales:        totalSales,
		TotalOrders:       totalOrders,
		AverageOrderValue: avg,
	}
}

// statusBreakdown zero-fills every known status so the dashboard always
// renders all four buckets.
func statusBreakdown(counts []dashrepo.StatusCount) map[string]int64 {
	byStatus := map[string]int64{
		string(types.OrderStatusPending):    0,
		string(types.OrderStatusProcessing): 0,
		string(types.OrderStatusCompleted):  0,
		string(types.OrderStatusCancelled):  0,
	}
	for _, sc := range counts {
		byStatus[string(sc.Status)] = sc.Count
	}
	return byStatus
}

// bucketSales groups completed orders by creation time under the given
// layout and returns points in ascending date order.
func bucketSales(orders []*types.Order, layout string) []SalesPoint {
	byBucket := map[string]*SalesPoint{}
	for _, o := range orders {
		key := o.CreatedAt.Format(layout)
		point, ok := byBucket[key]
		if !ok {
			point = &SalesPoint{Date: key}
			byBucket[key] = point
		}
		point.Sales += o.TotalAmount
		point.Orders++
	}
	points := make([]SalesPoint, 0, len(byBucket))
	for _, p := range byBucket {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool { return points[i].Date < points[j].Date })
	return points
}
