package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	rediscache "github.com/vendora/vendora-backend/internal/clients/redis"
	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	orderrepo "github.com/vendora/vendora-backend/internal/data/repos/orders"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type OrderItemInput struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type OrderInput struct {
	CustomerName  string           `json:"customer_name"`
	CustomerEmail string           `json:"customer_email"`
	Items         []OrderItemInput `json:"items"`
}

func (in OrderInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	if strings.TrimSpace(in.CustomerName) == "" {
		fe.add("customer_name", "customer name is required")
	}
	if !validEmail(in.CustomerEmail) {
		fe.add("customer_email", "customer email must be a valid email address")
	}
	if len(in.Items) == 0 {
		fe.add("items", "at least one item is required")
	}
	for _, item := range in.Items {
		if _, err := uuid.Parse(item.ProductID); err != nil {
			fe.add("items.product_id", "product id must be a valid id")
		}
		if item.Quantity < 1 {
			fe.add("items.quantity", "quantity must be at least 1")
		}
		if item.Price < 0 {
			fe.add("items.price", "price must be zero or greater")
		}
	}
	return fe
}

type StatusUpdateInput struct {
	Status string `json:"status"`
}

func (in StatusUpdateInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	if !types.ValidOrderStatus(in.Status) {
		fe.add("status", "status must be one of pending, processing, completed, cancelled")
	}
	return fe
}

type NoteInput struct {
	Content string `json:"content"`
}

func (in NoteInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	if strings.TrimSpace(in.Content) == "" {
		fe.add("content", "content is required")
	}
	return fe
}

// ProductRef is the display projection of an order line's product,
// resolved at the read boundary. Nil when the product has been deleted.
type ProductRef struct {
	Name   string   `json:"name"`
	Price  float64  `json:"price"`
	Images []string `json:"images,omitempty"`
}

type OrderItemView struct {
	ID        uuid.UUID   `json:"id"`
	ProductID uuid.UUID   `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Price     float64     `json:"price"`
	Product   *ProductRef `json:"product,omitempty"`
}

type OrderView struct {
	ID            uuid.UUID         `json:"id"`
	StoreID       uuid.UUID         `json:"store_id"`
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	TotalAmount   float64           `json:"total_amount"`
	Status        types.OrderStatus `json:"status"`
	Items         []OrderItemView   `json:"items"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type OrderPage struct {
	Orders     []OrderView `json:"orders"`
	Pagination Pagination  `json:"pagination"`
}

type OrderService interface {
	Create(ctx context.Context, vendorID uuid.UUID, in OrderInput) (*types.Order, error)
	List(ctx context.Context, vendorID uuid.UUID, page, limit int, status string) (*OrderPage, error)
	Get(ctx context.Context, vendorID, orderID uuid.UUID) (*OrderView, error)
	UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, in StatusUpdateInput) (*types.Order, error)
	AddNote(ctx context.Context, vendorID, orderID uuid.UUID, in NoteInput) (*types.OrderNote, error)
	ListNotes(ctx context.Context, vendorID, orderID uuid.UUID) ([]*types.OrderNote, error)
}

type orderService struct {
	db          *gorm.DB
	log         *logger.Logger
	storeRepo   catalogrepo.StoreRepo
	productRepo catalogrepo.ProductRepo
	orderRepo   orderrepo.OrderRepo
	noteRepo    orderrepo.OrderNoteRepo
	cache       *rediscache.Cache
}

func NewOrderService(
	db *gorm.DB,
	log *logger.Logger,
	storeRepo catalogrepo.StoreRepo,
	productRepo catalogrepo.ProductRepo,
	orderRepo orderrepo.OrderRepo,
	noteRepo orderrepo.OrderNoteRepo,
	cache *rediscache.Cache,
) OrderService {
	serviceLog := log.With("service", "OrderService")
	return &orderService{
		db:          db,
		log:         serviceLog,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		noteRepo:    noteRepo,
		cache:       cache,
	}
}

// invalidateDashboards drops the store's cached dashboard entries after an
// order write so a fresh read reflects it.
func (os *orderService) invalidateDashboards(ctx context.Context, storeID uuid.UUID) {
	if os.cache == nil {
		return
	}
	os.cache.Delete(ctx, dashboardCacheKeys(storeID)...)
}

func (os *orderService) Create(ctx context.Context, vendorID uuid.UUID, in OrderInput) (*types.Order, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}
	store, err := storeForVendor(ctx, os.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}

	orderID := uuid.New()
	items := make([]types.OrderItem, 0, len(in.Items))
	for _, item := range in.Items {
		productID, _ := uuid.Parse(item.ProductID)
		items = append(items, types.OrderItem{
			ID:        uuid.New(),
			OrderID:   orderID,
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	// Total is computed once from the submitted snapshot prices; the live
	// catalog price is never consulted.
	order := &types.Order{
		ID:            orderID,
		StoreID:       store.ID,
		CustomerName:  strings.TrimSpace(in.CustomerName),
		CustomerEmail: strings.ToLower(strings.TrimSpace(in.CustomerEmail)),
		TotalAmount:   types.OrderTotalAmount(items),
		Status:        types.OrderStatusPending,
		Items:         items,
	}
	if _, err := os.orderRepo.Create(ctx, nil, order); err != nil {
		return nil, apierr.Internal(err)
	}
	os.invalidateDashboards(ctx, store.ID)
	os.log.Info("order created", "order_id", order.ID.String(), "store_id", store.ID.String())
	return order, nil
}

func (os *orderService) List(ctx context.Context, vendorID uuid.UUID, page, limit int, status string) (*OrderPage, error) {
	store, err := storeForVendor(ctx, os.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	page, limit = normalizePage(page, limit)

	orders, total, err := os.orderRepo.List(ctx, nil, store.ID, page, limit, types.OrderStatus(status))
	if err != nil {
		return nil, apierr.Internal(err)
	}

	views, err := os.resolveOrders(ctx, orders, false)
	if err != nil {
		return nil, err
	}
	return &OrderPage{
		Orders:     views,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (os *orderService) Get(ctx context.Context, vendorID, orderID uuid.UUID) (*OrderView, error) {
	store, err := storeForVendor(ctx, os.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	order, err := os.orderRepo.GetForStore(ctx, nil, orderID, store.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if order == nil {
		return nil, apierr.NotFound("order")
	}

	views, err := os.resolveOrders(ctx, []*types.Order{order}, true)
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (os *orderService) UpdateStatus(ctx context.Context, vendorID, orderID uuid.UUID, in StatusUpdateInput) (*types.Order, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}
	store, err := storeForVendor(ctx, os.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	order, err := os.orderRepo.GetForStore(ctx, nil, orderID, store.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if order == nil {
		return nil, apierr.NotFound("order")
	}

	next := types.OrderStatus(in.Status)
	if !types.CanTransition(order.Status, next) {
		return nil, apierr.InvalidTransition(string(order.Status), string(next))
	}

	// Stock moves only on the first transition into completed. Decrements
	// are applied per item; a deleted product matches zero rows and is
	// skipped. There is no cross-request guard here, so two interleaved
	// completions can both decrement.
	decrement := next == types.OrderStatusCompleted && order.Status != types.OrderStatusCompleted
	err = os.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if decrement {
			for _, item := range order.Items {
				if err := os.productRepo.DecrementStock(ctx, tx, item.ProductID, item.Quantity); err != nil {
					return err
				}
			}
		}
		return os.orderRepo.UpdateStatus(ctx, tx, order.ID, next)
	})
	if err != nil {
		return nil, apierr.Internal(err)
	}

	order.Status = next
	os.invalidateDashboards(ctx, store.ID)
	os.log.Info("order status updated",
		"order_id", order.ID.String(),
		"status", string(next),
		"stock_decremented", decrement,
	)
	return order, nil
}

func (os *orderService) AddNote(ctx context.Context, vendorID, orderID uuid.UUID, in NoteInput) (*types.OrderNote, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}
	if err := os.requireOrder(ctx, vendorID, orderID); err != nil {
		return nil, err
	}

	note := &types.OrderNote{
		ID:      uuid.New(),
		OrderID: orderID,
		Content: strings.TrimSpace(in.Content),
	}
	if _, err := os.noteRepo.Create(ctx, nil, note); err != nil {
		return nil, apierr.Internal(err)
	}
	return note, nil
}

func (os *orderService) ListNotes(ctx context.Context, vendorID, orderID uuid.UUID) ([]*types.OrderNote, error) {
	if err := os.requireOrder(ctx, vendorID, orderID); err != nil {
		return nil, err
	}
	notes, err := os.noteRepo.ListByOrder(ctx, nil, orderID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return notes, nil
}

func (os *orderService) requireOrder(ctx context.Context, vendorID, orderID uuid.UUID) error {
	store, err := storeForVendor(ctx, os.storeRepo, vendorID)
	if err != nil {
		return err
	}
	order, err := os.orderRepo.GetForStore(ctx, nil, orderID, store.ID)
	if err != nil {
		return apierr.Internal(err)
	}
	if order == nil {
		return apierr.NotFound("order")
	}
	return nil
}

// resolveOrders joins each line item to its product's current display
// fields in one batch lookup. Items whose product is gone keep a nil ref.
func (os *orderService) resolveOrders(ctx context.Context, orders []*types.Order, includeImages bool) ([]OrderView, error) {
	idSet := map[uuid.UUID]struct{}{}
	for _, order := range orders {
		for _, item := range order.Items {
			idSet[item.ProductID] = struct{}{}
		}
	}
	ids := make([]uuid.UUID, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	products, err := os.productRepo.GetByIDs(ctx, nil, ids)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	byID := make(map[uuid.UUID]*types.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	views := make([]OrderView, 0, len(orders))
	for _, order := range orders {
		itemViews := make([]OrderItemView, 0, len(order.Items))
		for _, item := range order.Items {
			iv := OrderItemView{
				ID:        item.ID,
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Price:     item.Price,
			}
			if p, ok := byID[item.ProductID]; ok {
				ref := &ProductRef{Name: p.Name, Price: p.Price}
				if includeImages {
					ref.Images = p.Images
				}
				iv.Product = ref
			}
			itemViews = append(itemViews, iv)
		}
		views = append(views, OrderView{
			ID:            order.ID,
			StoreID:       order.StoreID,
			CustomerName:  order.CustomerName,
			CustomerEmail: order.CustomerEmail,
			TotalAmount:   order.TotalAmount,
			Status:        order.Status,
			Items:         itemViews,
			CreatedAt:     order.CreatedAt,
			UpdatedAt:     order.UpdatedAt,
		})
	}
	return views, nil
}
