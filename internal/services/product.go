package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	catalogrepo "github.com/vendora/vendora-backend/internal/data/repos/catalog"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type ProductInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Stock       int      `json:"stock"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Status      string   `json:"status"`
}

func (in ProductInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 100 {
		fe.add("name", "name must be between 2 and 100 characters")
	}
	if len(in.Description) > 1000 {
		fe.add("description", "description must be at most 1000 characters")
	}
	if in.Price < 0 {
		fe.add("price", "price must be zero or greater")
	}
	if in.Stock < 0 {
		fe.add("stock", "stock must be zero or greater")
	}
	for _, img := range in.Images {
		if !validURI(img) {
			fe.add("images", "images must be valid URIs")
			break
		}
	}
	if in.Status != "" && !types.ValidProductStatus(in.Status) {
		fe.add("status", "status must be one of active, inactive, out_of_stock")
	}
	return fe
}

type ProductListParams struct {
	Page     int
	Limit    int
	Category string
	Status   string
}

type ProductPage struct {
	Products   []*types.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

type ProductService interface {
	Create(ctx context.Context, vendorID uuid.UUID, in ProductInput) (*types.Product, error)
	List(ctx context.Context, vendorID uuid.UUID, params ProductListParams) (*ProductPage, error)
	Get(ctx context.Context, vendorID, productID uuid.UUID) (*types.Product, error)
	Update(ctx context.Context, vendorID, productID uuid.UUID, in ProductInput) (*types.Product, error)
	Delete(ctx context.Context, vendorID, productID uuid.UUID) error
}

type productService struct {
	db          *gorm.DB
	log         *logger.Logger
	storeRepo   catalogrepo.StoreRepo
	productRepo catalogrepo.ProductRepo
}

func NewProductService(
	db *gorm.DB,
	log *logger.Logger,
	storeRepo catalogrepo.StoreRepo,
	productRepo catalogrepo.ProductRepo,
) ProductService {
	serviceLog := log.With("service", "ProductService")
	return &productService{db: db, log: serviceLog, storeRepo: storeRepo, productRepo: productRepo}
}

func (ps *productService) Create(ctx context.Context, vendorID uuid.UUID, in ProductInput) (*types.Product, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}
	store, err := storeForVendor(ctx, ps.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}

	status := types.ProductStatusActive
	if in.Status != "" {
		status = types.ProductStatus(in.Status)
	}
	product := &types.Product{
		ID:          uuid.New(),
		StoreID:     store.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		Images:      datatypes.NewJSONSlice(in.Images),
		Category:    strings.TrimSpace(in.Category),
		Status:      status,
	}
	types.NormalizeStockStatus(product)

	if _, err := ps.productRepo.Create(ctx, nil, product); err != nil {
		return nil, apierr.Internal(err)
	}
	ps.log.Info("product created", "product_id", product.ID.String(), "store_id", store.ID.String())
	return product, nil
}

func (ps *productService) List(ctx context.Context, vendorID uuid.UUID, params ProductListParams) (*ProductPage, error) {
	store, err := storeForVendor(ctx, ps.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	page, limit := normalizePage(params.Page, params.Limit)

	filter := catalogrepo.ProductFilter{
		Category: params.Category,
		Status:   types.ProductStatus(params.Status),
	}
	products, total, err := ps.productRepo.List(ctx, nil, store.ID, page, limit, filter)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	return &ProductPage{
		Products:   products,
		Pagination: paginate(page, limit, total),
	}, nil
}

func (ps *productService) Get(ctx context.Context, vendorID, productID uuid.UUID) (*types.Product, error) {
	store, err := storeForVendor(ctx, ps.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	product, err := ps.productRepo.GetForStore(ctx, nil, productID, store.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if product == nil {
		return nil, apierr.NotFound("product")
	}
	return product, nil
}

func (ps *productService) Update(ctx context.Context, vendorID, productID uuid.UUID, in ProductInput) (*types.Product, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}
	store, err := storeForVendor(ctx, ps.storeRepo, vendorID)
	if err != nil {
		return nil, err
	}
	product, err := ps.productRepo.GetForStore(ctx, nil, productID, store.ID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if product == nil {
		return nil, apierr.NotFound("product")
	}

	product.Name = strings.TrimSpace(in.Name)
	product.Description = strings.TrimSpace(in.Description)
	product.Price = in.Price
	product.Stock = in.Stock
	product.Images = datatypes.NewJSONSlice(in.Images)
	product.Category = strings.TrimSpace(in.Category)
	if in.Status != "" {
		product.Status = types.ProductStatus(in.Status)
	}
	types.NormalizeStockStatus(product)

	if err := ps.productRepo.Update(ctx, nil, product); err != nil {
		return nil, apierr.Internal(err)
	}
	return product, nil
}

func (ps *productService) Delete(ctx context.Context, vendorID, productID uuid.UUID) error {
	store, err := storeForVendor(ctx, ps.storeRepo, vendorID)
	if err != nil {
		return err
	}
	affected, err := ps.productRepo.Delete(ctx, nil, productID, store.ID)
	if err != nil {
		return apierr.Internal(err)
	}
	if affected == 0 {
		return apierr.NotFound("product")
	}
	return nil
}
