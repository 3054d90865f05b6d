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

type StoreInput struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Logo        string            `json:"logo"`
	Banner      string            `json:"banner"`
	SocialLinks types.SocialLinks `json:"social_links"`
}

func (in StoreInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 100 {
		fe.add("name", "name must be between 2 and 100 characters")
	}
	if len(in.Description) > 500 {
		fe.add("description", "description must be at most 500 characters")
	}
	if in.Logo != "" && !validURI(in.Logo) {
		fe.add("logo", "logo must be a valid URI")
	}
	if in.Banner != "" && !validURI(in.Banner) {
		fe.add("banner", "banner must be a valid URI")
	}
	links := map[string]string{
		"social_links.facebook":  in.SocialLinks.Facebook,
		"social_links.twitter":   in.SocialLinks.Twitter,
		"social_links.instagram": in.SocialLinks.Instagram,
		"social_links.linkedin":  in.SocialLinks.LinkedIn,
		"social_links.website":   in.SocialLinks.Website,
	}
	for field, link := range links {
		if link != "" && !validURI(link) {
			fe.add(field, "must be a valid URI")
		}
	}
	return fe
}

type StoreService interface {
	Create(ctx context.Context, vendorID uuid.UUID, in StoreInput) (*types.Store, error)
	Mine(ctx context.Context, vendorID uuid.UUID) (*types.Store, error)
	Get(ctx context.Context, vendorID, storeID uuid.UUID) (*types.Store, error)
	Update(ctx context.Context, vendorID, storeID uuid.UUID, in StoreInput) (*types.Store, error)
}

type storeService struct {
	db        *gorm.DB
	log       *logger.Logger
	storeRepo catalogrepo.StoreRepo
}

func NewStoreService(db *gorm.DB, log *logger.Logger, storeRepo catalogrepo.StoreRepo) StoreService {
	serviceLog := log.With("service", "StoreService")
	return &storeService{db: db, log: serviceLog, storeRepo: storeRepo}
}

func (ss *storeService) Create(ctx context.Context, vendorID uuid.UUID, in StoreInput) (*types.Store, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}

	exists, err := ss.storeRepo.ExistsForVendor(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if exists {
		return nil, apierr.Conflict("vendor already has a store")
	}

	store := &types.Store{
		ID:          uuid.New(),
		VendorID:    vendorID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Logo:        in.Logo,
		Banner:      in.Banner,
		SocialLinks: datatypes.NewJSONType(in.SocialLinks),
	}
	if _, err := ss.storeRepo.Create(ctx, nil, store); err != nil {
		return nil, apierr.Internal(err)
	}
	ss.log.Info("store created", "store_id", store.ID.String(), "vendor_id", vendorID.String())
	return store, nil
}

func (ss *storeService) Mine(ctx context.Context, vendorID uuid.UUID) (*types.Store, error) {
	store, err := ss.storeRepo.GetByVendorID(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if store == nil {
		return nil, apierr.NotFound("store")
	}
	return store, nil
}

func (ss *storeService) Get(ctx context.Context, vendorID, storeID uuid.UUID) (*types.Store, error) {
	store, err := ss.storeRepo.GetForVendor(ctx, nil, storeID, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if store == nil {
		return nil, apierr.NotFound("store")
	}
	return store, nil
}

func (ss *storeService) Update(ctx context.Context, vendorID, storeID uuid.UUID, in StoreInput) (*types.Store, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return nil, apierr.Validation(fields)
	}

	store, err := ss.storeRepo.GetForVendor(ctx, nil, storeID, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if store == nil {
		return nil, apierr.NotFound("store")
	}

	store.Name = strings.TrimSpace(in.Name)
	store.Description = strings.TrimSpace(in.Description)
	store.Logo = in.Logo
	store.Banner = in.Banner
	store.SocialLinks = datatypes.NewJSONType(in.SocialLinks)
	if err := ss.storeRepo.Update(ctx, nil, store); err != nil {
		return nil, apierr.Internal(err)
	}
	return store, nil
}
