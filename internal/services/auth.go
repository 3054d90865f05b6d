package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	vendorrepo "github.com/vendora/vendora-backend/internal/data/repos/vendor"
	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/ctxutil"
	"github.com/vendora/vendora-backend/internal/platform/logger"
)

type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in RegisterInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	name := strings.TrimSpace(in.Name)
	if len(name) < 2 || len(name) > 50 {
		fe.add("name", "name must be between 2 and 50 characters")
	}
	if !validEmail(in.Email) {
		fe.add("email", "email must be a valid email address")
	}
	if len(in.Password) < 6 {
		fe.add("password", "password must be at least 6 characters")
	}
	return fe
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (in LoginInput) Validate() []apierr.FieldError {
	var fe fieldErrors
	if !validEmail(in.Email) {
		fe.add("email", "email must be a valid email address")
	}
	if in.Password == "" {
		fe.add("password", "password is required")
	}
	return fe
}

// AuthService is the access gate: it issues tokens at registration/login and
// resolves bearer tokens back to vendor records for every protected call.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (string, *types.Vendor, error)
	Login(ctx context.Context, in LoginInput) (string, *types.Vendor, error)
	VendorFromToken(ctx context.Context, tokenString string) (*types.Vendor, error)
	Me(ctx context.Context) (*types.Vendor, error)
}

type authService struct {
	db           *gorm.DB
	log          *logger.Logger
	vendorRepo   vendorrepo.VendorRepo
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(
	db *gorm.DB,
	log *logger.Logger,
	vendorRepo vendorrepo.VendorRepo,
	jwtSecretKey string,
	accessTTL time.Duration,
) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		db:           db,
		log:          serviceLog,
		vendorRepo:   vendorRepo,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Register(ctx context.Context, in RegisterInput) (string, *types.Vendor, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return "", nil, apierr.Validation(fields)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := as.vendorRepo.EmailExists(ctx, nil, email)
	if err != nil {
		return "", nil, apierr.Internal(err)
	}
	if exists {
		return "", nil, apierr.Conflict("vendor already exists with this email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, apierr.Internal(err)
	}

	v := &types.Vendor{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(in.Name),
		Email:    email,
		Password: string(hash),
		Status:   types.VendorStatusActive,
	}
	if _, err := as.vendorRepo.Create(ctx, nil, v); err != nil {
		return "", nil, apierr.Internal(err)
	}

	token, err := as.signToken(v)
	if err != nil {
		return "", nil, apierr.Internal(err)
	}
	as.log.Info("vendor registered", "vendor_id", v.ID.String())
	return token, v, nil
}

func (as *authService) Login(ctx context.Context, in LoginInput) (string, *types.Vendor, error) {
	if fields := in.Validate(); len(fields) > 0 {
		return "", nil, apierr.Validation(fields)
	}
	email := strings.ToLower(strings.TrimSpace(in.Email))

	v, err := as.vendorRepo.GetByEmail(ctx, nil, email)
	if err != nil {
		return "", nil, apierr.Internal(err)
	}
	if v == nil {
		return "", nil, apierr.InvalidCredential("invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(v.Password), []byte(in.Password)); err != nil {
		return "", nil, apierr.InvalidCredential("invalid email or password")
	}

	token, err := as.signToken(v)
	if err != nil {
		return "", nil, apierr.Internal(err)
	}
	return token, v, nil
}

func (as *authService) VendorFromToken(ctx context.Context, tokenString string) (*types.Vendor, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(as.jwtSecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, apierr.InvalidCredential("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, apierr.InvalidCredential("invalid token")
	}
	rawID, ok := claims["id"].(string)
	if !ok {
		return nil, apierr.InvalidCredential("invalid token")
	}
	vendorID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, apierr.InvalidCredential("invalid token")
	}

	v, err := as.vendorRepo.GetByID(ctx, nil, vendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if v == nil {
		return nil, apierr.InvalidCredential("invalid token")
	}
	return v, nil
}

func (as *authService) Me(ctx context.Context) (*types.Vendor, error) {
	rd := ctxutil.GetRequestData(ctx)
	if rd == nil || rd.VendorID == uuid.Nil {
		return nil, apierr.Unauthenticated("missing or invalid token")
	}
	v, err := as.vendorRepo.GetByID(ctx, nil, rd.VendorID)
	if err != nil {
		return nil, apierr.Internal(err)
	}
	if v == nil {
		return nil, apierr.InvalidCredential("invalid token")
	}
	return v, nil
}

func (as *authService) signToken(v *types.Vendor) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":  v.ID.String(),
		"iat": jwt.NewNumericDate(now),
		"exp": jwt.NewNumericDate(now.Add(as.accessTTL)),
	})
	return token.SignedString([]byte(as.jwtSecretKey))
}
