package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	types "github.com/vendora/vendora-backend/internal/domain"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/ctxutil"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type stubAuthService struct {
	vendor *types.Vendor
	err    error
}

func (s *stubAuthService) Register(context.Context, services.RegisterInput) (string, *types.Vendor, error) {
	return "", nil, nil
}
func (s *stubAuthService) Login(context.Context, services.LoginInput) (string, *types.Vendor, error) {
	return "", nil, nil
}
func (s *stubAuthService) VendorFromToken(context.Context, string) (*types.Vendor, error) {
	return s.vendor, s.err
}
func (s *stubAuthService) Me(context.Context) (*types.Vendor, error) {
	return s.vendor, s.err
}

func runAuth(t *testing.T, svc services.AuthService, authHeader string) (*httptest.ResponseRecorder, *ctxutil.RequestData) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}

	var captured *ctxutil.RequestData
	r := gin.New()
	r.GET("/protected", NewAuthMiddleware(log, svc).RequireAuth(), func(c *gin.Context) {
		captured = ctxutil.GetRequestData(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	r.ServeHTTP(w, req)
	return w, captured
}

func TestRequireAuthMissingHeader(t *testing.T) {
	w, rd := runAuth(t, &stubAuthService{}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if rd != nil {
		t.Fatal("handler must not run without a token")
	}
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	w, _ := runAuth(t, &stubAuthService{}, "Token abc123")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	svc := &stubAuthService{err: apierr.InvalidCredential("invalid token")}
	w, rd := runAuth(t, svc, "Bearer bad-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", w.Code)
	}
	if rd != nil {
		t.Fatal("handler must not run with a rejected token")
	}
}

func TestRequireAuthAttachesVendor(t *testing.T) {
	vendorID := uuid.New()
	svc := &stubAuthService{vendor: &types.Vendor{ID: vendorID}}
	w, rd := runAuth(t, svc, "Bearer good-token")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if rd == nil || rd.VendorID != vendorID {
		t.Fatalf("request data not attached: %+v", rd)
	}
	if rd.TokenString != "good-token" {
		t.Fatalf("token string = %q", rd.TokenString)
	}
}
