package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/apierr"
	"github.com/vendora/vendora-backend/internal/platform/ctxutil"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type AuthMiddleware struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthMiddleware(log *logger.Logger, authService services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		log:         log.With("middleware", "AuthMiddleware"),
		authService: authService,
	}
}

// RequireAuth resolves the bearer token to a vendor and attaches the
// vendor's identity to the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		vendor, err := m.authService.VendorFromToken(c.Request.Context(), tokenString)
		if err != nil {
			var ae *apierr.Error
			if e, ok := err.(*apierr.Error); ok {
				ae = e
			}
			if ae != nil && ae.Code != apierr.CodeInternal {
				response.FromError(c, err)
			} else {
				m.log.Error("token verification failed", "error", err)
				response.Fail(c, http.StatusUnauthorized, "authentication required", nil)
			}
			c.Abort()
			return
		}

		rd := &ctxutil.RequestData{VendorID: vendor.ID, TokenString: tokenString}
		c.Request = c.Request.WithContext(ctxutil.WithRequestData(c.Request.Context(), rd))
		c.Next()
	}
}
