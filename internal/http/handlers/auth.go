package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type AuthHandler struct {
	log         *logger.Logger
	authService services.AuthService
}

func NewAuthHandler(log *logger.Logger, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		log:         log.With("handler", "AuthHandler"),
		authService: authService,
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	token, vendor, err := h.authService.Register(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "vendor registered", gin.H{
		"token":  token,
		"vendor": vendor,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	token, vendor, err := h.authService.Login(c.Request.Context(), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "login successful", gin.H{
		"token":  token,
		"vendor": vendor,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	vendor, err := h.authService.Me(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "current vendor", gin.H{"vendor": vendor})
}
