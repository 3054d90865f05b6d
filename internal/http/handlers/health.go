package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
)

func Healthcheck(c *gin.Context) {
	response.Success(c, http.StatusOK, "ok", gin.H{"status": "healthy"})
}
