package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type DashboardHandler struct {
	log              *logger.Logger
	dashboardService services.DashboardService
}

func NewDashboardHandler(log *logger.Logger, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		log:              log.With("handler", "DashboardHandler"),
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	period := services.ParsePeriod(c.Query("period"))
	stats, err := h.dashboardService.Stats(c.Request.Context(), vendorID(c), period)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "dashboard stats retrieved", stats)
}

func (h *DashboardHandler) TopProducts(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	products, err := h.dashboardService.TopProducts(c.Request.Context(), vendorID(c), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "top products retrieved", gin.H{"products": products})
}

func (h *DashboardHandler) RecentOrders(c *gin.Context) {
	limit := queryInt(c, "limit", 10)
	orders, err := h.dashboardService.RecentOrders(c.Request.Context(), vendorID(c), limit)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "recent orders retrieved", gin.H{"orders": orders})
}

func (h *DashboardHandler) SalesChart(c *gin.Context) {
	period := services.ParsePeriod(c.Query("period"))
	chart, err := h.dashboardService.SalesChart(c.Request.Context(), vendorID(c), period)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "sales chart retrieved", chart)
}
