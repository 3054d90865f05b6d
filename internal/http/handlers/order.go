package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type OrderHandler struct {
	log          *logger.Logger
	orderService services.OrderService
}

func NewOrderHandler(log *logger.Logger, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		log:          log.With("handler", "OrderHandler"),
		orderService: orderService,
	}
}

func (h *OrderHandler) Create(c *gin.Context) {
	var in services.OrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	order, err := h.orderService.Create(c.Request.Context(), vendorID(c), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "order created", gin.H{"order": order})
}

func (h *OrderHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	status := c.Query("status")

	result, err := h.orderService.List(c.Request.Context(), vendorID(c), page, limit, status)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "orders retrieved", result)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	}
	order, err := h.orderService.Get(c.Request.Context(), vendorID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order retrieved", gin.H{"order": order})
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	}
	var in services.StatusUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	order, err := h.orderService.UpdateStatus(c.Request.Context(), vendorID(c), id, in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "order status updated", gin.H{"order": order})
}

func (h *OrderHandler) AddNote(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	}
	var in services.NoteInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	note, err := h.orderService.AddNote(c.Request.Context(), vendorID(c), id, in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "note added", gin.H{"note": note})
}

func (h *OrderHandler) ListNotes(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "order not found", nil)
		return
	}
	notes, err := h.orderService.ListNotes(c.Request.Context(), vendorID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "notes retrieved", gin.H{"notes": notes})
}
