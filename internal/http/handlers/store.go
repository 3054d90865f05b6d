package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type StoreHandler struct {
	log          *logger.Logger
	storeService services.StoreService
}

func NewStoreHandler(log *logger.Logger, storeService services.StoreService) *StoreHandler {
	return &StoreHandler{
		log:          log.With("handler", "StoreHandler"),
		storeService: storeService,
	}
}

func (h *StoreHandler) Create(c *gin.Context) {
	var in services.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	store, err := h.storeService.Create(c.Request.Context(), vendorID(c), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "store created", gin.H{"store": store})
}

func (h *StoreHandler) Mine(c *gin.Context) {
	store, err := h.storeService.Mine(c.Request.Context(), vendorID(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "store retrieved", gin.H{"store": store})
}

func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "store not found", nil)
		return
	}
	store, err := h.storeService.Get(c.Request.Context(), vendorID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "store retrieved", gin.H{"store": store})
}

func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "store not found", nil)
		return
	}
	var in services.StoreInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	store, err := h.storeService.Update(c.Request.Context(), vendorID(c), id, in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "store updated", gin.H{"store": store})
}
