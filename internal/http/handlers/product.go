package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vendora/vendora-backend/internal/http/response"
	"github.com/vendora/vendora-backend/internal/platform/logger"
	"github.com/vendora/vendora-backend/internal/services"
)

type ProductHandler struct {
	log            *logger.Logger
	productService services.ProductService
}

func NewProductHandler(log *logger.Logger, productService services.ProductService) *ProductHandler {
	return &ProductHandler{
		log:            log.With("handler", "ProductHandler"),
		productService: productService,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	product, err := h.productService.Create(c.Request.Context(), vendorID(c), in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "product created", gin.H{"product": product})
}

func (h *ProductHandler) List(c *gin.Context) {
	params := services.ProductListParams{
		Page:     queryInt(c, "page", 1),
		Limit:    queryInt(c, "limit", 10),
		Category: c.Query("category"),
		Status:   c.Query("status"),
	}
	page, err := h.productService.List(c.Request.Context(), vendorID(c), params)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "products retrieved", page)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "product not found", nil)
		return
	}
	product, err := h.productService.Get(c.Request.Context(), vendorID(c), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "product retrieved", gin.H{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "product not found", nil)
		return
	}
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	product, err := h.productService.Update(c.Request.Context(), vendorID(c), id, in)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "product updated", gin.H{"product": product})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.Fail(c, http.StatusNotFound, "product not found", nil)
		return
	}
	if err := h.productService.Delete(c.Request.Context(), vendorID(c), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "product deleted", nil)
}
