package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/application/service"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/request"
	"github.com/atkinsguitar/pos-api/internal/presentation/http/dto/response"
	"github.com/atkinsguitar/pos-api/pkg/pagination"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &service.CreateProductInput{
		Name:              req.Name,
		Category:          req.Category,
		Brand:             req.Brand,
		Description:       req.Description,
		Price:             req.Price,
		Stock:             req.Stock,
		MinStockThreshold: req.MinStockThreshold,
		ImageURL:          req.ImageURL,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "Product created", product)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &service.UpdateProductInput{
		Name:              req.Name,
		Category:          req.Category,
		Brand:             req.Brand,
		Description:       req.Description,
		Price:             req.Price,
		Stock:             req.Stock,
		MinStockThreshold: req.MinStockThreshold,
		ImageURL:          req.ImageURL,
		IsActive:          req.IsActive,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product updated", product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Product deleted", nil)
}

// List handles GET /products
func (h *ProductHandler) List(c *gin.Context) {
	var req request.ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err.Error())
		return
	}

	result, err := h.productService.List(c.Request.Context(), &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{Page: req.Page, PerPage: req.PerPage},
		Search:     req.Search,
		Category:   req.Category,
		ActiveOnly: req.Active,
		LowStock:   req.LowStock,
		SortBy:     req.SortBy,
		SortOrder:  req.SortOrder,
	})
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", result)
}

// Catalog handles GET /products/catalog, the register's sellable set
func (h *ProductHandler) Catalog(c *gin.Context) {
	products, err := h.productService.Catalog(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", products)
}

// Categories handles GET /products/categories
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.productService.ListCategories(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", categories)
}

// LowStock handles GET /products/low-stock
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.GetLowStock(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "", products)
}
