package handlers

import (
	"errors"
	"net/http"

	"mercado_erp/internal/adapter/http/dto/request"
	"mercado_erp/internal/adapter/http/dto/response"
	"mercado_erp/internal/usecase"
	"mercado_erp/pkg"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the supplier and product registers.
type CatalogHandler struct {
	suppliers usecase.ISupplierUseCase
	products  usecase.IProductUseCase
}

func NewCatalogHandler(suppliers usecase.ISupplierUseCase, products usecase.IProductUseCase) *CatalogHandler {
	return &CatalogHandler{suppliers: suppliers, products: products}
}

// ListSuppliers godoc
// @Summary   List suppliers
// @Tags      catalog
// @Produce   json
// @Security  Bearer
// @Success   200 {array} entities.Supplier
// @Router    /suppliers [get]
func (h *CatalogHandler) ListSuppliers(c *gin.Context) {
	list, err := h.suppliers.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSuppliers(list))
}

// CreateSupplier godoc
// @Summary   Register a supplier
// @Tags      catalog
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.SupplierRequest true "supplier"
// @Success   201 {object} entities.Supplier
// @Router    /suppliers [post]
func (h *CatalogHandler) CreateSupplier(c *gin.Context) {
	var req request.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	created, err := h.suppliers.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListProducts godoc
// @Summary   List products
// @Tags      catalog
// @Produce   json
// @Security  Bearer
// @Success   200 {array} entities.Product
// @Router    /products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.products.List(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromProducts(list))
}

// CreateProduct godoc
// @Summary   Register a product
// @Tags      catalog
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.ProductRequest true "product"
// @Success   201 {object} entities.Product
// @Router    /products [post]
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	created, err := h.products.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, created)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSupplier), errors.Is(err, usecase.ErrInvalidProduct):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSupplierCategory):
		return pkg.NewDomainErrorSimple("INVALID_CATEGORY", "Invalid supplier category", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidProductUnit):
		return pkg.NewDomainErrorSimple("INVALID_UNIT", "Invalid product unit", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
