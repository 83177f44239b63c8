package handlers

import (
	"errors"
	"net/http"

	"mercado_erp/internal/adapter/http/dto/request"
	"mercado_erp/internal/adapter/http/dto/response"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase"
	"mercado_erp/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// InvoiceHandler serves the purchasing screen. Every write goes through the
// invoice use case so the matching financial record follows the invoice.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
	log     zerolog.Logger
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, log: logger.WithComponent("invoice")}
}

// ListInvoices godoc
// @Summary   List invoices in creation order
// @Tags      invoices
// @Produce   json
// @Security  Bearer
// @Success   200 {array} response.InvoiceResponse
// @Router    /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(list))
}

// GetInvoice godoc
// @Summary   Get one invoice
// @Tags      invoices
// @Produce   json
// @Security  Bearer
// @Param     id path string true "invoice id"
// @Success   200 {object} response.InvoiceResponse
// @Failure   404 {object} pkg.HTTPError
// @Router    /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

// CreateInvoice godoc
// @Summary   Create an invoice
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.InvoiceRequest true "invoice"
// @Success   201 {object} response.InvoiceResponse
// @Failure   400 {object} pkg.HTTPError
// @Router    /invoices [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	h.save(c, "", http.StatusCreated)
}

// UpdateInvoice godoc
// @Summary   Replace an invoice
// @Tags      invoices
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id   path string true "invoice id"
// @Param     body body request.InvoiceRequest true "invoice"
// @Success   200 {object} response.InvoiceResponse
// @Router    /invoices/{id} [put]
func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	id := c.Param("id")
	if _, err := h.usecase.GetByID(c.Request.Context(), id); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.save(c, id, http.StatusOK)
}

func (h *InvoiceHandler) save(c *gin.Context, id string, status int) {
	var req request.InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	saved, err := h.usecase.Save(c.Request.Context(), req.ToEntity(id))
	if err != nil {
		h.log.Info().Err(err).Str("invoice_id", id).Msg("[invoice][handler] save failed")
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(status, response.FromInvoice(saved))
}

// DeleteInvoice godoc
// @Summary   Delete an invoice and its financial record
// @Tags      invoices
// @Security  Bearer
// @Param     id path string true "invoice id"
// @Success   204
// @Router    /invoices/{id} [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

// RevertInvoice godoc
// @Summary   Reopen the invoice behind a financial record and drop the record
// @Tags      financial-records
// @Produce   json
// @Security  Bearer
// @Param     invoice_id path string true "invoice id"
// @Success   200 {object} response.InvoiceResponse
// @Router    /financial-records/invoices/{invoice_id}/revert [post]
func (h *InvoiceHandler) RevertInvoice(c *gin.Context) {
	inv, err := h.usecase.Revert(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoice):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceValue):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL_VALUE", "Invalid invoice total value", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid invoice status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
