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

type FinancialRecordHandler struct {
	usecase usecase.IFinancialRecordUseCase
	log     zerolog.Logger
}

func NewFinancialRecordHandler(uc usecase.IFinancialRecordUseCase) *FinancialRecordHandler {
	return &FinancialRecordHandler{usecase: uc, log: logger.WithComponent("finance")}
}

// ListFinancialRecords godoc
// @Summary   List payable titles
// @Tags      financial-records
// @Produce   json
// @Security  Bearer
// @Param     status query string false "ALL, PENDING, PAID or OVERDUE"
// @Success   200 {array} response.FinancialRecordResponse
// @Router    /financial-records [get]
func (h *FinancialRecordHandler) ListFinancialRecords(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		appErr := mapFinancialRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecords(list))
}

// PayFinancialRecord godoc
// @Summary   Mark a title as paid
// @Tags      financial-records
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id   path string true "record id"
// @Param     body body request.PayRequest false "payment date (today when empty) and method"
// @Success   200 {object} response.FinancialRecordResponse
// @Failure   502 {object} pkg.HTTPError
// @Router    /financial-records/{id}/pay [post]
func (h *FinancialRecordHandler) PayFinancialRecord(c *gin.Context) {
	var req request.PayRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	rec, err := h.usecase.Pay(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		h.log.Warn().Err(err).Str("record_id", c.Param("id")).Msg("[finance][handler] pay failed")
		appErr := mapFinancialRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecord(rec))
}

// ReopenFinancialRecord godoc
// @Summary   Undo a payment
// @Tags      financial-records
// @Produce   json
// @Security  Bearer
// @Param     id path string true "record id"
// @Success   200 {object} response.FinancialRecordResponse
// @Router    /financial-records/{id}/reopen [post]
func (h *FinancialRecordHandler) ReopenFinancialRecord(c *gin.Context) {
	rec, err := h.usecase.Reopen(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapFinancialRecordError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromFinancialRecord(rec))
}

func mapFinancialRecordError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidFinancialRecordID), errors.Is(err, usecase.ErrInvalidFinancialStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentDate):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_DATE", "Payment date must be YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Payment method must be BOLETO, PIX, TRANSFER or CASH", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrFinancialRecordNotFound):
		return pkg.NewDomainErrorSimple("FINANCIAL_RECORD_NOT_FOUND", "Financial record not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentGatewayFailed):
		return pkg.NewDomainError("PAYMENT_PROVIDER_ERROR", "Payment provider failed", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
