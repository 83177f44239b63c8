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

type DashboardHandler struct {
	dashboard usecase.IDashboardUseCase
	insights  usecase.IInsightUseCase
	log       zerolog.Logger
}

func NewDashboardHandler(dashboard usecase.IDashboardUseCase, insights usecase.IInsightUseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, insights: insights, log: logger.WithComponent("dashboard")}
}

// GetSummary godoc
// @Summary   Accounts-payable summary for a due-date window
// @Tags      dashboard
// @Produce   json
// @Security  Bearer
// @Param     start_date query string false "YYYY-MM-DD"
// @Param     end_date   query string false "YYYY-MM-DD"
// @Success   200 {object} response.DashboardResponse
// @Router    /dashboard [get]
func (h *DashboardHandler) GetSummary(c *gin.Context) {
	summary, err := h.dashboard.Summarize(c.Request.Context(), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		h.log.Error().Err(err).Msg("[dashboard][handler] summarize failed")
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromDashboard(summary))
}

// Analyze godoc
// @Summary   AI summary of the payables
// @Tags      dashboard
// @Produce   json
// @Security  Bearer
// @Success   200 {object} response.InsightResponse
// @Router    /dashboard/insights [get]
func (h *DashboardHandler) Analyze(c *gin.Context) {
	answer, err := h.insights.Analyze(c.Request.Context())
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.InsightResponse{Answer: answer})
}

// Ask godoc
// @Summary   Free-form question about the payables
// @Tags      dashboard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.AskRequest true "question"
// @Success   200 {object} response.InsightResponse
// @Router    /dashboard/insights [post]
func (h *DashboardHandler) Ask(c *gin.Context) {
	var req request.AskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	answer, err := h.insights.Ask(c.Request.Context(), req.Question)
	if err != nil {
		appErr := mapDashboardError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.InsightResponse{Answer: answer})
}

func mapDashboardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyQuestion):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Question is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
