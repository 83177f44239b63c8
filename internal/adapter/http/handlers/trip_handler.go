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

type TripHandler struct {
	usecase usecase.ITripUseCase
}

func NewTripHandler(uc usecase.ITripUseCase) *TripHandler {
	return &TripHandler{usecase: uc}
}

// ListTrips godoc
// @Summary   List trips, newest first
// @Tags      logistics
// @Produce   json
// @Security  Bearer
// @Success   200 {array} response.TripResponse
// @Router    /trips [get]
func (h *TripHandler) ListTrips(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapTripError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTrips(list))
}

// CreateTrip godoc
// @Summary   Register a trip
// @Tags      logistics
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.TripRequest true "trip"
// @Success   201 {object} response.TripResponse
// @Router    /trips [post]
func (h *TripHandler) CreateTrip(c *gin.Context) {
	var req request.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToEntity())
	if err != nil {
		appErr := mapTripError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromTrip(created))
}

func mapTripError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidTrip) {
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
