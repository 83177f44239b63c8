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

type UserHandler struct {
	usecase usecase.IUserUseCase
	log     zerolog.Logger
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc, log: logger.WithComponent("settings")}
}

// ListUsers godoc
// @Summary   List operator accounts
// @Tags      settings
// @Produce   json
// @Security  Bearer
// @Success   200 {array} response.UserResponse
// @Router    /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUsers(list))
}

// CreateUser godoc
// @Summary   Create an operator account
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.UserRequest true "user"
// @Success   201 {object} response.UserResponse
// @Failure   409 {object} pkg.HTTPError
// @Router    /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req request.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info().Str("user_id", created.ID).Msg("[settings][handler] user created")
	c.JSON(http.StatusCreated, response.FromUser(created))
}

// UpdateUser godoc
// @Summary   Update an operator account; empty password keeps the current one
// @Tags      settings
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     id   path string true "user id"
// @Param     body body request.UserRequest true "user"
// @Success   200 {object} response.UserResponse
// @Router    /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req request.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), c.Param("id"), req.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromUser(updated))
}

// DeleteUser godoc
// @Summary   Delete an operator account
// @Tags      settings
// @Security  Bearer
// @Param     id path string true "user id"
// @Success   204
// @Router    /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.Status(http.StatusNoContent)
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID), errors.Is(err, usecase.ErrInvalidUser):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidUserRole):
		return pkg.NewDomainErrorSimple("INVALID_ROLE", "Invalid role", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
