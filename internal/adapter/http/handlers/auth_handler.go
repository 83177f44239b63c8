package handlers

import (
	"errors"
	"net/http"

	"mercado_erp/internal/adapter/http/dto/request"
	"mercado_erp/internal/adapter/http/dto/response"
	"mercado_erp/internal/adapter/http/middleware"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase"
	"mercado_erp/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
	log     zerolog.Logger
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc, log: logger.WithComponent("auth")}
}

// Login godoc
// @Summary  Sign in with username and password
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body request.LoginRequest true "credentials"
// @Success  200 {object} response.LoginResponse
// @Failure  401 {object} pkg.HTTPError
// @Router   /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	token, session, err := h.usecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.log.Info().Str("username", req.Username).Err(err).Msg("[auth][handler] login failed")
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.LoginResponse{Token: token, Session: response.FromSession(session)})
}

// Me godoc
// @Summary   Current session and reachable views
// @Tags      auth
// @Produce   json
// @Security  Bearer
// @Success   200 {object} response.SessionResponse
// @Router    /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing access token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(session))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
