package routes

import (
	"mercado_erp/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathAuth = "/auth"
	PathMe   = "/me"
)

func addAuthRoutes(rg *gin.RouterGroup, h *handlers.AuthHandler) {
	auth := rg.Group(PathAuth)
	{
		auth.POST("/login", h.Login)
	}
}
