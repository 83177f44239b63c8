package middleware

import (
	"net/http"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"
	"mercado_erp/pkg"

	"github.com/gin-gonic/gin"
)

const sessionKey = "session"

// Authenticate requires a valid Bearer token and stores its Session in the
// request context.
func Authenticate(tokens interfaces.ITokenIssuer) gin.HandlerFunc {
	log := logger.WithComponent("auth")
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(token) == "" {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing access token", http.StatusUnauthorized))
			return
		}

		session, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			log.Debug().Err(err).Str("path", c.FullPath()).Msg("[auth][middleware] token rejected")
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Invalid access token", http.StatusUnauthorized))
			return
		}

		c.Set(sessionKey, session)
		c.Next()
	}
}

// RequireView lets the request through only when the session roles may
// open view. It must run after Authenticate.
func RequireView(view entities.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, ok := SessionFrom(c)
		if !ok {
			abort(c, pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing access token", http.StatusUnauthorized))
			return
		}
		if !entities.CanAccess(session.Roles, view) {
			abort(c, pkg.NewDomainErrorSimple("FORBIDDEN", "Access denied", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func SessionFrom(c *gin.Context) (entities.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return entities.Session{}, false
	}
	session, ok := v.(entities.Session)
	return session, ok
}

func abort(c *gin.Context, appErr *pkg.AppError) {
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
