package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
	"net/http" // HTTP status codes for responses

	"github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

	"github.com/iliyamo/files-manager/internal/service"
)

// TokenHeader is the request header carrying the session token.
const TokenHeader = "X-Token"

// TokenAuth returns an Echo middleware that resolves the X-Token header
// through the auth service and injects the owning user id into the
// request context.  Resolution happens exactly once per request; every
// handler behind this middleware reads the identity via UserID().
// Missing, unknown and expired tokens all produce the same 401 body.
func TokenAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := c.Request().Header.Get(TokenHeader)
			uid, err := auth.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": service.ErrUnauthorized.Message})
			}
			c.Set("user_id", uid)
			return next(c)
		}
	}
}

// UserID extracts the identity placed in the context by TokenAuth.  It
// returns 0 when the request went through no auth middleware, which is
// also the anonymous id used by the public content endpoint.
func UserID(c echo.Context) uint64 {
	if v, ok := c.Get("user_id").(uint64); ok {
		return v
	}
	return 0
}
