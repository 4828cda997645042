package handler

import (
	"context"  // provides context with cancellation for store calls
	"net/http" // HTTP status codes and primitives
	"time"     // timeouts for store calls

	"github.com/labstack/echo/v4" // Echo framework for HTTP routing

	"github.com/iliyamo/files-manager/internal/middleware"
	"github.com/iliyamo/files-manager/internal/service"
)

// AuthHandler bundles dependencies for the session endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// GetConnect exchanges a Basic Authorization header for a session token.
func (h *AuthHandler) GetConnect(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	token, err := h.Auth.Login(ctx, c.Request().Header.Get("Authorization"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"token": token})
}

// GetDisconnect destroys the session named by the X-Token header.  This
// route is not behind TokenAuth: the handler must report 401 for a dead
// token itself, and the delete doubles as the existence check.
func (h *AuthHandler) GetDisconnect(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Auth.Logout(ctx, c.Request().Header.Get(middleware.TokenHeader)); err != nil {
		return writeErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
