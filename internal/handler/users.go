package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/files-manager/internal/middleware"
	"github.com/iliyamo/files-manager/internal/service"
)

// UsersHandler bundles dependencies for the user endpoints.
type UsersHandler struct {
	Auth *service.AuthService
}

func NewUsersHandler(auth *service.AuthService) *UsersHandler {
	return &UsersHandler{Auth: auth}
}

type registerReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// PostNew registers a user and returns its id and email.
func (h *UsersHandler) PostNew(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return writeErr(c, service.ErrMissingEmail)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	id, err := h.Auth.Register(ctx, req.Email, req.Password)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "email": req.Email})
}

// GetMe returns the identity behind the caller's session token.  The
// TokenAuth middleware already resolved it.
func (h *UsersHandler) GetMe(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Auth.CurrentUser(ctx, middleware.UserID(c))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"id": u.ID, "email": u.Email})
}
