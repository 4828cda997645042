package handler // handler defines http handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/files-manager/internal/service"
)

// writeErr renders a service error as its {"error": message} body with
// the matching status code.  Anything that is not a *service.Error is a
// server fault and reports 500 without leaking the internal message.
func writeErr(c echo.Context, err error) error {
	var se *service.Error
	if errors.As(err, &se) {
		return c.JSON(se.Status, echo.Map{"error": se.Message})
	}
	c.Logger().Error(err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}
