package handler // declare the package name; contains HTTP handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/files-manager/internal/repository"
)

// AppHandler serves the service-level endpoints: /status reports
// whether both backing stores answer, /stats reports collection sizes.
// Monitoring systems poll the former; the latter exists for parity with
// the deployment this service replaces.
type AppHandler struct {
	DB    *sql.DB
	RDB   *redis.Client
	Users *repository.UserRepo
	Files *repository.FileRepo
}

func NewAppHandler(db *sql.DB, rdb *redis.Client, users *repository.UserRepo, files *repository.FileRepo) *AppHandler {
	return &AppHandler{DB: db, RDB: rdb, Users: users, Files: files}
}

// GetStatus reports liveness of Redis and MySQL with a 200 regardless;
// the body says which side is down.
func (h *AppHandler) GetStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	return c.JSON(http.StatusOK, echo.Map{
		"redis": h.RDB.Ping(ctx).Err() == nil,
		"db":    h.DB.PingContext(ctx) == nil,
	})
}

// GetStats returns the number of users and files.
func (h *AppHandler) GetStats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	users, err := h.Users.Count(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	files, err := h.Files.Count(ctx)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"users": users, "files": files})
}
