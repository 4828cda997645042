package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/files-manager/internal/middleware"
	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/service"
)

// FilesHandler bundles dependencies for the file endpoints.  Auth is
// only needed by GetFile, which accepts anonymous callers and so cannot
// sit behind the TokenAuth middleware.
type FilesHandler struct {
	Files *service.FileService
	Auth  *service.AuthService
}

func NewFilesHandler(files *service.FileService, auth *service.AuthService) *FilesHandler {
	return &FilesHandler{Files: files, Auth: auth}
}

// ----- DTOs -----

type uploadReq struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Data     string `json:"data"`
	ParentID uint64 `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
}

// fileResp is the metadata shape returned by every file endpoint.  The
// blob store key is deliberately absent: responses never reveal where
// bytes live on disk.
type fileResp struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Type     string `json:"type"`
	UserID   uint64 `json:"userId"`
	ParentID uint64 `json:"parentId"`
	IsPublic bool   `json:"isPublic"`
}

func toFileResp(f model.File) fileResp {
	return fileResp{
		ID:       f.ID,
		Name:     f.Name,
		Type:     f.Type,
		UserID:   f.UserID,
		ParentID: f.ParentID,
		IsPublic: f.IsPublic,
	}
}

// pathID parses the :id route parameter.  A malformed id behaves like a
// nonexistent one.
func pathID(c echo.Context) (uint64, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, service.ErrNotFound
	}
	return id, nil
}

// PostUpload creates a folder or stores an uploaded file/image.
func (h *FilesHandler) PostUpload(c echo.Context) error {
	var req uploadReq
	if err := c.Bind(&req); err != nil {
		return writeErr(c, service.ErrMissingName)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	f, err := h.Files.Upload(ctx, middleware.UserID(c), service.UploadInput{
		Name:     req.Name,
		Type:     req.Type,
		Data:     req.Data,
		ParentID: req.ParentID,
		IsPublic: req.IsPublic,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, toFileResp(f))
}

// GetShow returns the metadata of one file.
func (h *FilesHandler) GetShow(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeErr(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Files.Get(ctx, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toFileResp(f))
}

// GetIndex lists files page by page.  ?parentId filters to one folder
// (0 or absent means all files), ?page selects the zero-based page.
func (h *FilesHandler) GetIndex(c echo.Context) error {
	parentID, _ := strconv.ParseUint(c.QueryParam("parentId"), 10, 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	files, err := h.Files.List(ctx, parentID, page)
	if err != nil {
		return writeErr(c, err)
	}
	out := make([]fileResp, 0, len(files))
	for _, f := range files {
		out = append(out, toFileResp(f))
	}
	return c.JSON(http.StatusOK, out)
}

// PutPublish marks a file public.
func (h *FilesHandler) PutPublish(c echo.Context) error {
	return h.setPublic(c, true)
}

// PutUnpublish marks a file private again.
func (h *FilesHandler) PutUnpublish(c echo.Context) error {
	return h.setPublic(c, false)
}

func (h *FilesHandler) setPublic(c echo.Context, public bool) error {
	id, err := pathID(c)
	if err != nil {
		return writeErr(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f, err := h.Files.SetPublic(ctx, id, public)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, toFileResp(f))
}

// GetFile serves the raw bytes of a file.  The session token is
// optional here: public files are served to anyone, private ones only
// to their owner, and every denial looks like a missing file.
func (h *FilesHandler) GetFile(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return writeErr(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	// Resolve the token if one was sent; an invalid token just means an
	// anonymous caller, not a 401.
	userID, _ := h.Auth.Resolve(ctx, c.Request().Header.Get(middleware.TokenHeader))

	data, contentType, err := h.Files.Content(ctx, userID, id)
	if err != nil {
		return writeErr(c, err)
	}
	return c.Blob(http.StatusOK, contentType, data)
}
