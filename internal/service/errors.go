// Package service implements the core of the file manager: credential
// and session handling (AuthService) and file/folder metadata rules
// (FileService).  Handlers stay thin adapters over these types.
package service

import "net/http"

// Error is a failure the HTTP layer can report as-is: the message goes
// into the {"error": ...} body and Status becomes the response code.
// Every validation branch gets its own value so callers can tell the
// failures apart.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	ErrUnauthorized    = &Error{http.StatusUnauthorized, "Unauthorized"}
	ErrMissingEmail    = &Error{http.StatusBadRequest, "Missing email"}
	ErrMissingPassword = &Error{http.StatusBadRequest, "Missing password"}
	ErrAlreadyExists   = &Error{http.StatusBadRequest, "Already exist"}
	ErrMissingName     = &Error{http.StatusBadRequest, "Missing name"}
	ErrMissingType     = &Error{http.StatusBadRequest, "Missing type"}
	ErrMissingData     = &Error{http.StatusBadRequest, "Missing data"}
	ErrParentNotFound  = &Error{http.StatusBadRequest, "Parent not found"}
	ErrParentNotFolder = &Error{http.StatusBadRequest, "Parent is not a folder"}
	// ErrNotFound is also returned for private files requested by a
	// non-owner, so absence and denied access are indistinguishable.
	ErrNotFound        = &Error{http.StatusNotFound, "Not found"}
	ErrFolderNoContent = &Error{http.StatusBadRequest, "A folder doesn't have content"}
)
