// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow higher layers such as
// services to distinguish between different failure scenarios without
// depending on driver-specific errors. For example, ErrNotFound is
// returned for a missing row as well as for a missing or expired
// session key, so callers never see sql.ErrNoRows or redis.Nil.
package repository

import "errors"

// ErrNotFound is returned when the requested record does not exist.
// For sessions it also covers keys that have expired, since Redis
// deletes those on its own.
var ErrNotFound = errors.New("not found")
