package service

import (
	"context"

	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/queue"
)

// Storage dependencies are declared here, on the consuming side, so the
// services can be wired against MySQL/Redis/disk in main and against
// in-memory fakes in tests.  Implementations live in internal/repository,
// internal/blob and internal/queue.

// UserStore persists user records.
type UserStore interface {
	Create(ctx context.Context, email, password string) (uint64, error)
	GetByCredentials(ctx context.Context, email, password string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// FileStore persists file/folder metadata.
type FileStore interface {
	Create(ctx context.Context, f model.File) (uint64, error)
	GetByID(ctx context.Context, id uint64) (model.File, error)
	List(ctx context.Context, parentID uint64, page int) ([]model.File, error)
	SetPublic(ctx context.Context, id uint64, public bool) error
}

// SessionStore maps opaque tokens to user ids with a fixed TTL.
type SessionStore interface {
	Create(ctx context.Context, token string, userID uint64) error
	Get(ctx context.Context, token string) (uint64, error)
	Delete(ctx context.Context, token string) error
}

// BlobStore holds raw file bytes under opaque keys.
type BlobStore interface {
	Put(ctx context.Context, p []byte) (string, error)
	Get(ctx context.Context, key string) ([]byte, error)
}

// JobQueue accepts thumbnail jobs for asynchronous processing.
type JobQueue interface {
	Publish(ctx context.Context, job queue.ThumbnailJob) error
}
