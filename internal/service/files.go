package service

import (
	"context"
	"encoding/base64"
	"errors"
	"log"
	"mime"
	"path/filepath"
	"strings"

	"github.com/iliyamo/files-manager/internal/blob"
	"github.com/iliyamo/files-manager/internal/model"
	"github.com/iliyamo/files-manager/internal/queue"
	"github.com/iliyamo/files-manager/internal/repository"
)

// FileService enforces the file/folder metadata rules: hierarchy,
// visibility and the blob-before-metadata write order on upload.
type FileService struct {
	Files FileStore
	Blobs BlobStore
	Jobs  JobQueue
}

func NewFileService(files FileStore, blobs BlobStore, jobs JobQueue) *FileService {
	return &FileService{Files: files, Blobs: blobs, Jobs: jobs}
}

// UploadInput is the decoded request body of POST /files.  Data carries
// base64-encoded content and must be present for anything but a folder.
type UploadInput struct {
	Name     string
	Type     string
	Data     string
	ParentID uint64
	IsPublic bool
}

// Upload validates in, writes the blob for non-folders, persists the
// metadata and, for images, enqueues a thumbnail job.  The enqueue is
// fire-and-forget: a broker failure is logged and the upload still
// succeeds.
func (s *FileService) Upload(ctx context.Context, userID uint64, in UploadInput) (model.File, error) {
	if strings.TrimSpace(in.Name) == "" {
		return model.File{}, ErrMissingName
	}
	if !model.ValidFileType(in.Type) {
		return model.File{}, ErrMissingType
	}
	if in.Type != model.TypeFolder && in.Data == "" {
		return model.File{}, ErrMissingData
	}
	if in.ParentID != 0 {
		parent, err := s.Files.GetByID(ctx, in.ParentID)
		if errors.Is(err, repository.ErrNotFound) {
			return model.File{}, ErrParentNotFound
		}
		if err != nil {
			return model.File{}, err
		}
		if parent.Type != model.TypeFolder {
			return model.File{}, ErrParentNotFolder
		}
	}

	f := model.File{
		Name:     in.Name,
		Type:     in.Type,
		UserID:   userID,
		ParentID: in.ParentID,
		IsPublic: in.IsPublic,
	}

	if in.Type != model.TypeFolder {
		data, err := base64.StdEncoding.DecodeString(in.Data)
		if err != nil {
			return model.File{}, ErrMissingData
		}
		key, err := s.Blobs.Put(ctx, data)
		if err != nil {
			return model.File{}, err
		}
		f.LocalPath = key
	}

	id, err := s.Files.Create(ctx, f)
	if err != nil {
		return model.File{}, err
	}
	f.ID = id

	if f.Type == model.TypeImage {
		job := queue.ThumbnailJob{FileID: f.ID, UserID: f.UserID}
		if err := s.Jobs.Publish(ctx, job); err != nil {
			log.Printf("file-service: enqueue thumbnail job for file %d failed: %v", f.ID, err)
		}
	}
	return f, nil
}

// Get returns the metadata of a single file.
func (s *FileService) Get(ctx context.Context, id uint64) (model.File, error) {
	f, err := s.Files.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.File{}, ErrNotFound
	}
	return f, err
}

// List returns one page of file records.  parentID 0 means all files;
// a nonzero value restricts the page to direct children of that folder.
func (s *FileService) List(ctx context.Context, parentID uint64, page int) ([]model.File, error) {
	return s.Files.List(ctx, parentID, page)
}

// SetPublic flips only the visibility flag and returns the updated
// record.
func (s *FileService) SetPublic(ctx context.Context, id uint64, public bool) (model.File, error) {
	f, err := s.Files.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return model.File{}, ErrNotFound
	}
	if err != nil {
		return model.File{}, err
	}
	if err := s.Files.SetPublic(ctx, id, public); err != nil {
		return model.File{}, err
	}
	f.IsPublic = public
	return f, nil
}

// Content returns the raw bytes of a file plus a content-type hint
// derived from the name's extension.  userID is 0 for anonymous
// callers.  A private file requested by anyone but its owner reports
// ErrNotFound, exactly like a file that does not exist.
func (s *FileService) Content(ctx context.Context, userID, id uint64) ([]byte, string, error) {
	f, err := s.Files.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	if !f.IsPublic && f.UserID != userID {
		return nil, "", ErrNotFound
	}
	if f.Type == model.TypeFolder {
		return nil, "", ErrFolderNoContent
	}
	data, err := s.Blobs.Get(ctx, f.LocalPath)
	if errors.Is(err, blob.ErrNotFound) {
		return nil, "", ErrNotFound
	}
	if err != nil {
		return nil, "", err
	}
	return data, contentType(f.Name), nil
}

// contentType maps a file name to a MIME type by extension, falling
// back to a generic binary type.
func contentType(name string) string {
	if ct := mime.TypeByExtension(filepath.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
