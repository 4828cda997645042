package model

import "time"

// File type values accepted by the upload endpoint. Folders carry no
// bytes and exist purely for hierarchy; files and images own a blob,
// and images additionally get thumbnails generated asynchronously.
const (
	TypeFolder = "folder"
	TypeFile   = "file"
	TypeImage  = "image"
)

// ValidFileType reports whether t is one of the three accepted types.
func ValidFileType(t string) bool {
	return t == TypeFolder || t == TypeFile || t == TypeImage
}

// File represents a row in the `files` table.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name, e.g. "report.pdf".
//  Type      – one of folder/file/image.
//  UserID    – owner; private content is only served to this user.
//  ParentID  – containing folder id, 0 for root.
//  IsPublic  – whether content is readable without a session.
//  LocalPath – blob store key for the raw bytes; empty for folders.
//              Never serialized into responses.
//  CreatedAt – timestamp of creation.
type File struct {
	ID        uint64    // files.id
	Name      string    // files.name
	Type      string    // files.type
	UserID    uint64    // files.user_id
	ParentID  uint64    // files.parent_id (0 = root)
	IsPublic  bool      // files.is_public
	LocalPath string    // files.local_path (empty for folders)
	CreatedAt time.Time // files.created_at
}
