package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/iliyamo/files-manager/internal/model"
)

// PageSize is the fixed number of records returned per list page.
const PageSize = 20

type FileRepo struct{ DB *sql.DB }

func NewFileRepo(db *sql.DB) *FileRepo { return &FileRepo{DB: db} }

// Create inserts a file record and returns its ID.
func (r *FileRepo) Create(ctx context.Context, f model.File) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO files (name, type, user_id, parent_id, is_public, local_path) VALUES (?,?,?,?,?,?)",
		f.Name, f.Type, f.UserID, f.ParentID, f.IsPublic, f.LocalPath)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

const fileColumns = "id,name,type,user_id,parent_id,is_public,local_path,created_at"

func scanFile(row *sql.Row) (model.File, error) {
	var f model.File
	err := row.Scan(&f.ID, &f.Name, &f.Type, &f.UserID, &f.ParentID, &f.IsPublic, &f.LocalPath, &f.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.File{}, ErrNotFound
	}
	return f, err
}

// GetByID fetches a file by id.
func (r *FileRepo) GetByID(ctx context.Context, id uint64) (model.File, error) {
	return scanFile(r.DB.QueryRowContext(ctx,
		"SELECT "+fileColumns+" FROM files WHERE id=? LIMIT 1", id))
}

// GetByIDAndUser fetches a file only when it belongs to the given user.
// The worker uses this to refuse jobs that name another user's file.
func (r *FileRepo) GetByIDAndUser(ctx context.Context, id, userID uint64) (model.File, error) {
	return scanFile(r.DB.QueryRowContext(ctx,
		"SELECT "+fileColumns+" FROM files WHERE id=? AND user_id=? LIMIT 1", id, userID))
}

// List returns one page of files ordered by id.  parentID 0 means no
// filter; a nonzero parentID restricts results to that folder.  Pages
// are PageSize records, page 0 being the first.
func (r *FileRepo) List(ctx context.Context, parentID uint64, page int) ([]model.File, error) {
	if page < 0 {
		page = 0
	}
	query := "SELECT " + fileColumns + " FROM files"
	args := []any{}
	if parentID != 0 {
		query += " WHERE parent_id=?"
		args = append(args, parentID)
	}
	query += " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, PageSize, page*PageSize)

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []model.File{}
	for rows.Next() {
		var f model.File
		if err := rows.Scan(&f.ID, &f.Name, &f.Type, &f.UserID, &f.ParentID, &f.IsPublic, &f.LocalPath, &f.CreatedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

// SetPublic updates only the is_public flag.  ErrNotFound is returned
// when no row matched the id.
func (r *FileRepo) SetPublic(ctx context.Context, id uint64, public bool) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE files SET is_public=? WHERE id=?", public, id)
	if err != nil {
		return err
	}
	// RowsAffected is 0 both for a missing row and for a no-op update,
	// so existence is checked separately by callers before updating.
	_, err = res.RowsAffected()
	return err
}

// Count returns the total number of files, for the /stats endpoint.
func (r *FileRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM files").Scan(&n)
	return n, err
}
