//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"

	"kaapi/backend/internal/model"
	"kaapi/backend/pkg/snowflake"
)

// UploadRepository stores immutable records of ingestion events.
type UploadRepository interface {
	Create(ctx context.Context, file model.UploadedFile) (model.UploadedFile, error)
	// List returns upload history ordered by upload time, newest first.
	List(ctx context.Context) ([]model.UploadedFile, error)
}

type uploadRepository struct {
	db *sql.DB
}

func NewUploadRepository(db *sql.DB) UploadRepository {
	return &uploadRepository{db: db}
}

func (r *uploadRepository) Create(ctx context.Context, file model.UploadedFile) (model.UploadedFile, error) {
	file.ID = snowflake.NextID()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO uploaded_files (id, filename, storage_path, file_type, upload_date, processed, row_count)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, file.ID, file.Filename, file.StoragePath, string(file.Kind),
		formatTime(file.UploadedAt), boolToInt(file.Processed), file.RowCount)
	if err != nil {
		return model.UploadedFile{}, err
	}
	return file, nil
}

func (r *uploadRepository) List(ctx context.Context) ([]model.UploadedFile, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, filename, storage_path, file_type, upload_date, processed, row_count
		FROM uploaded_files ORDER BY upload_date DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []model.UploadedFile
	for rows.Next() {
		var f model.UploadedFile
		var kind, uploadedAt string
		var processed int
		if err := rows.Scan(&f.ID, &f.Filename, &f.StoragePath, &kind, &uploadedAt, &processed, &f.RowCount); err != nil {
			return nil, err
		}
		f.Kind = model.FileKind(kind)
		f.UploadedAt, _ = parseTime(uploadedAt)
		f.Processed = processed != 0
		files = append(files, f)
	}
	return files, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
