package repositories

import (
	"context"
	"fmt"

	"github.com/campushq/roster/internal/app/models"
)

// FileRepository records metadata for stored identity documents. Rows are
// append-only; there is no update or delete path.
type FileRepository struct {
	db Querier
}

// NewFileRepository creates a new file repository.
func NewFileRepository(db Querier) *FileRepository {
	return &FileRepository{db: db}
}

// Create inserts a metadata row for a freshly stored file.
func (r *FileRepository) Create(ctx context.Context, file *models.File) error {
	query := `
		INSERT INTO files (file_name, original_name, file_size, mime_type, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		file.FileName,
		file.OriginalName,
		file.FileSize,
		file.MimeType,
		file.UploadedBy,
	).Scan(&file.ID, &file.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording file metadata: %w", err)
	}

	return nil
}
