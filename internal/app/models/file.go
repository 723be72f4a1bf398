package models

import "time"

// File records metadata for a stored identity document, based on the 'files'
// table. Rows are append-only; the stored bytes are immutable.
type File struct {
	ID           int64     `json:"id" db:"id"`
	FileName     string    `json:"fileName" db:"file_name"` // stored name under the uploads directory
	OriginalName string    `json:"originalName" db:"original_name"`
	FileSize     int64     `json:"fileSize" db:"file_size"`
	MimeType     string    `json:"mimeType" db:"mime_type"`
	UploadedBy   int64     `json:"uploadedBy" db:"uploaded_by"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}
