package filestorage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/campushq/roster/internal/pkg/apperrors"
)

func fileHeader(t *testing.T, filename, mimeType string, size int64) *multipart.FileHeader {
	t.Helper()
	return &multipart.FileHeader{
		Filename: filename,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{mimeType}},
	}
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		mimeType string
		size     int64
		wantErr  error
	}{
		{name: "png ok", filename: "card.png", mimeType: "image/png", size: 1024},
		{name: "jpeg ok", filename: "card.jpeg", mimeType: "image/jpeg", size: 1024},
		{name: "jpg ok", filename: "card.jpg", mimeType: "image/jpeg", size: 1024},
		{name: "pdf ok", filename: "card.pdf", mimeType: "application/pdf", size: 1024},
		{name: "4 MiB allowed", filename: "card.png", mimeType: "image/png", size: 4 << 20},
		{name: "6 MiB rejected", filename: "card.png", mimeType: "image/png", size: 6 << 20, wantErr: apperrors.ErrFileTooLarge},
		{name: "just over cap", filename: "card.png", mimeType: "image/png", size: (5 << 20) + 1, wantErr: apperrors.ErrFileTooLarge},
		{name: "bad extension", filename: "card.gif", mimeType: "image/png", size: 1024, wantErr: apperrors.ErrUnsupportedFileType},
		{name: "bad mime", filename: "card.png", mimeType: "image/gif", size: 1024, wantErr: apperrors.ErrUnsupportedFileType},
		{name: "both bad", filename: "card.exe", mimeType: "application/octet-stream", size: 1024, wantErr: apperrors.ErrUnsupportedFileType},
		{name: "no extension", filename: "card", mimeType: "image/png", size: 1024, wantErr: apperrors.ErrUnsupportedFileType},
		{name: "uppercase extension", filename: "card.PNG", mimeType: "image/png", size: 1024},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(fileHeader(t, tt.filename, tt.mimeType, tt.size))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateUpload() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// uploadedHeader builds a real multipart upload so fileHeader.Open works.
func uploadedHeader(t *testing.T, filename, mimeType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", `form-data; name="idCard"; filename="`+filename+`"`)
	partHeader.Set("Content-Type", mimeType)

	part, err := writer.CreatePart(partHeader)
	if err != nil {
		t.Fatalf("CreatePart() error = %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("part.Write() error = %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("writer.Close() error = %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/add-contact", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	_, header, err := req.FormFile("idCard")
	if err != nil {
		t.Fatalf("FormFile() error = %v", err)
	}
	return header
}

func TestSaveAndResolve(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	content := []byte("fake png bytes")
	header := uploadedHeader(t, "id card.png", "image/png", content)

	storedName, err := storage.Save(header)
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if !strings.HasSuffix(storedName, "-id_card.png") {
		t.Errorf("stored name %q does not keep a sanitized original name", storedName)
	}
	if storedName != filepath.Base(storedName) {
		t.Errorf("stored name %q contains path separators", storedName)
	}

	fullPath, err := storage.Resolve(storedName)
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("stored content = %q, want %q", got, content)
	}
}

func TestSaveRejectsInvalidUploads(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	header := uploadedHeader(t, "malware.exe", "application/octet-stream", []byte("nope"))
	if _, err := storage.Save(header); !errors.Is(err, apperrors.ErrUnsupportedFileType) {
		t.Errorf("Save() error = %v, want ErrUnsupportedFileType", err)
	}
}

func TestResolveUnknownAndTraversal(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage() error = %v", err)
	}

	tests := []struct {
		name string
		ref  string
	}{
		{name: "unknown file", ref: "123-missing.png"},
		{name: "empty", ref: ""},
		{name: "dotdot", ref: "../etc/passwd"},
		{name: "nested path", ref: "sub/dir.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := storage.Resolve(tt.ref); !errors.Is(err, apperrors.ErrFileNotFound) {
				t.Errorf("Resolve(%q) error = %v, want ErrFileNotFound", tt.ref, err)
			}
		})
	}
}
