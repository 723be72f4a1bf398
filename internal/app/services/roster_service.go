package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/app/models/dto"
	"github.com/campushq/roster/internal/pkg/apperrors"
)

// StudentStore is the student persistence surface the roster service needs.
// CreateWithFile must land the record and its file metadata atomically.
type StudentStore interface {
	CreateWithFile(ctx context.Context, student *models.Student, file *models.File) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id int64) error
}

// AttachmentStorage persists uploaded identity documents.
type AttachmentStorage interface {
	Save(fileHeader *multipart.FileHeader) (string, error)
}

// RosterService handles student record management.
type RosterService interface {
	AddStudent(ctx context.Context, form *dto.AddStudentForm, idCard *multipart.FileHeader, staffID int64) (*models.Student, error)
	ListStudents(ctx context.Context) ([]*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type rosterService struct {
	records StudentStore
	storage AttachmentStorage
	logger  zerolog.Logger
	now     func() time.Time
}

// NewRosterService creates a new roster service instance.
func NewRosterService(records StudentStore, storage AttachmentStorage, logger zerolog.Logger) RosterService {
	return &rosterService{
		records: records,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

func validateStudentFields(yearOfStudy int, cgpa float64) error {
	if yearOfStudy < 1 || yearOfStudy > models.MaxYearOfStudy {
		return apperrors.NewValidationError(fmt.Sprintf("yearOfStudy must be between 1 and %d", models.MaxYearOfStudy))
	}
	if cgpa < 0 || cgpa > 10 {
		return apperrors.NewValidationError("cgpa must be between 0 and 10")
	}
	return nil
}

// AddStudent stores the identity document, then creates the student record
// and its file metadata in one transaction. The record's reference to the
// file is non-owning: deleting the record later leaves the file in place.
func (s *rosterService) AddStudent(ctx context.Context, form *dto.AddStudentForm, idCard *multipart.FileHeader, staffID int64) (*models.Student, error) {
	if err := validateStudentFields(form.YearOfStudy, *form.Cgpa); err != nil {
		return nil, err
	}

	var (
		idCardURL *string
		file      *models.File
	)
	if idCard != nil {
		storedName, err := s.storage.Save(idCard)
		if err != nil {
			return nil, err
		}

		file = &models.File{
			FileName:     storedName,
			OriginalName: idCard.Filename,
			FileSize:     idCard.Size,
			MimeType:     idCard.Header.Get("Content-Type"),
			UploadedBy:   staffID,
		}

		url := "uploads/" + storedName
		idCardURL = &url
	}

	student := &models.Student{
		Name:           form.Name,
		RollNo:         form.RollNo,
		PhoneNo:        form.PhoneNo,
		YearOfStudy:    form.YearOfStudy,
		Department:     form.Department,
		Cgpa:           *form.Cgpa,
		IDCardURL:      idCardURL,
		LastPromotedAt: s.now(),
	}

	if err := s.records.CreateWithFile(ctx, student, file); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", student.ID).Str("rollNo", student.RollNo).Msg("Student record added")
	return student, nil
}

// ListStudents returns all records ordered by CGPA descending. The sort is
// stable so records with equal CGPA keep their insertion order.
func (s *rosterService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	students, err := s.records.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(students, func(i, j int) bool {
		return students[i].Cgpa > students[j].Cgpa
	})

	return students, nil
}

// UpdateStudent loads the record, replaces its editable fields, and writes it
// back. yearOfStudy, the attachment reference and last_promoted_at carry over
// from the loaded record; only the promotion sweep changes the year.
func (s *rosterService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	if *req.Cgpa < 0 || *req.Cgpa > 10 {
		return nil, apperrors.NewValidationError("cgpa must be between 0 and 10")
	}

	student, err := s.records.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	student.Name = req.Name
	student.RollNo = req.RollNo
	student.PhoneNo = req.PhoneNo
	student.Department = req.Department
	student.Cgpa = *req.Cgpa

	if err := s.records.Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student record updated")
	return student, nil
}

// DeleteStudent removes a record without touching its stored file.
func (s *rosterService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.records.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", id).Msg("Student record deleted")
	return nil
}
