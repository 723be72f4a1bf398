package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/db"
)

// RosterStore is the student persistence surface for the roster service. It
// delegates single-statement operations to the plain repositories and owns
// the transaction boundary for writes that must land together.
type RosterStore struct {
	database *db.PostgresDB
	students *StudentRepository
}

// NewRosterStore creates a roster store over the shared database handle.
func NewRosterStore(database *db.PostgresDB) *RosterStore {
	return &RosterStore{
		database: database,
		students: NewStudentRepository(database.Pool),
	}
}

// CreateWithFile inserts the file metadata row and the student record in one
// transaction, so a failed record insert leaves no orphan metadata row. A nil
// file means a record without an attachment.
func (s *RosterStore) CreateWithFile(ctx context.Context, student *models.Student, file *models.File) error {
	if file == nil {
		return s.students.Create(ctx, student)
	}

	return s.database.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if err := NewFileRepository(tx).Create(ctx, file); err != nil {
			return err
		}
		return NewStudentRepository(tx).Create(ctx, student)
	})
}

// GetAll retrieves every student record in insertion order.
func (s *RosterStore) GetAll(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

// GetByID retrieves a student record by ID.
func (s *RosterStore) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// Update replaces the editable fields of a record.
func (s *RosterStore) Update(ctx context.Context, student *models.Student) error {
	return s.students.Update(ctx, student)
}

// Delete removes a student record.
func (s *RosterStore) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}
