package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/pkg/apperrors"
)

// StudentRepository handles database operations for student records.
type StudentRepository struct {
	db Querier
}

// NewStudentRepository creates a new student repository.
func NewStudentRepository(db Querier) *StudentRepository {
	return &StudentRepository{db: db}
}

// Create inserts a new student record.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, roll_no, phone_no, year_of_study, department, cgpa, id_card_url, last_promoted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.Name,
		student.RollNo,
		student.PhoneNo,
		student.YearOfStudy,
		student.Department,
		student.Cgpa,
		student.IDCardURL,
		student.LastPromotedAt,
	).Scan(&student.ID)
	if err != nil {
		return fmt.Errorf("error creating student record: %w", err)
	}

	return nil
}

// GetByID retrieves a student record by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, roll_no, phone_no, year_of_study, department, cgpa, id_card_url, last_promoted_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.RollNo,
		&student.PhoneNo,
		&student.YearOfStudy,
		&student.Department,
		&student.Cgpa,
		&student.IDCardURL,
		&student.LastPromotedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student record: %w", err)
	}

	return &student, nil
}

// GetAll retrieves every student record in insertion order.
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, roll_no, phone_no, year_of_study, department, cgpa, id_card_url, last_promoted_at
		FROM students
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing student records: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.RollNo,
			&student.PhoneNo,
			&student.YearOfStudy,
			&student.Department,
			&student.Cgpa,
			&student.IDCardURL,
			&student.LastPromotedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning student record: %w", err)
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update replaces the editable fields of a record. year_of_study is
// deliberately absent: only the promotion sweep may change it.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	query := `
		UPDATE students
		SET name = $1, roll_no = $2, phone_no = $3, department = $4, cgpa = $5
		WHERE id = $6
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.Name,
		student.RollNo,
		student.PhoneNo,
		student.Department,
		student.Cgpa,
		student.ID,
	)
	if err != nil {
		return fmt.Errorf("error updating student record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// UpdatePromotion advances year_of_study and last_promoted_at for one record.
// Last write wins against a concurrent edit of the same record.
func (r *StudentRepository) UpdatePromotion(ctx context.Context, id int64, yearOfStudy int, promotedAt time.Time) error {
	query := `
		UPDATE students
		SET year_of_study = $1, last_promoted_at = $2
		WHERE id = $3
	`

	cmdTag, err := r.db.Exec(ctx, query, yearOfStudy, promotedAt, id)
	if err != nil {
		return fmt.Errorf("error promoting student record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record. The referenced file, if any, is left in
// place: the attachment reference is non-owning.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student record: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}
