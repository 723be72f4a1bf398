package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/pkg/apperrors"
	"github.com/campushq/roster/internal/pkg/dberrors"
)

// StaffRepository handles database operations for staff accounts.
type StaffRepository struct {
	db Querier
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db Querier) *StaffRepository {
	return &StaffRepository{db: db}
}

// Create inserts a new staff account. A username collision surfaces as
// apperrors.ErrUsernameAlreadyExists.
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) error {
	query := `
		INSERT INTO staff (username, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, staff.Username, staff.PasswordHash).
		Scan(&staff.ID, &staff.CreatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "staff_username_key") {
			return apperrors.ErrUsernameAlreadyExists
		}
		return fmt.Errorf("error creating staff account: %w", err)
	}

	return nil
}

// GetByUsername retrieves a staff account by username.
func (r *StaffRepository) GetByUsername(ctx context.Context, username string) (*models.Staff, error) {
	query := `
		SELECT id, username, password_hash, created_at
		FROM staff
		WHERE username = $1
	`

	var staff models.Staff
	err := r.db.QueryRow(ctx, query, username).Scan(
		&staff.ID,
		&staff.Username,
		&staff.PasswordHash,
		&staff.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStaffNotFound
		}
		return nil, fmt.Errorf("error retrieving staff account: %w", err)
	}

	return &staff, nil
}
