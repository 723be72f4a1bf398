package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campushq/roster/internal/app/models"
	"github.com/campushq/roster/internal/pkg/apperrors"
	"github.com/campushq/roster/internal/pkg/auth"
)

// StaffStore is the staff persistence surface the auth service needs.
type StaffStore interface {
	Create(ctx context.Context, staff *models.Staff) error
	GetByUsername(ctx context.Context, username string) (*models.Staff, error)
}

// AuthService handles staff registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*models.Staff, error)
	Login(ctx context.Context, username, password string) (string, error)
}

type authService struct {
	staffRepo  StaffStore
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new auth service instance.
func NewAuthService(staffRepo StaffStore, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authService{
		staffRepo:  staffRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a staff account with an irreversibly hashed password.
// The plaintext is never persisted or logged.
func (s *authService) Register(ctx context.Context, username, password string) (*models.Staff, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, apperrors.NewValidationError("username cannot be empty")
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password cannot be empty")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	staff := &models.Staff{
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.staffRepo.Create(ctx, staff); err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Int64("staffID", staff.ID).Msg("Staff account registered")
	return staff, nil
}

// Login verifies credentials and issues a bearer token. An unknown username
// and a wrong password produce the same failure so usernames cannot be
// enumerated.
func (s *authService) Login(ctx context.Context, username, password string) (string, error) {
	staff, err := s.staffRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrStaffNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.CheckPassword(staff.PasswordHash, password) {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.Generate(staff.ID)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.Info().Str("username", username).Int64("staffID", staff.ID).Msg("Staff logged in")
	return token, nil
}
