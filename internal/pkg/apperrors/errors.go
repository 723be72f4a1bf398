package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrTokenMissing       = errors.New("no token provided")
)

// Staff errors
var (
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrStaffNotFound         = errors.New("staff account not found")
)

// Student record errors
var (
	ErrStudentNotFound = errors.New("student record not found")
)

// Attachment errors
var (
	ErrUnsupportedFileType = errors.New("only jpeg, jpg, png and pdf files are allowed")
	ErrFileTooLarge        = errors.New("file exceeds the maximum allowed size")
	ErrFileNotFound        = errors.New("file not found")
)

// Validation errors
var (
	ErrValidationFailed = errors.New("validation failed")
)

// CustomError carries an underlying sentinel plus a caller-facing message.
type CustomError struct {
	Err     error
	Message string
}

// Error implements the error interface.
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap exposes the sentinel to errors.Is.
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewValidationError wraps ErrValidationFailed with a specific message.
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}
