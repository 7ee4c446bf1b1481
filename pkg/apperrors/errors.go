package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode identifies an error class independently of its message.
type ErrorCode string

// AppError is the application error carried from services up to handlers.
// HTTPCode and the wrapped cause are never serialized.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches a cause to a new AppError so errors.Is/As keep working
// through the chain.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

func (e *AppError) WithError(err error) *AppError {
	clone := *e
	clone.Err = err
	return &clone
}

// Is and As re-export the stdlib helpers so callers only import this package.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// Predefined errors.
var (
	// Authentication. The credentials message is deliberately identical for
	// an unknown email and a wrong password.
	ErrInvalidCredentials = New(CodeInvalidCredentials, "Invalid credentials", http.StatusUnauthorized)
	ErrAccessTokenMissing = New(CodeUnauthorized, "Access token required", http.StatusUnauthorized)
	ErrInvalidToken       = New(CodeInvalidToken, "Invalid or expired token", http.StatusForbidden)
	ErrForbidden          = New(CodeForbidden, "Access denied", http.StatusForbidden)

	// Users. Duplicate unique fields surface as 400 to the client.
	ErrUserNotFound        = New(CodeUserNotFound, "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists  = New(CodeEmailAlreadyExists, "Email already registered", http.StatusBadRequest)
	ErrMobileAlreadyExists = New(CodeMobileAlreadyExists, "Mobile number already registered", http.StatusBadRequest)
	ErrWeakPassword        = New(CodeWeakPassword, "Password must be at least 6 characters", http.StatusBadRequest)
	ErrInvalidOTP          = New(CodeInvalidOTP, "OTP verification failed", http.StatusBadRequest)

	// Company profiles
	ErrCompanyNotFound      = New(CodeCompanyNotFound, "Company profile not found", http.StatusNotFound)
	ErrCompanyAlreadyExists = New(CodeCompanyAlreadyExists, "Company already registered for this user", http.StatusBadRequest)

	// Uploads
	ErrUploadNotFound    = New(CodeUploadNotFound, "Upload not found", http.StatusNotFound)
	ErrInvalidUploadType = New(CodeInvalidUploadType, "Upload type must be logo, banner or video", http.StatusBadRequest)
	ErrFileTooLarge      = New(CodeFileTooLarge, "File size exceeds the allowed limit", http.StatusBadRequest)

	// Validation
	ErrValidationFailed = New(CodeValidationFailed, "Validation failed", http.StatusBadRequest)
)

// ValidationError returns the shared validation error with field details.
func ValidationError(details interface{}) *AppError {
	return ErrValidationFailed.WithDetails(details)
}

func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalError, "Internal server error", http.StatusInternalServerError)
}

// DependencyError names the failing dependency class without leaking the
// underlying error to the client.
func DependencyError(dependency string, err error) *AppError {
	return Wrap(err, CodeDependencyError, fmt.Sprintf("%s unavailable", dependency), http.StatusInternalServerError)
}

func NewBadRequestError(message string) *AppError {
	return New(CodeValidationFailed, message, http.StatusBadRequest)
}

func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

func NewNotFoundError(message string) *AppError {
	return New(CodeUserNotFound, message, http.StatusNotFound)
}

func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusBadRequest)
}
