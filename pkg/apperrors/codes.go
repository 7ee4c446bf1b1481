package apperrors

// Error codes grouped by domain.
const (
	// Authentication and authorization
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeWeakPassword     ErrorCode = "WEAK_PASSWORD"
	CodeInvalidOTP       ErrorCode = "INVALID_OTP"

	// Resources
	CodeUserNotFound    ErrorCode = "USER_NOT_FOUND"
	CodeCompanyNotFound ErrorCode = "COMPANY_NOT_FOUND"
	CodeUploadNotFound  ErrorCode = "UPLOAD_NOT_FOUND"

	// Business logic
	CodeConflict              ErrorCode = "CONFLICT"
	CodeEmailAlreadyExists    ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeMobileAlreadyExists   ErrorCode = "MOBILE_ALREADY_EXISTS"
	CodeCompanyAlreadyExists  ErrorCode = "COMPANY_ALREADY_EXISTS"
	CodeInvalidUploadType     ErrorCode = "INVALID_UPLOAD_TYPE"
	CodeFileTooLarge          ErrorCode = "FILE_TOO_LARGE"

	// System
	CodeInternalError   ErrorCode = "INTERNAL_ERROR"
	CodeDependencyError ErrorCode = "DEPENDENCY_ERROR"
)
