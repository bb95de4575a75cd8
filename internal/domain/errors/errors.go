package errors

import (
	"net/http"

	"smokebreak/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Is matches errors carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// WithMessage replaces the user-facing message, keeping the code
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
		details:   e.details,
	}
}

// Predefined error types
var (
	// User-related errors
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
		"",
	)

	ErrUserUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"USER_UPDATE_FAILED",
		"Failed to update user",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrEmailAlreadyExists = NewBaseError(
		http.StatusConflict,
		"EMAIL_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Sign in required",
		"",
	)

	ErrTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_INVALID",
		"Invalid or expired token",
		"",
	)

	ErrGoogleSignInFailed = NewBaseError(
		http.StatusUnauthorized,
		"GOOGLE_SIGN_IN_FAILED",
		"Google sign-in failed",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrIdentityProviderFailed = NewBaseError(
		http.StatusBadGateway,
		"IDENTITY_PROVIDER_FAILED",
		"Authentication service is unavailable",
		"",
	)

	// Group-related errors
	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"Group not found",
		"",
	)

	ErrGroupInactive = NewBaseError(
		http.StatusConflict,
		"GROUP_INACTIVE",
		"This group is no longer active",
		"",
	)

	ErrGroupFull = NewBaseError(
		http.StatusConflict,
		"GROUP_FULL",
		"This group has reached its member limit",
		"",
	)

	ErrInviteCodeInvalid = NewBaseError(
		http.StatusNotFound,
		"INVITE_CODE_INVALID",
		"Invalid invite code",
		"",
	)

	ErrAlreadyGroupMember = NewBaseError(
		http.StatusConflict,
		"ALREADY_GROUP_MEMBER",
		"You are already a member of this group",
		"",
	)

	ErrNotGroupMember = NewBaseError(
		http.StatusForbidden,
		"NOT_GROUP_MEMBER",
		"You are not a member of this group",
		"",
	)

	ErrNotGroupAdmin = NewBaseError(
		http.StatusForbidden,
		"NOT_GROUP_ADMIN",
		"Only group admins can do this",
		"",
	)

	ErrNotGroupCreator = NewBaseError(
		http.StatusForbidden,
		"NOT_GROUP_CREATOR",
		"Only the group creator can do this",
		"",
	)

	ErrMemberNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBER_NOT_FOUND",
		"Member not found",
		"",
	)

	ErrLastAdmin = NewBaseError(
		http.StatusConflict,
		"LAST_ADMIN",
		"A group needs at least one admin",
		"",
	)

	// Invitation-related errors
	ErrInvitationNotFound = NewBaseError(
		http.StatusNotFound,
		"INVITATION_NOT_FOUND",
		"Break invitation not found",
		"",
	)

	ErrInvitationClosed = NewBaseError(
		http.StatusConflict,
		"INVITATION_CLOSED",
		"This break invitation is no longer open",
		"",
	)

	ErrInvalidStatusTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"This break invitation cannot change to the requested status",
		"",
	)

	ErrNotInvitationInitiator = NewBaseError(
		http.StatusForbidden,
		"NOT_INVITATION_INITIATOR",
		"Only the initiator can do this",
		"",
	)

	ErrDailyBreakLimit = NewBaseError(
		http.StatusTooManyRequests,
		"DAILY_BREAK_LIMIT",
		"You have reached your daily break limit",
		"",
	)

	// Session-related errors
	ErrSessionNotFound = NewBaseError(
		http.StatusNotFound,
		"SESSION_NOT_FOUND",
		"Break session not found",
		"",
	)

	ErrNotSessionParticipant = NewBaseError(
		http.StatusForbidden,
		"NOT_SESSION_PARTICIPANT",
		"Only participants can rate this break",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// Store-related errors
	ErrRemoteStoreFailed = NewBaseError(
		http.StatusBadGateway,
		"REMOTE_STORE_FAILED",
		"Could not reach the server, please try again",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"Database transaction failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Something went wrong",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the underlying driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Local storage operation failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// DisplayMessage turns any error into a string suitable for the UI.
// AppErrors show their user-facing message, anything else its text.
func DisplayMessage(err error) string {
	if err == nil {
		return ""
	}

	if appErr, ok := errors.AsType[AppError](err); ok {
		return appErr.Message()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return ErrInternalError.Message()
}
