package apperrors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrTokenExpired           = errors.New("token expired")
	ErrTokenInvalid           = errors.New("invalid token")
	ErrAccountLocked          = errors.New("account is locked")
	ErrPasswordChangeRequired = errors.New("password change required")

	// Authorization errors
	ErrPermissionDenied = errors.New("permission denied")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidPassword  = errors.New("invalid password")
	ErrBadRequest       = errors.New("bad request")

	// Backup errors
	ErrMalformedImport = errors.New("malformed import document")
)

// Entity lookup errors. Each wraps ErrResourceNotFound so callers can
// match on the general case.
var (
	ErrUserNotFound     = fmt.Errorf("user: %w", ErrResourceNotFound)
	ErrPostNotFound     = fmt.Errorf("post: %w", ErrResourceNotFound)
	ErrCommentNotFound  = fmt.Errorf("comment: %w", ErrResourceNotFound)
	ErrDocumentNotFound = fmt.Errorf("document: %w", ErrResourceNotFound)
	ErrMemoryNotFound   = fmt.Errorf("memory: %w", ErrResourceNotFound)
	ErrPollNotFound     = fmt.Errorf("poll: %w", ErrResourceNotFound)
	ErrRoomNotFound     = fmt.Errorf("chat room: %w", ErrResourceNotFound)
	ErrReportNotFound   = fmt.Errorf("report: %w", ErrResourceNotFound)
	ErrBadgeNotFound    = fmt.Errorf("badge: %w", ErrResourceNotFound)
)

// Conflict and state errors
var (
	ErrRoomRestricted     = errors.New("chat room is restricted")
	ErrReportResolved     = errors.New("report already resolved")
	ErrBadgeAlreadyExists = fmt.Errorf("badge: %w", ErrResourceAlreadyExists)
)
