package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation matches every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrStorage matches every *StorageError.
	ErrStorage = errors.New("storage unavailable")
	// ErrNotification matches every *NotificationError.
	ErrNotification = errors.New("notification dispatch failed")

	ErrOrderNotFound        = errors.New("order not found")
	ErrStatusConflict       = errors.New("order status changed concurrently")
	ErrForbidden            = errors.New("forbidden")
	ErrOrderLocked          = errors.New("order no longer accepts changes")
	ErrReviewNotAllowed     = errors.New("only delivered orders can be reviewed")
	ErrReviewAlreadyExists  = errors.New("order already reviewed")
	ErrReviewNotFound       = errors.New("review not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrUserNotFound         = errors.New("user not found")
)

// ValidationError names the offending input field.
type ValidationError struct {
	Field  string
	Reason string
}

func newValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// StorageError wraps a failure of the document store or object store.
type StorageError struct {
	Op  string
	Err error
}

func newStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NotificationError wraps an outbox dispatch failure. It is logged by the
// usecases and never returned to callers of a committed write.
type NotificationError struct {
	Event string
	Err   error
}

func (e *NotificationError) Error() string {
	return fmt.Sprintf("notify %s: %v", e.Event, e.Err)
}

func (e *NotificationError) Unwrap() error {
	return e.Err
}

func (e *NotificationError) Is(target error) bool {
	return target == ErrNotification
}
