package catalog

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes catalog errors.
type ErrorCode string

const (
	// ErrCodeDuplicateEntry indicates a key was registered twice.
	// This is a catalog-population bug and fatal to startup.
	ErrCodeDuplicateEntry ErrorCode = "DUPLICATE_ENTRY"

	// ErrCodeNotFound indicates no entry exists for the requested key.
	// Recoverable: the harness surfaces it as a failed run result.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// ErrCodeSealed indicates registration was attempted after Seal.
	ErrCodeSealed ErrorCode = "SEALED"

	// ErrCodeInvalidKey indicates a malformed (category, name, variant) triple.
	ErrCodeInvalidKey ErrorCode = "INVALID_KEY"
)

// Error is a structured catalog error.
//
// The Code field allows callers to branch on the error category without
// string matching; Key identifies the affected entry.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Key identifies the entry the error refers to.
	Key Key
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Key != (Key{}) {
		return fmt.Sprintf("%s: %s (key=%s)", e.Code, e.Message, e.Key)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsNotFound returns true if the error is a lookup miss.
// Uses errors.As to handle wrapped errors.
func IsNotFound(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeNotFound
}

// IsDuplicate returns true if the error is a duplicate registration.
// Uses errors.As to handle wrapped errors.
func IsDuplicate(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeDuplicateEntry
}

// IsSealed returns true if the error is a post-seal registration attempt.
func IsSealed(err error) bool {
	var ce *Error
	return errors.As(err, &ce) && ce.Code == ErrCodeSealed
}

func newDuplicateError(key Key) *Error {
	return &Error{
		Code:    ErrCodeDuplicateEntry,
		Message: "entry already registered",
		Key:     key,
	}
}

func newNotFoundError(key Key) *Error {
	return &Error{
		Code:    ErrCodeNotFound,
		Message: "no entry registered",
		Key:     key,
	}
}

func newSealedError(key Key) *Error {
	return &Error{
		Code:    ErrCodeSealed,
		Message: "catalog is sealed; registration is only valid during initialization",
		Key:     key,
	}
}

func newInvalidKeyError(key Key, msg string) *Error {
	return &Error{
		Code:    ErrCodeInvalidKey,
		Message: msg,
		Key:     key,
	}
}
