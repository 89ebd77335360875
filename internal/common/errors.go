// Package common defines the closed set of error kinds shared by the
// messagely storage core. Callers branch on kind with errors.As (or the
// Is* helpers) instead of parsing messages.
package common

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCredentials is returned by login-style composites for both an
// unknown username and a wrong password, so callers cannot distinguish
// the two and enumerate usernames.
var ErrInvalidCredentials = errors.New("invalid username/password")

// ValidationError reports malformed or incomplete input. Fields lists
// every offending field so the caller can report all of them at once.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: missing or invalid fields: %s", strings.Join(e.Fields, ", "))
}

// NotFoundError reports that a referenced identity is absent. Exactly one
// of Username or MessageID is set, depending on what was looked up.
type NotFoundError struct {
	Username  string
	MessageID int64
}

func (e *NotFoundError) Error() string {
	if e.Username != "" {
		return fmt.Sprintf("user %q not found", e.Username)
	}
	return fmt.Sprintf("message %d not found", e.MessageID)
}

// ConflictError reports a uniqueness violation on create.
type ConflictError struct {
	Username string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("user %q already exists", e.Username)
}

// StoreError wraps a failure of the backing store itself. It is not
// locally recoverable and is propagated as-is.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error in %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var target *ConflictError
	return errors.As(err, &target)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
