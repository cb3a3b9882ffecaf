// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Combine merges non-nil errors into one; nil if all of them are nil.
func Combine(errs ...error) error {
	return multierr.Combine(errs...)
}

// formatMessage only runs Sprintf when there are arguments, so a bare message containing '%' survives.
func formatMessage(message string, a ...any) string {
	if len(a) == 0 {
		return message
	}
	return fmt.Sprintf(message, a...)
}

func joinMessage(message string, inner error) string {
	if inner == nil || inner.Error() == "" {
		return message
	} else if message == "" {
		return inner.Error()
	}
	return fmt.Sprintf("%v; %v", message, inner.Error())
}

// ///////////////////////////////////////////////////////////////////////////
// notFoundError
// ///////////////////////////////////////////////////////////////////////////

type notFoundError struct {
	inner   error
	message string
}

func (e *notFoundError) Error() string { return joinMessage(e.message, e.inner) }

func (e *notFoundError) Unwrap() error { return e.inner }

func NotFoundError(message string, a ...any) error {
	return &notFoundError{message: formatMessage(message, a...)}
}

func WrapWithNotFoundError(err error, message string, a ...any) error {
	return &notFoundError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *notFoundError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// alreadyExistsError
// ///////////////////////////////////////////////////////////////////////////

type alreadyExistsError struct {
	inner   error
	message string
}

func (e *alreadyExistsError) Error() string { return joinMessage(e.message, e.inner) }

func (e *alreadyExistsError) Unwrap() error { return e.inner }

func AlreadyExistsError(message string, a ...any) error {
	return &alreadyExistsError{message: formatMessage(message, a...)}
}

func WrapWithAlreadyExistsError(err error, message string, a ...any) error {
	return &alreadyExistsError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsAlreadyExistsError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *alreadyExistsError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct {
	message string
}

func (e *unsupportedError) Error() string { return e.message }

func UnsupportedError(message string, a ...any) error {
	return &unsupportedError{message: formatMessage(message, a...)}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// invalidInputError
// ///////////////////////////////////////////////////////////////////////////

type invalidInputError struct {
	message string
}

func (e *invalidInputError) Error() string { return e.message }

func InvalidInputError(message string, a ...any) error {
	return &invalidInputError{message: formatMessage(message, a...)}
}

func IsInvalidInputError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *invalidInputError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// capacityExhaustedError
// ///////////////////////////////////////////////////////////////////////////

type capacityExhaustedError struct {
	message string
}

func (e *capacityExhaustedError) Error() string { return e.message }

func CapacityExhaustedError(message string, a ...any) error {
	return &capacityExhaustedError{message: formatMessage(message, a...)}
}

func IsCapacityExhaustedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *capacityExhaustedError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// connectionError
// ///////////////////////////////////////////////////////////////////////////

type connectionError struct {
	inner   error
	message string
}

func (e *connectionError) Error() string { return joinMessage(e.message, e.inner) }

func (e *connectionError) Unwrap() error { return e.inner }

func ConnectionError(message string, a ...any) error {
	return &connectionError{message: formatMessage(message, a...)}
}

func WrapWithConnectionError(err error, message string, a ...any) error {
	return &connectionError{
		inner:   err,
		message: formatMessage(message, a...),
	}
}

func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *connectionError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// maxWaitExceededError
// ///////////////////////////////////////////////////////////////////////////

type maxWaitExceededError struct {
	message string
}

func (e *maxWaitExceededError) Error() string { return e.message }

func MaxWaitExceededError(message string, a ...any) error {
	return &maxWaitExceededError{message: formatMessage(message, a...)}
}

func IsMaxWaitExceededError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *maxWaitExceededError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// ProvisioningError
// ///////////////////////////////////////////////////////////////////////////

// ProvisioningError reports a failed remote provisioning step together with the outcome of
// the cleanup that followed it. RollbackErr is nil when the cleanup succeeded.
type ProvisioningError struct {
	Cause       error
	RollbackErr error
}

func (e *ProvisioningError) Error() string {
	if e.RollbackErr == nil {
		return fmt.Sprintf("%v", e.Cause)
	}
	return fmt.Sprintf("%v; rollback also failed: %v", e.Cause, e.RollbackErr)
}

// Unwrap exposes both causes so errors.Is/As can match either of them.
func (e *ProvisioningError) Unwrap() []error {
	if e.RollbackErr == nil {
		return []error{e.Cause}
	}
	return []error{e.Cause, e.RollbackErr}
}

// WrapWithProvisioningError returns nil when cause is nil.
func WrapWithProvisioningError(cause, rollbackErr error) error {
	if cause == nil {
		return nil
	}
	return &ProvisioningError{Cause: cause, RollbackErr: rollbackErr}
}

func IsProvisioningError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *ProvisioningError
	return errors.As(err, &errPtr)
}

// HasRollbackError reports whether err is a ProvisioningError whose cleanup also failed.
func HasRollbackError(err error) (bool, error) {
	var errPtr *ProvisioningError
	if err == nil || !errors.As(err, &errPtr) {
		return false, nil
	}
	return errPtr.RollbackErr != nil, errPtr.RollbackErr
}
