package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"
)

// AppError is a domain error with a stable code.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// StatusError is an error that already knows the HTTP status it must be
// served with. Used to surface upstream provider statuses unchanged.
type StatusError struct {
	Status  int
	Code    failure.ErrorCode
	Message string
	cause   error
}

func (e *StatusError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *StatusError) Unwrap() error {
	return e.cause
}

func (e *StatusError) HTTPStatus() int {
	return e.Status
}

func (e *StatusError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Description returns the user-facing message alone, without the wrapped
// cause Error() appends.
func (e *StatusError) Description() string {
	return e.Message
}

func NewStatusError(status int, code failure.ErrorCode, message string) *StatusError {
	return &StatusError{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

func WrapStatusError(err error, status int, code failure.ErrorCode, message string) *StatusError {
	return &StatusError{
		Status:  status,
		Code:    code,
		Message: message,
		cause:   err,
	}
}
