package errors

import "errors"

// Kind groups failures the way callers react to them; Code names the
// specific condition a UI message keys off.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindState        Kind = "STATE"
	KindNotFound     Kind = "NOT_FOUND"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindPersistence  Kind = "PERSISTENCE"
)

const (
	CodeEmptyCode        = "EMPTY_CODE"
	CodeInvalidCode      = "INVALID_CODE"
	CodeEmptyCart        = "EMPTY_CART"
	CodeMissingField     = "MISSING_REQUIRED_FIELD"
	CodeNotAuthenticated = "NOT_AUTHENTICATED"
	CodeItemNotFound     = "ITEM_NOT_FOUND"
	CodeStorageFailure   = "STORAGE_FAILURE"
)

type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewAppError(kind Kind, code, message string) *AppError {
	return &AppError{
		Kind:    kind,
		Code:    code,
		Message: message,
	}
}

func (e *AppError) WithError(err error) *AppError {
	e.Err = err

	return e
}

func ValidationError(code, message string) *AppError {
	return NewAppError(KindValidation, code, message)
}

func StateError(code, message string) *AppError {
	return NewAppError(KindState, code, message)
}

func NotFoundError(code, message string) *AppError {
	return NewAppError(KindNotFound, code, message)
}

func UnauthorizedError(code, message string) *AppError {
	return NewAppError(KindUnauthorized, code, message)
}

func PersistenceError(message string) *AppError {
	return NewAppError(KindPersistence, CodeStorageFailure, message)
}

func IsAppError(err error) (*AppError, bool) {
	var appError *AppError

	if errors.As(err, &appError) {
		return appError, true
	}

	return nil, false
}

// CodeOf returns the reason code carried by err, or "" when err is not
// an AppError.
func CodeOf(err error) string {
	if appErr, ok := IsAppError(err); ok {
		return appErr.Code
	}

	return ""
}
