// Package httperr holds the errors the HTTP layer reports to clients.
// Each implements domainerrors.AppError so every renderer treats them alike.
package httperr

import (
	"net/http"

	domainerrors "authsvc/internal/domain/errors"
)

var (
	_ domainerrors.AppError = (*MissingParamError)(nil)
	_ domainerrors.AppError = (*InvalidParamError)(nil)
	_ domainerrors.AppError = (*AccessDeniedError)(nil)
	_ domainerrors.AppError = (*EmailInUseError)(nil)
	_ domainerrors.AppError = (*ServerError)(nil)
)

// MissingParamError reports a required field that was absent.
type MissingParamError struct {
	Param string
}

// NewMissingParamError creates a MissingParamError for param.
func NewMissingParamError(param string) *MissingParamError {
	return &MissingParamError{Param: param}
}

func (e *MissingParamError) Error() string     { return e.Message() }
func (e *MissingParamError) HTTPCode() int     { return http.StatusBadRequest }
func (e *MissingParamError) ErrorCode() string { return "MISSING_PARAM" }
func (e *MissingParamError) Message() string   { return "Missing param: " + e.Param }
func (e *MissingParamError) Details() string   { return e.Param }

// InvalidParamError reports a field that was present but malformed.
type InvalidParamError struct {
	Param string
}

// NewInvalidParamError creates an InvalidParamError for param.
func NewInvalidParamError(param string) *InvalidParamError {
	return &InvalidParamError{Param: param}
}

func (e *InvalidParamError) Error() string     { return e.Message() }
func (e *InvalidParamError) HTTPCode() int     { return http.StatusBadRequest }
func (e *InvalidParamError) ErrorCode() string { return "INVALID_PARAM" }
func (e *InvalidParamError) Message() string   { return "Invalid param: " + e.Param }
func (e *InvalidParamError) Details() string   { return e.Param }

// AccessDeniedError is returned for bad credentials and missing or unknown tokens.
type AccessDeniedError struct{}

// NewAccessDeniedError creates a new AccessDeniedError.
func NewAccessDeniedError() *AccessDeniedError {
	return &AccessDeniedError{}
}

func (e *AccessDeniedError) Error() string     { return e.Message() }
func (e *AccessDeniedError) HTTPCode() int     { return http.StatusForbidden }
func (e *AccessDeniedError) ErrorCode() string { return "ACCESS_DENIED" }
func (e *AccessDeniedError) Message() string   { return "Access denied" }
func (e *AccessDeniedError) Details() string   { return "" }

// EmailInUseError is returned when sign-up hits an existing email.
type EmailInUseError struct{}

// NewEmailInUseError creates a new EmailInUseError.
func NewEmailInUseError() *EmailInUseError {
	return &EmailInUseError{}
}

func (e *EmailInUseError) Error() string     { return e.Message() }
func (e *EmailInUseError) HTTPCode() int     { return http.StatusForbidden }
func (e *EmailInUseError) ErrorCode() string { return "EMAIL_IN_USE" }
func (e *EmailInUseError) Message() string   { return "The received email is already in use" }
func (e *EmailInUseError) Details() string   { return "" }

// ServerError hides an unexpected failure behind a generic message.
// The cause stays reachable through Unwrap for logging.
type ServerError struct {
	cause error
}

// NewServerError wraps cause in a ServerError.
func NewServerError(cause error) *ServerError {
	return &ServerError{cause: cause}
}

func (e *ServerError) Error() string     { return e.Message() }
func (e *ServerError) Unwrap() error     { return e.cause }
func (e *ServerError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *ServerError) ErrorCode() string { return "INTERNAL_ERROR" }
func (e *ServerError) Message() string   { return "Internal server error" }
func (e *ServerError) Details() string   { return "" }
