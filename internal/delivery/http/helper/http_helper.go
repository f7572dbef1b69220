// Package helper maps controller outcomes to HTTP responses.
package helper

import (
	"net/http"

	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/protocol"
)

// OK wraps a successful payload.
func OK(body any) *protocol.HTTPResponse {
	return &protocol.HTTPResponse{StatusCode: http.StatusOK, Body: body}
}

// BadRequest reports malformed input.
func BadRequest(err error) *protocol.HTTPResponse {
	return &protocol.HTTPResponse{StatusCode: http.StatusBadRequest, Body: err}
}

// Unauthorized reports rejected credentials without saying why.
func Unauthorized() *protocol.HTTPResponse {
	return &protocol.HTTPResponse{StatusCode: http.StatusUnauthorized, Body: httperr.NewAccessDeniedError()}
}

// Forbidden reports a request the caller is not allowed to make.
func Forbidden(err error) *protocol.HTTPResponse {
	return &protocol.HTTPResponse{StatusCode: http.StatusForbidden, Body: err}
}

// ServerError reports an unexpected failure. Only the generic message reaches the client.
func ServerError(err error) *protocol.HTTPResponse {
	return &protocol.HTTPResponse{StatusCode: http.StatusInternalServerError, Body: httperr.NewServerError(err)}
}
