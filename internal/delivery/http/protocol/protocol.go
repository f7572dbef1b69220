// Package protocol defines the transport-neutral request and response values
// exchanged between the HTTP adapters and the controllers.
package protocol

import (
	"context"
	"net/http"
)

// HTTPRequest is the decoded input handed to a controller.
type HTTPRequest[T any] struct {
	Body   T
	Header http.Header
}

// HTTPResponse is a controller outcome. StatusCode alone decides the category;
// Body is the payload for 2xx and an error for everything else.
type HTTPResponse struct {
	StatusCode int
	Body       any
}

// Controller handles one request. It never returns an error: every failure is
// already mapped to a response.
type Controller[T any] interface {
	Handle(ctx context.Context, req *HTTPRequest[T]) *HTTPResponse
}

// Validation checks the shape of a request body before a use case runs.
type Validation interface {
	// Validate returns nil for well-formed input and otherwise an error
	// describing the first violation.
	Validate(input any) error
}
