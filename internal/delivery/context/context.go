// Package context carries the request-scoped values shared by the delivery,
// use case and persistence layers: request ID, logger and authenticated account.
package context

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyAccount is the key for storing the authenticated account in context.
	KeyAccount ContextKey = "account"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)
