// Package middleware provides the HTTP side of session handling: the
// session check, cookie writing, and request IDs.
package middleware
