// Package session implements stateless authenticated sessions.
//
// A session is a Record sealed with an AEAD cipher and carried by the client
// as a cookie value. The server keeps nothing: a token is valid when it opens
// under the current key, decodes, and has not expired. Mutating requests must
// also echo the record's CSRF token in a header.
//
// Every rejection is an *Error whose Kind tells operators what happened.
// Clients only ever see ErrUnauthorized; see Public.
package session
