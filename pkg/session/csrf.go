package session

import (
	"crypto/subtle"
	"net/http"
)

// IsReadOnly reports whether method is exempt from CSRF verification.
func IsReadOnly(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead:
		return true
	}
	return false
}

// Authorize decides whether a validated session may perform method. Mutating
// methods must present the session's CSRF token exactly.
func Authorize(rec Record, method, csrfHeader string) (Outcome, error) {
	if IsReadOnly(method) {
		return OutcomeAuthorizedForRead, nil
	}

	if csrfHeader == "" {
		return OutcomeRejected, reject(KindCSRFMismatch, ErrCSRFMissing)
	}
	if subtle.ConstantTimeCompare([]byte(csrfHeader), []byte(rec.CSRFToken)) != 1 {
		return OutcomeRejected, reject(KindCSRFMismatch, ErrCSRFMismatch)
	}

	return OutcomeAuthorizedForMutation, nil
}

// AuthorizeWithoutCSRF is Authorize for routes that accept mutations without
// a CSRF token, such as endpoints called by non-browser clients. Use it only
// where the route is registered through an explicit opt-out.
func AuthorizeWithoutCSRF(_ Record, method string) Outcome {
	if IsReadOnly(method) {
		return OutcomeAuthorizedForRead
	}
	return OutcomeAuthorizedForMutation
}
