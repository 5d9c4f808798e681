package meta

import (
	"errors"
	"fmt"
)

// Subcode values the Graph API uses for invalidated user tokens. 463 is
// "token expired", 460 is "password changed / session invalidated"; both
// require the tenant to re-authorize.
const (
	subcodeSessionInvalid = 460
	subcodeTokenExpired   = 463
	codeOAuth             = 190
)

// ErrAccountNotFound means the authorization succeeded but none of the
// linked pages carries a business account. The caller shows a different
// remedy for this than for plain API failures, so it is a sentinel.
var ErrAccountNotFound = errors.New("meta: no linked instagram business account")

// APIError carries the machine-readable classification of a non-2xx Graph
// API response. Callers must branch on Code/Subcode, never on Message.
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("meta api error: status=%d code=%d subcode=%d: %s",
		e.StatusCode, e.Code, e.Subcode, e.Message)
}

// AuthorizationExpired reports whether the response means the stored token
// was expired or revoked and the tenant has to re-link the account.
func (e *APIError) AuthorizationExpired() bool {
	return e.Subcode == subcodeTokenExpired ||
		e.Subcode == subcodeSessionInvalid ||
		e.Code == codeOAuth
}

// IsAuthorizationExpired unwraps err and reports the re-authorization case.
func IsAuthorizationExpired(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.AuthorizationExpired()
}
