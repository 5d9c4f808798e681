package wordpress

import "fmt"

// AuthError means the signature or timestamp was rejected, or the site was
// unreachable for the health probe. Distinct from APIError so the batch can
// report it as a connectivity problem rather than a publish failure.
type AuthError struct {
	Site    string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("wordpress auth error: site=%s: %s", e.Site, e.Message)
}

// APIError is a generic non-2xx response from upload or post creation.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wordpress api error: status=%d: %s", e.StatusCode, e.Body)
}
