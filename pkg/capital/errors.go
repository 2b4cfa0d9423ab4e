package capital

import "fmt"

// APIError is a non-2xx response from a raising call. Body carries the
// decoded response payload.
type APIError struct {
	StatusCode int
	Body       Document
}

func (e *APIError) Error() string {
	return fmt.Sprintf("capital api error %d: %s", e.StatusCode, e.Body.describe())
}

// AuthError reports a failed login: the HTTP call errored, the session was
// rejected, or a successful response did not carry both token headers.
type AuthError struct {
	Reason string
	Body   Document
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("authentication failed: %s", e.Reason)
}

func (e *AuthError) Unwrap() error { return e.Err }

// OrderError reports a rejected position or working order submission: an
// error status, or a success body without a dealReference. StatusCode is 0
// when the HTTP call itself succeeded.
type OrderError struct {
	StatusCode int
	Reason     string
	Body       Document
}

func (e *OrderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("order failed %d: %s", e.StatusCode, e.Body.describe())
	}
	return fmt.Sprintf("order failed: %s: %s", e.Reason, e.Body.describe())
}
