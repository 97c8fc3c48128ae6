package bagelpay

import "fmt"

// ConfigurationError reports misuse of the client itself: a missing API key
// at construction, or an operation issued on a closed client. It never
// involves the network.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string { return "bagelpay: " + e.Message }

// ErrorEnvelope is the wire shape of an API error body.
type ErrorEnvelope struct {
	Msg  string `json:"msg"`
	Code int    `json:"code"`
}

// APIError is the base failure for any operation that reached, or attempted to
// reach, the wire. StatusCode is the HTTP status of the response (0 for
// transport-level failures such as timeouts or refused connections), Code and
// Envelope are populated when the response body carried a decodable
// {msg, code} envelope, and RawBody keeps the undecoded response text.
type APIError struct {
	Message    string
	StatusCode int
	Code       int
	Envelope   *ErrorEnvelope
	RawBody    string
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("bagelpay: %s (status %d)", e.Message, e.StatusCode)
	}
	return "bagelpay: " + e.Message
}

// AuthenticationError reports a rejected or missing credential (HTTP 401/403).
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// ValidationError reports a request rejected by the server (HTTP 400/422) or
// rejected client-side before any round trip was made. In the client-side
// case StatusCode is 0.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Unwrap() error { return &e.APIError }

// NotFoundError reports that a referenced resource does not exist (HTTP 404).
type NotFoundError struct {
	APIError
}

func (e *NotFoundError) Unwrap() error { return &e.APIError }

func validationError(format string, args ...any) *ValidationError {
	return &ValidationError{APIError{Message: fmt.Sprintf(format, args...)}}
}
