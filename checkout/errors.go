package checkout

import (
	"encoding/json"
	"fmt"
)

// AuthenticationError reports rejected API credentials (HTTP 401/403). Not
// retryable with the same keys.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return "invalid Maya API credentials"
}

// ValidationFailure carries the field errors of a 422 response, normalized
// into a field -> messages map from either upstream shape.
type ValidationFailure struct {
	Errors map[string][]string
}

func (e *ValidationFailure) Error() string {
	detail, err := json.Marshal(e.Errors)
	if err != nil {
		return "validation failed"
	}
	return "validation failed: " + string(detail)
}

// APIError is the catch-all for other non-success responses. It keeps the
// raw body so callers can inspect whatever the gateway sent.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("maya api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("unknown maya api error (status %d)", e.StatusCode)
}
