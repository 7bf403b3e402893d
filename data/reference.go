package data

import "github.com/google/uuid"

// NewReferenceNumber returns a unique request reference number for callers
// that do not bring their own correlation key.
func NewReferenceNumber() string {
	return uuid.NewString()
}

// String returns a pointer to s, for filling optional fields.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}
