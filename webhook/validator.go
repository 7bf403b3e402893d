// Package webhook authenticates and ingests Maya webhook notifications.
// Validate the signature first, parse the payload second; the two steps are
// exposed separately so any HTTP framework can host them.
package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader is the request header carrying the payload signature.
const SignatureHeader = "X-Maya-Signature"

var (
	ErrEmptySecret      = errors.New("webhook secret key cannot be empty")
	ErrMissingSignature = errors.New("missing webhook signature header")
	ErrInvalidSignature = errors.New("invalid webhook signature")
)

// Validator checks inbound payloads against the shared webhook secret.
type Validator struct {
	secret []byte
}

func NewValidator(secret string) (*Validator, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	return &Validator{secret: []byte(secret)}, nil
}

// Sign returns the hex-encoded HMAC-SHA256 of payload keyed by the secret.
func (v *Validator) Sign(payload []byte) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the expected signature and compares in constant time.
func (v *Validator) Verify(payload []byte, signature string) error {
	if signature == "" {
		return ErrMissingSignature
	}
	expected := v.Sign(payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return ErrInvalidSignature
	}
	return nil
}

// VerifyFromHeaders finds the signature header regardless of key casing,
// takes the first value of a multi-value header, and verifies the payload.
// The scan does not assume canonical header keys, so maps built outside
// net/http's textproto path work too.
func (v *Validator) VerifyFromHeaders(payload []byte, headers map[string][]string) error {
	var signature string
	for name, values := range headers {
		if strings.EqualFold(name, SignatureHeader) && len(values) > 0 {
			signature = values[0]
			break
		}
	}
	return v.Verify(payload, signature)
}
