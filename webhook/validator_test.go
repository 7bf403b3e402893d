package webhook

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidator(t *testing.T) {
	t.Run("BlankSecret", func(t *testing.T) {
		_, err := NewValidator("   ")
		assert.ErrorIs(t, err, ErrEmptySecret)
	})

	t.Run("ValidSecret", func(t *testing.T) {
		v, err := NewValidator("whsec_test")
		require.NoError(t, err)
		assert.NotNil(t, v)
	})
}

func TestVerify(t *testing.T) {
	v, err := NewValidator("whsec_test")
	require.NoError(t, err)

	t.Run("RoundTrip", func(t *testing.T) {
		payload := []byte(`{"id":"evt-1","status":"PAYMENT_SUCCESS"}`)
		assert.NoError(t, v.Verify(payload, v.Sign(payload)))
	})

	t.Run("EmptyPayloadRoundTrip", func(t *testing.T) {
		payload := []byte("")
		assert.NoError(t, v.Verify(payload, v.Sign(payload)))
	})

	t.Run("MissingSignature", func(t *testing.T) {
		assert.ErrorIs(t, v.Verify([]byte("payload"), ""), ErrMissingSignature)
	})

	t.Run("TamperedSignature", func(t *testing.T) {
		payload := []byte("payload")
		sig := v.Sign(payload)
		tampered := "0" + sig[1:]
		if tampered == sig {
			tampered = "1" + sig[1:]
		}
		assert.ErrorIs(t, v.Verify(payload, tampered), ErrInvalidSignature)
	})

	t.Run("TamperedPayload", func(t *testing.T) {
		sig := v.Sign([]byte("original"))
		assert.ErrorIs(t, v.Verify([]byte("modified"), sig), ErrInvalidSignature)
	})

	t.Run("DifferentSecretsDisagree", func(t *testing.T) {
		other, err := NewValidator("whsec_other")
		require.NoError(t, err)
		payload := []byte("payload")
		assert.ErrorIs(t, v.Verify(payload, other.Sign(payload)), ErrInvalidSignature)
	})
}

func TestVerifyFromHeaders(t *testing.T) {
	v, err := NewValidator("whsec_test")
	require.NoError(t, err)

	payload := []byte(`{"id":"evt-1"}`)
	sig := v.Sign(payload)

	t.Run("CanonicalHeader", func(t *testing.T) {
		headers := http.Header{}
		headers.Set(SignatureHeader, sig)
		assert.NoError(t, v.VerifyFromHeaders(payload, headers))
	})

	t.Run("LowercaseKey", func(t *testing.T) {
		headers := map[string][]string{"x-maya-signature": {sig}}
		assert.NoError(t, v.VerifyFromHeaders(payload, headers))
	})

	t.Run("UppercaseKey", func(t *testing.T) {
		headers := map[string][]string{"X-MAYA-SIGNATURE": {sig}}
		assert.NoError(t, v.VerifyFromHeaders(payload, headers))
	})

	t.Run("MultiValueTakesFirst", func(t *testing.T) {
		headers := map[string][]string{"X-Maya-Signature": {sig, "garbage"}}
		assert.NoError(t, v.VerifyFromHeaders(payload, headers))
	})

	t.Run("AbsentHeader", func(t *testing.T) {
		assert.ErrorIs(t, v.VerifyFromHeaders(payload, http.Header{}), ErrMissingSignature)
	})
}
