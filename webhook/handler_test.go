package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"maya-go/data"
)

func signedRequest(t *testing.T, v *Validator, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhooks/maya", bytes.NewReader(body))
	req.Header.Set(SignatureHeader, v.Sign(body))
	return req
}

func eventBody(t *testing.T, overrides map[string]any) []byte {
	t.Helper()
	payload := map[string]any{
		"id":                     "evt-1",
		"isPaid":                 true,
		"status":                 "PAYMENT_SUCCESS",
		"amount":                 map[string]any{"value": 100.0, "currency": "PHP"},
		"requestReferenceNumber": "ref-1",
	}
	for k, v := range overrides {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestHandler(t *testing.T) {
	v, err := NewValidator("whsec_test")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		var received *data.WebhookEvent
		h := NewHandler(v, func(ctx context.Context, event *data.WebhookEvent, raw map[string]any) error {
			received = event
			return nil
		})

		body := eventBody(t, nil)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, signedRequest(t, v, body))

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, received)
		assert.Equal(t, "evt-1", received.ID)
		assert.True(t, received.IsPaid)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["success"])
	})

	t.Run("MalformedTimestampStillAccepted", func(t *testing.T) {
		var received *data.WebhookEvent
		h := NewHandler(v, func(ctx context.Context, event *data.WebhookEvent, raw map[string]any) error {
			received = event
			return nil
		})

		body := eventBody(t, map[string]any{"createdAt": "not-a-date"})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, signedRequest(t, v, body))

		assert.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, received)
		assert.Nil(t, received.CreatedAt)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		h := NewHandler(v, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/maya", bytes.NewReader(nil))
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("MissingSignature", func(t *testing.T) {
		h := NewHandler(v, nil)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/webhooks/maya", bytes.NewReader(eventBody(t, nil)))
		h.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "missing webhook signature")
	})

	t.Run("BadSignature", func(t *testing.T) {
		called := false
		h := NewHandler(v, func(ctx context.Context, event *data.WebhookEvent, raw map[string]any) error {
			called = true
			return nil
		})

		body := eventBody(t, nil)
		req := httptest.NewRequest(http.MethodPost, "/webhooks/maya", bytes.NewReader(body))
		req.Header.Set(SignatureHeader, "deadbeef")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, called, "event handler must not run for unauthenticated payloads")
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		h := NewHandler(v, nil)
		body := []byte("{not json")
		w := httptest.NewRecorder()
		h.ServeHTTP(w, signedRequest(t, v, body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnparseablePayload", func(t *testing.T) {
		h := NewHandler(v, nil)
		body := []byte(`{"id":"evt-1"}`)
		w := httptest.NewRecorder()
		h.ServeHTTP(w, signedRequest(t, v, body))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DispatchFailure", func(t *testing.T) {
		h := NewHandler(v, func(ctx context.Context, event *data.WebhookEvent, raw map[string]any) error {
			return errors.New("downstream unavailable")
		})
		w := httptest.NewRecorder()
		h.ServeHTTP(w, signedRequest(t, v, eventBody(t, nil)))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
