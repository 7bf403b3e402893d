package data

import (
	"encoding/json"
	"strings"
	"time"
)

// WebhookEvent is a payment status notification delivered to the merchant's
// webhook endpoint.
type WebhookEvent struct {
	ID              string
	IsPaid          bool
	Status          string
	Amount          Amount
	ReferenceNumber string
	Payment         map[string]any
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
}

func (e *WebhookEvent) Serialize() map[string]any {
	out := map[string]any{
		"id":                     e.ID,
		"isPaid":                 e.IsPaid,
		"status":                 e.Status,
		"amount":                 e.Amount.Serialize(),
		"requestReferenceNumber": e.ReferenceNumber,
	}
	if e.Payment != nil {
		out["payment"] = e.Payment
	}
	if e.CreatedAt != nil {
		out["createdAt"] = formatTimestamp(*e.CreatedAt)
	}
	if e.UpdatedAt != nil {
		out["updatedAt"] = formatTimestamp(*e.UpdatedAt)
	}
	return out
}

func (e *WebhookEvent) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Serialize())
}

// ParseWebhookEvent normalizes a webhook payload. isPaid is coerced from any
// truthy representation the gateway has been seen to send, and malformed
// createdAt/updatedAt values become absent instead of failing the event;
// ingestion must never reject a payload over a bad timestamp.
func ParseWebhookEvent(raw map[string]any) (*WebhookEvent, error) {
	const object = "webhook event"

	id, err := requireString(object, raw, "id")
	if err != nil {
		return nil, err
	}
	status, err := requireString(object, raw, "status")
	if err != nil {
		return nil, err
	}
	amountRaw, err := requireObject(object, raw, "amount")
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount(amountRaw)
	if err != nil {
		return nil, err
	}
	reference, err := requireString(object, raw, "requestReferenceNumber")
	if err != nil {
		return nil, err
	}

	event := &WebhookEvent{
		ID:              id,
		IsPaid:          truthy(raw["isPaid"]),
		Status:          status,
		Amount:          amount,
		ReferenceNumber: reference,
	}

	if payment, err := optionalObject(object, raw, "payment"); err != nil {
		return nil, err
	} else if payment != nil {
		event.Payment = payment
	}

	// Lenient on purpose.
	event.CreatedAt, _ = optionalTime(object, raw, "createdAt", true)
	event.UpdatedAt, _ = optionalTime(object, raw, "updatedAt", true)

	return event, nil
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s != "" && s != "0" && s != "false"
	case float64:
		return t != 0
	case int:
		return t != 0
	case json.Number:
		f, err := t.Float64()
		return err == nil && f != 0
	default:
		return true
	}
}
