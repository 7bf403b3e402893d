package data

import "encoding/json"

// RefundRequest is the body of a refund call against a captured payment.
type RefundRequest struct {
	TotalAmount     Amount
	Reason          string
	ReferenceNumber *string
}

func (r *RefundRequest) Serialize() map[string]any {
	out := map[string]any{
		"totalAmount": r.TotalAmount.Serialize(),
		"reason":      r.Reason,
	}
	if r.ReferenceNumber != nil {
		out["requestReferenceNumber"] = *r.ReferenceNumber
	}
	return out
}

func (r *RefundRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serialize())
}

// RefundResult is the API's view of a processed refund.
type RefundResult struct {
	ID              string
	Status          string
	TotalAmount     Amount
	Reason          string
	ReferenceNumber *string
}

func (r *RefundResult) Serialize() map[string]any {
	out := map[string]any{
		"id":          r.ID,
		"status":      r.Status,
		"totalAmount": r.TotalAmount.Serialize(),
		"reason":      r.Reason,
	}
	if r.ReferenceNumber != nil {
		out["requestReferenceNumber"] = *r.ReferenceNumber
	}
	return out
}

func (r *RefundResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serialize())
}

func ParseRefundResult(raw map[string]any) (*RefundResult, error) {
	const object = "refund result"

	id, err := requireString(object, raw, "id")
	if err != nil {
		return nil, err
	}
	status, err := requireString(object, raw, "status")
	if err != nil {
		return nil, err
	}
	amountRaw, err := requireObject(object, raw, "totalAmount")
	if err != nil {
		return nil, err
	}
	totalAmount, err := ParseAmount(amountRaw)
	if err != nil {
		return nil, err
	}
	reason, err := requireString(object, raw, "reason")
	if err != nil {
		return nil, err
	}
	reference, err := optionalString(object, raw, "requestReferenceNumber")
	if err != nil {
		return nil, err
	}

	return &RefundResult{
		ID:              id,
		Status:          status,
		TotalAmount:     totalAmount,
		Reason:          reason,
		ReferenceNumber: reference,
	}, nil
}
