package data

import "encoding/json"

// CheckoutRequest is the body of a checkout creation call. Buyer, Items and
// Metadata are optional and left out of the serialized body entirely when
// empty, never sent as empty collections.
type CheckoutRequest struct {
	TotalAmount     Amount
	RedirectURLs    *RedirectURLs
	ReferenceNumber string
	Buyer           *Buyer
	Items           []*Item
	Metadata        map[string]any
}

func (r *CheckoutRequest) Serialize() map[string]any {
	out := map[string]any{
		"totalAmount":            r.TotalAmount.Serialize(),
		"requestReferenceNumber": r.ReferenceNumber,
	}
	if r.RedirectURLs != nil {
		out["redirectUrl"] = r.RedirectURLs.Serialize()
	}
	if r.Buyer != nil {
		out["buyer"] = r.Buyer.Serialize()
	}
	if len(r.Items) > 0 {
		items := make([]any, len(r.Items))
		for i, item := range r.Items {
			items[i] = item.Serialize()
		}
		out["items"] = items
	}
	if len(r.Metadata) > 0 {
		out["metadata"] = r.Metadata
	}
	return out
}

func (r *CheckoutRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serialize())
}
