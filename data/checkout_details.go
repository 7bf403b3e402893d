package data

import (
	"encoding/json"
	"time"
)

// CheckoutDetails is the full checkout object returned by the retrieval
// endpoint. Only id, status, totalAmount and the reference number are
// guaranteed; everything else is optional.
type CheckoutDetails struct {
	ID              string
	Status          string
	TotalAmount     Amount
	ReferenceNumber string
	Buyer           *Buyer
	Items           []*Item
	Metadata        map[string]any
	CreatedAt       *time.Time
	UpdatedAt       *time.Time
	PaymentID       *string
	IsPaid          *bool
}

func (d *CheckoutDetails) Serialize() map[string]any {
	out := map[string]any{
		"id":                     d.ID,
		"status":                 d.Status,
		"totalAmount":            d.TotalAmount.Serialize(),
		"requestReferenceNumber": d.ReferenceNumber,
	}
	if d.Buyer != nil {
		out["buyer"] = d.Buyer.Serialize()
	}
	if d.Items != nil {
		items := make([]any, len(d.Items))
		for i, item := range d.Items {
			items[i] = item.Serialize()
		}
		out["items"] = items
	}
	if d.Metadata != nil {
		out["metadata"] = d.Metadata
	}
	if d.CreatedAt != nil {
		out["createdAt"] = formatTimestamp(*d.CreatedAt)
	}
	if d.UpdatedAt != nil {
		out["updatedAt"] = formatTimestamp(*d.UpdatedAt)
	}
	if d.PaymentID != nil {
		out["paymentId"] = *d.PaymentID
	}
	if d.IsPaid != nil {
		out["isPaid"] = *d.IsPaid
	}
	return out
}

func (d *CheckoutDetails) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Serialize())
}

func ParseCheckoutDetails(raw map[string]any) (*CheckoutDetails, error) {
	const object = "checkout details"

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
	reference, err := requireString(object, raw, "requestReferenceNumber")
	if err != nil {
		return nil, err
	}

	details := &CheckoutDetails{
		ID:              id,
		Status:          status,
		TotalAmount:     totalAmount,
		ReferenceNumber: reference,
	}

	if buyerRaw, err := optionalObject(object, raw, "buyer"); err != nil {
		return nil, err
	} else if buyerRaw != nil {
		if details.Buyer, err = ParseBuyer(buyerRaw); err != nil {
			return nil, err
		}
	}

	if itemsRaw, ok := raw["items"]; ok && itemsRaw != nil {
		list, ok := itemsRaw.([]any)
		if !ok {
			return nil, invalidType(object, "items", "array", itemsRaw)
		}
		details.Items = make([]*Item, 0, len(list))
		for _, entry := range list {
			itemRaw, ok := entry.(map[string]any)
			if !ok {
				return nil, invalidType(object, "items", "object", entry)
			}
			item, err := ParseItem(itemRaw)
			if err != nil {
				return nil, err
			}
			details.Items = append(details.Items, item)
		}
	}

	if metadata, err := optionalObject(object, raw, "metadata"); err != nil {
		return nil, err
	} else if metadata != nil {
		details.Metadata = metadata
	}

	if details.CreatedAt, err = optionalTime(object, raw, "createdAt", false); err != nil {
		return nil, err
	}
	if details.UpdatedAt, err = optionalTime(object, raw, "updatedAt", false); err != nil {
		return nil, err
	}
	if details.PaymentID, err = optionalString(object, raw, "paymentId"); err != nil {
		return nil, err
	}

	if v, ok := raw["isPaid"]; ok && v != nil {
		paid, ok := v.(bool)
		if !ok {
			return nil, invalidType(object, "isPaid", "bool", v)
		}
		details.IsPaid = &paid
	}

	return details, nil
}
