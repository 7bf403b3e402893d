package data

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// totalTolerance absorbs float rounding when a caller supplies a line total.
const totalTolerance = 0.01

// Item is a checkout line item. The API requires totalAmount on the wire, so
// when the caller leaves it nil it is derived as amount * quantity at
// serialization time. A supplied total must agree with amount * quantity
// within the tolerance and share the unit amount's currency.
type Item struct {
	Name        string
	Quantity    int
	Amount      Amount
	TotalAmount *Amount
}

func NewItem(name string, quantity int, amount Amount, totalAmount *Amount) (*Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, &ValidationError{Field: "name", Message: "item name cannot be empty"}
	}
	if quantity <= 0 {
		return nil, &ValidationError{Field: "quantity", Message: "item quantity must be greater than 0"}
	}
	if amount.Value <= 0 {
		return nil, &ValidationError{Field: "amount", Message: "item amount value must be greater than 0"}
	}

	if totalAmount != nil {
		expected := amount.Value * float64(quantity)
		if math.Abs(totalAmount.Value-expected) > totalTolerance {
			return nil, &ValidationError{
				Field: "totalAmount",
				Message: fmt.Sprintf("item totalAmount (%v) does not match amount * quantity (%v)",
					totalAmount.Value, expected),
			}
		}
		if totalAmount.Currency != amount.Currency {
			return nil, &ValidationError{
				Field: "totalAmount",
				Message: fmt.Sprintf("item totalAmount currency (%s) must match amount currency (%s)",
					totalAmount.Currency, amount.Currency),
			}
		}
	}

	return &Item{Name: name, Quantity: quantity, Amount: amount, TotalAmount: totalAmount}, nil
}

func (i *Item) Serialize() map[string]any {
	out := map[string]any{
		"name":     i.Name,
		"quantity": i.Quantity,
		"amount":   i.Amount.Serialize(),
	}
	if i.TotalAmount != nil {
		out["totalAmount"] = i.TotalAmount.Serialize()
	} else {
		out["totalAmount"] = map[string]any{
			"value":    i.Amount.Value * float64(i.Quantity),
			"currency": i.Amount.Currency,
		}
	}
	return out
}

func (i *Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.Serialize())
}

func ParseItem(raw map[string]any) (*Item, error) {
	name, err := requireString("item", raw, "name")
	if err != nil {
		return nil, err
	}

	q, ok := raw["quantity"]
	if !ok || q == nil {
		return nil, missingField("item", "quantity", "")
	}
	quantity, err := toFloat(q)
	if err != nil {
		return nil, invalidType("item", "quantity", "number", q)
	}

	amountRaw, err := requireObject("item", raw, "amount")
	if err != nil {
		return nil, err
	}
	amount, err := ParseAmount(amountRaw)
	if err != nil {
		return nil, err
	}

	var total *Amount
	if totalRaw, err := optionalObject("item", raw, "totalAmount"); err != nil {
		return nil, err
	} else if totalRaw != nil {
		t, err := ParseAmount(totalRaw)
		if err != nil {
			return nil, err
		}
		total = &t
	}

	return NewItem(name, int(quantity), amount, total)
}
