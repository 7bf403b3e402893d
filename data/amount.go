// Package data holds the value objects exchanged with the Maya checkout and
// refund API. Every type validates itself on construction, serializes to a
// sparse map (absent optional fields are omitted, never emitted as null) and
// has a Parse counterpart that normalizes the shapes the API actually returns.
package data

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Currency codes the API accepts (ISO 4217).
var supportedCurrencies = []string{"PHP", "USD", "EUR", "GBP", "JPY", "AUD", "CAD", "SGD", "HKD", "CNY"}

// Amount is a monetary value paired with its currency code. The currency
// check is case-insensitive but the code is stored and serialized as given.
type Amount struct {
	Value    float64
	Currency string
}

// NewAmount validates the value range and the currency whitelist.
func NewAmount(value float64, currency string) (Amount, error) {
	if value < 0 {
		return Amount{}, &ValidationError{Field: "value", Message: "amount value cannot be negative"}
	}
	if !isSupportedCurrency(currency) {
		return Amount{}, &ValidationError{
			Field: "currency",
			Message: fmt.Sprintf("invalid currency code: %s, supported currencies: %s",
				currency, strings.Join(supportedCurrencies, ", ")),
		}
	}
	return Amount{Value: value, Currency: currency}, nil
}

func isSupportedCurrency(currency string) bool {
	upper := strings.ToUpper(currency)
	for _, c := range supportedCurrencies {
		if c == upper {
			return true
		}
	}
	return false
}

func (a Amount) Serialize() map[string]any {
	return map[string]any{
		"value":    a.Value,
		"currency": a.Currency,
	}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Serialize())
}

// ParseAmount normalizes an amount object from an API response. The currency
// defaults to PHP when absent and the value is coerced from any numeric
// representation, including numeric strings.
func ParseAmount(raw map[string]any) (Amount, error) {
	v, ok := raw["value"]
	if !ok || v == nil {
		return Amount{}, missingField("amount", "value", "")
	}
	value, err := toFloat(v)
	if err != nil {
		return Amount{}, invalidType("amount", "value", "number", v)
	}

	currency := "PHP"
	if c, ok := raw["currency"]; ok && c != nil {
		s, ok := c.(string)
		if !ok {
			return Amount{}, invalidType("amount", "currency", "string", c)
		}
		currency = s
	}

	return NewAmount(value, currency)
}

func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		return n.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	default:
		return 0, fmt.Errorf("not a number: %T", v)
	}
}
