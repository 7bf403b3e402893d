package data

import "encoding/json"

// CheckoutResult is the canonical outcome of creating a checkout: the session
// id and the URL the payer must be redirected to.
//
// The creation endpoint is not consistent about its response shape, so
// parsing runs ordered extraction strategies: the id may arrive as
// "checkoutId" or "id", and "redirectUrl" may be a plain string or an object
// holding "checkoutUrl" or "url". First present wins.
type CheckoutResult struct {
	CheckoutID  string
	RedirectURL string
}

func (r *CheckoutResult) Serialize() map[string]any {
	return map[string]any{
		"checkoutId":  r.CheckoutID,
		"redirectUrl": r.RedirectURL,
	}
}

func (r *CheckoutResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serialize())
}

func extractCheckoutID(raw map[string]any) (any, bool) {
	for _, key := range []string{"checkoutId", "id"} {
		if v, ok := raw[key]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func extractRedirectURL(raw map[string]any) (any, bool) {
	v, ok := raw["redirectUrl"]
	if !ok || v == nil {
		return nil, false
	}
	if nested, ok := v.(map[string]any); ok {
		for _, key := range []string{"checkoutUrl", "url"} {
			if u, ok := nested[key]; ok && u != nil {
				return u, true
			}
		}
		return nil, false
	}
	return v, true
}

// ParseCheckoutResult normalizes a creation response. Both resolved values
// must be strings; anything else is an InvalidFieldType, while an exhausted
// strategy list is a MissingField.
func ParseCheckoutResult(raw map[string]any) (*CheckoutResult, error) {
	id, ok := extractCheckoutID(raw)
	if !ok {
		return nil, missingField("checkout result", "checkoutId or id",
			`the response must contain either "checkoutId" or "id"`)
	}
	checkoutID, ok := id.(string)
	if !ok {
		return nil, invalidType("checkout result", "checkoutId", "string", id)
	}

	u, ok := extractRedirectURL(raw)
	if !ok {
		return nil, missingField("checkout result", "redirectUrl",
			`the response must contain a "redirectUrl"`)
	}
	redirectURL, ok := u.(string)
	if !ok {
		return nil, invalidType("checkout result", "redirectUrl", "string", u)
	}

	return &CheckoutResult{CheckoutID: checkoutID, RedirectURL: redirectURL}, nil
}
