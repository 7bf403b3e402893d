package data

import (
	"encoding/json"
	"net/mail"
	"strings"
)

// Contact is a buyer's phone and email. Both are optional, but a present
// value must be non-blank and the email must be a valid address.
type Contact struct {
	Phone *string
	Email *string
}

func NewContact(phone, email *string) (*Contact, error) {
	if phone != nil && strings.TrimSpace(*phone) == "" {
		return nil, &ValidationError{Field: "phone", Message: "phone number cannot be empty"}
	}
	if email != nil {
		trimmed := strings.TrimSpace(*email)
		if trimmed == "" {
			return nil, &ValidationError{Field: "email", Message: "email cannot be empty"}
		}
		if _, err := mail.ParseAddress(trimmed); err != nil {
			return nil, &ValidationError{Field: "email", Message: "invalid email format: " + trimmed}
		}
	}
	return &Contact{Phone: phone, Email: email}, nil
}

func (c *Contact) Serialize() map[string]any {
	out := map[string]any{}
	if c.Phone != nil {
		out["phone"] = *c.Phone
	}
	if c.Email != nil {
		out["email"] = *c.Email
	}
	return out
}

func (c *Contact) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Serialize())
}

func ParseContact(raw map[string]any) (*Contact, error) {
	phone, err := optionalString("contact", raw, "phone")
	if err != nil {
		return nil, err
	}
	email, err := optionalString("contact", raw, "email")
	if err != nil {
		return nil, err
	}
	return NewContact(phone, email)
}
