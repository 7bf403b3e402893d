package data

import "encoding/json"

// Buyer is the optional customer block attached to a checkout. Every field is
// optional; an empty Buyer serializes to an empty object.
type Buyer struct {
	FirstName       *string
	MiddleName      *string
	LastName        *string
	Contact         *Contact
	ShippingAddress *Address
	BillingAddress  *Address
}

func (b *Buyer) Serialize() map[string]any {
	out := map[string]any{}
	if b.FirstName != nil {
		out["firstName"] = *b.FirstName
	}
	if b.MiddleName != nil {
		out["middleName"] = *b.MiddleName
	}
	if b.LastName != nil {
		out["lastName"] = *b.LastName
	}
	if b.Contact != nil {
		out["contact"] = b.Contact.Serialize()
	}
	if b.ShippingAddress != nil {
		out["shippingAddress"] = b.ShippingAddress.Serialize()
	}
	if b.BillingAddress != nil {
		out["billingAddress"] = b.BillingAddress.Serialize()
	}
	return out
}

func (b *Buyer) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Serialize())
}

func ParseBuyer(raw map[string]any) (*Buyer, error) {
	buyer := &Buyer{}

	var err error
	if buyer.FirstName, err = optionalString("buyer", raw, "firstName"); err != nil {
		return nil, err
	}
	if buyer.MiddleName, err = optionalString("buyer", raw, "middleName"); err != nil {
		return nil, err
	}
	if buyer.LastName, err = optionalString("buyer", raw, "lastName"); err != nil {
		return nil, err
	}

	if contact, err := optionalObject("buyer", raw, "contact"); err != nil {
		return nil, err
	} else if contact != nil {
		if buyer.Contact, err = ParseContact(contact); err != nil {
			return nil, err
		}
	}
	if shipping, err := optionalObject("buyer", raw, "shippingAddress"); err != nil {
		return nil, err
	} else if shipping != nil {
		if buyer.ShippingAddress, err = ParseAddress(shipping); err != nil {
			return nil, err
		}
	}
	if billing, err := optionalObject("buyer", raw, "billingAddress"); err != nil {
		return nil, err
	} else if billing != nil {
		if buyer.BillingAddress, err = ParseAddress(billing); err != nil {
			return nil, err
		}
	}

	return buyer, nil
}
