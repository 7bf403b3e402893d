package data

import "encoding/json"

// Address is a fully optional postal address. Absent fields stay out of the
// serialized object.
type Address struct {
	Line1       *string
	Line2       *string
	City        *string
	State       *string
	ZipCode     *string
	CountryCode *string
}

func (a *Address) Serialize() map[string]any {
	out := map[string]any{}
	put := func(key string, v *string) {
		if v != nil {
			out[key] = *v
		}
	}
	put("line1", a.Line1)
	put("line2", a.Line2)
	put("city", a.City)
	put("state", a.State)
	put("zipCode", a.ZipCode)
	put("countryCode", a.CountryCode)
	return out
}

func (a *Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.Serialize())
}

func ParseAddress(raw map[string]any) (*Address, error) {
	addr := &Address{}
	for _, f := range []struct {
		key  string
		dest **string
	}{
		{"line1", &addr.Line1},
		{"line2", &addr.Line2},
		{"city", &addr.City},
		{"state", &addr.State},
		{"zipCode", &addr.ZipCode},
		{"countryCode", &addr.CountryCode},
	} {
		v, err := optionalString("address", raw, f.key)
		if err != nil {
			return nil, err
		}
		*f.dest = v
	}
	return addr, nil
}
