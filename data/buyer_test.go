package data

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyerSerialize(t *testing.T) {
	t.Run("EmptyBuyerIsEmptyObject", func(t *testing.T) {
		encoded, err := json.Marshal(&Buyer{})
		require.NoError(t, err)
		assert.Equal(t, "{}", string(encoded))
	})

	t.Run("SparseFields", func(t *testing.T) {
		b := &Buyer{
			FirstName: String("Juan"),
			LastName:  String("Dela Cruz"),
			ShippingAddress: &Address{
				City:        String("Manila"),
				CountryCode: String("PH"),
			},
		}
		out := b.Serialize()

		assert.Equal(t, "Juan", out["firstName"])
		assert.NotContains(t, out, "middleName")
		assert.NotContains(t, out, "contact")
		assert.NotContains(t, out, "billingAddress")

		shipping, ok := out["shippingAddress"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Manila", shipping["city"])
		assert.NotContains(t, shipping, "line1")
	})
}

func TestParseBuyer(t *testing.T) {
	t.Run("Recursive", func(t *testing.T) {
		raw := map[string]any{
			"firstName": "Maria",
			"contact": map[string]any{
				"email": "maria@example.com",
			},
			"billingAddress": map[string]any{
				"line1":       "123 Rizal Ave",
				"countryCode": "PH",
			},
		}
		b, err := ParseBuyer(raw)
		require.NoError(t, err)
		require.NotNil(t, b.FirstName)
		assert.Equal(t, "Maria", *b.FirstName)
		require.NotNil(t, b.Contact)
		require.NotNil(t, b.Contact.Email)
		assert.Equal(t, "maria@example.com", *b.Contact.Email)
		require.NotNil(t, b.BillingAddress)
		require.NotNil(t, b.BillingAddress.Line1)
		assert.Equal(t, "123 Rizal Ave", *b.BillingAddress.Line1)
		assert.Nil(t, b.ShippingAddress)
	})

	t.Run("WrongNestedType", func(t *testing.T) {
		_, err := ParseBuyer(map[string]any{"contact": "not-an-object"})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, InvalidFieldType, perr.Kind)
		assert.Equal(t, "contact", perr.Field)
	})
}

func TestAddressRoundTrip(t *testing.T) {
	addr := &Address{
		Line1:   String("Unit 4B"),
		City:    String("Quezon City"),
		ZipCode: String("1100"),
	}
	parsed, err := ParseAddress(addr.Serialize())
	require.NoError(t, err)
	assert.Equal(t, addr, parsed)
	assert.NotContains(t, addr.Serialize(), "state")
}
