package data

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedirectURLs(t *testing.T) {
	valid := map[string]string{
		"success": "https://shop.example.com/done",
		"failure": "https://shop.example.com/failed",
		"cancel":  "https://shop.example.com/cancelled",
	}

	build := func(overrides map[string]string) (*RedirectURLs, error) {
		urls := map[string]string{}
		for k, v := range valid {
			urls[k] = v
		}
		for k, v := range overrides {
			urls[k] = v
		}
		return NewRedirectURLs(urls["success"], urls["failure"], urls["cancel"])
	}

	t.Run("AllValid", func(t *testing.T) {
		r, err := build(nil)
		require.NoError(t, err)
		assert.Equal(t, valid["success"], r.Success)
		assert.Equal(t, map[string]any{
			"success": valid["success"],
			"failure": valid["failure"],
			"cancel":  valid["cancel"],
		}, r.Serialize())
	})

	t.Run("HTTPSchemeAccepted", func(t *testing.T) {
		_, err := build(map[string]string{"cancel": "http://localhost:8080/cancel"})
		assert.NoError(t, err)
	})

	for _, field := range []string{"success", "failure", "cancel"} {
		t.Run(fmt.Sprintf("Blank_%s", field), func(t *testing.T) {
			_, err := build(map[string]string{field: "   "})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
			assert.Contains(t, verr.Message, field)
		})

		t.Run(fmt.Sprintf("Malformed_%s", field), func(t *testing.T) {
			_, err := build(map[string]string{field: "not a url at all"})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
		})

		t.Run(fmt.Sprintf("WrongScheme_%s", field), func(t *testing.T) {
			_, err := build(map[string]string{field: "ftp://example.com/x"})
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, field, verr.Field)
			assert.Contains(t, verr.Message, "http")
		})
	}
}

func TestParseRedirectURLs(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		r, err := NewRedirectURLs("https://a.example.com", "https://b.example.com", "https://c.example.com")
		require.NoError(t, err)
		parsed, err := ParseRedirectURLs(r.Serialize())
		require.NoError(t, err)
		assert.Equal(t, r, parsed)
	})

	t.Run("MissingField", func(t *testing.T) {
		_, err := ParseRedirectURLs(map[string]any{"success": "https://a.example.com"})
		var perr *ParseError
		require.ErrorAs(t, err, &perr)
		assert.Equal(t, MissingField, perr.Kind)
		assert.Equal(t, "failure", perr.Field)
	})
}
