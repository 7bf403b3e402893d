package data

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
)

// RedirectURLs are the targets the payer is sent to after a checkout. All
// three are required and each must be a well-formed http(s) URL.
type RedirectURLs struct {
	Success string
	Failure string
	Cancel  string
}

func NewRedirectURLs(success, failure, cancel string) (*RedirectURLs, error) {
	fields := []struct {
		name  string
		value string
	}{
		{"success", success},
		{"failure", failure},
		{"cancel", cancel},
	}

	for _, f := range fields {
		trimmed := strings.TrimSpace(f.value)
		if trimmed == "" {
			return nil, &ValidationError{Field: f.name, Message: f.name + " URL cannot be empty"}
		}
		u, err := url.Parse(trimmed)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return nil, &ValidationError{
				Field:   f.name,
				Message: fmt.Sprintf("invalid %s URL format: %s", f.name, f.value),
			}
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, &ValidationError{
				Field:   f.name,
				Message: f.name + " URL must use http:// or https:// scheme",
			}
		}
	}

	return &RedirectURLs{Success: success, Failure: failure, Cancel: cancel}, nil
}

func (r *RedirectURLs) Serialize() map[string]any {
	return map[string]any{
		"success": r.Success,
		"failure": r.Failure,
		"cancel":  r.Cancel,
	}
}

func (r *RedirectURLs) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Serialize())
}

func ParseRedirectURLs(raw map[string]any) (*RedirectURLs, error) {
	success, err := requireString("redirectUrl", raw, "success")
	if err != nil {
		return nil, err
	}
	failure, err := requireString("redirectUrl", raw, "failure")
	if err != nil {
		return nil, err
	}
	cancel, err := requireString("redirectUrl", raw, "cancel")
	if err != nil {
		return nil, err
	}
	return NewRedirectURLs(success, failure, cancel)
}
