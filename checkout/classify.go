package checkout

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// classifyStatus maps a non-success response onto one typed error. It works
// on the status code and body alone, free of any transport types, so the
// classification table is testable in isolation.
func classifyStatus(status int, body []byte) error {
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &AuthenticationError{StatusCode: status}
	case http.StatusUnprocessableEntity:
		return &ValidationFailure{Errors: parseValidationErrors(body)}
	}

	apiErr := &APIError{StatusCode: status, Body: body}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err == nil {
		if msg, ok := raw["message"].(string); ok {
			apiErr.Message = msg
		}
		if code, ok := raw["code"]; ok && code != nil {
			apiErr.Code = fmt.Sprintf("%v", code)
		}
	}
	return apiErr
}

// parseValidationErrors normalizes the two 422 body shapes the gateway
// emits: a "parameters" array of {field, description} objects, and a generic
// "errors" map of field -> message or field -> [messages].
func parseValidationErrors(body []byte) map[string][]string {
	errs := map[string][]string{}

	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		return errs
	}

	if params, ok := raw["parameters"].([]any); ok {
		for _, p := range params {
			param, ok := p.(map[string]any)
			if !ok {
				continue
			}
			field, okField := param["field"].(string)
			description, okDesc := param["description"].(string)
			if okField && okDesc {
				errs[field] = append(errs[field], description)
			}
		}
		return errs
	}

	if generic, ok := raw["errors"].(map[string]any); ok {
		for field, v := range generic {
			switch messages := v.(type) {
			case string:
				errs[field] = append(errs[field], messages)
			case []any:
				for _, m := range messages {
					if s, ok := m.(string); ok {
						errs[field] = append(errs[field], s)
					}
				}
			}
		}
	}
	return errs
}
