package data

// Shared helpers for pulling typed fields out of decoded JSON objects. The
// API mixes shapes across endpoints, so parsing works on map[string]any and
// each value object decides which fields are required.

func requireString(object string, raw map[string]any, field string) (string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return "", missingField(object, field, "")
	}
	s, ok := v.(string)
	if !ok {
		return "", invalidType(object, field, "string", v)
	}
	return s, nil
}

func optionalString(object string, raw map[string]any, field string) (*string, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		return nil, invalidType(object, field, "string", v)
	}
	return &s, nil
}

func requireObject(object string, raw map[string]any, field string) (map[string]any, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, missingField(object, field, "")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType(object, field, "object", v)
	}
	return m, nil
}

func optionalObject(object string, raw map[string]any, field string) (map[string]any, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalidType(object, field, "object", v)
	}
	return m, nil
}
