package data

import "time"

// Layouts accepted when parsing API timestamps, tried in order. Serialization
// always emits RFC3339.
var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// optionalTime reads a timestamp field. When lenient, anything that is not a
// parseable timestamp becomes absent instead of an error; webhook payloads
// must never be rejected over a malformed date.
func optionalTime(object string, raw map[string]any, field string, lenient bool) (*time.Time, error) {
	v, ok := raw[field]
	if !ok || v == nil {
		return nil, nil
	}
	s, ok := v.(string)
	if !ok {
		if lenient {
			return nil, nil
		}
		return nil, invalidType(object, field, "string", v)
	}
	t, ok := parseTimestamp(s)
	if !ok {
		if lenient {
			return nil, nil
		}
		return nil, &ParseError{
			Object:   object,
			Field:    field,
			Kind:     InvalidFieldType,
			Expected: "timestamp",
			Actual:   "string",
			Reason:   "unrecognized timestamp format: " + s,
		}
	}
	return &t, nil
}
