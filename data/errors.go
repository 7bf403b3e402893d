package data

import "fmt"

// ValidationError reports a value rejected at construction time. It carries
// the field the rule applies to so callers can surface precise messages.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ParseError kinds.
const (
	MissingField     = "missing field"
	InvalidFieldType = "invalid field type"
)

// ParseError reports an API response that could not be normalized into its
// typed form. Kind distinguishes a field that is absent from one that is
// present with the wrong type.
type ParseError struct {
	Object   string
	Field    string
	Kind     string
	Expected string
	Actual   string
	Reason   string
}

func (e *ParseError) Error() string {
	if e.Kind == InvalidFieldType {
		return fmt.Sprintf("failed to parse %s: field %q must be of type %s, got %s",
			e.Object, e.Field, e.Expected, e.Actual)
	}
	msg := fmt.Sprintf("failed to parse %s: missing required field %q", e.Object, e.Field)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func missingField(object, field, reason string) *ParseError {
	return &ParseError{Object: object, Field: field, Kind: MissingField, Reason: reason}
}

func invalidType(object, field, expected string, actual any) *ParseError {
	return &ParseError{
		Object:   object,
		Field:    field,
		Kind:     InvalidFieldType,
		Expected: expected,
		Actual:   fmt.Sprintf("%T", actual),
	}
}
