package catalog

import (
	"net/url"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationError reports malformed input. It carries one entry per
// offending field so callers can render a useful message.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Field + ": " + f.Description
	}
	return "invalid input: " + strings.Join(msgs, "; ")
}

func (e *ValidationError) add(field, description string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Description: description})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func validURL(raw string) bool {
	u, err := url.ParseRequestURI(raw)
	return err == nil && u.Scheme != "" && u.Host != ""
}
