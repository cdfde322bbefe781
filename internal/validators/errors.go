package validators

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnsupportedType is returned when Validate receives an object it cannot
// inspect (anything that is not a struct or a pointer to one).
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError reports one or more request fields failing their schema.
//
// Fields maps the JSON name of each offending field to a human-readable
// message. The error is matched by the transport layer with [errors.As] and
// rendered with field-level detail in the response body.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface. Field names are sorted so the
// message is deterministic.
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("validation failed: ")
	for i, name := range names {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(name)
		sb.WriteString(" ")
		sb.WriteString(e.Fields[name])
	}
	return sb.String()
}
