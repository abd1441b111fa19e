package apiclient

import (
	"fmt"
	"net/http"
	"sort"

	"github.com/go-playground/errors/v5"
)

// ErrUnauthorized is returned when the API rejects the bearer token.
var ErrUnauthorized = errors.New("api: unauthorized")

// ValidationError is a 422 response. Errors maps field names to messages.
type ValidationError struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return "api: validation failed: " + e.Message
	}

	return "api: validation failed"
}

// FieldErrors returns the first message for every field.
func (e *ValidationError) FieldErrors() map[string]string {
	fields := make(map[string]string, len(e.Errors))
	for field, msgs := range e.Errors {
		if len(msgs) > 0 {
			fields[field] = msgs[0]
		}
	}

	return fields
}

// Fields returns the names of the fields that failed, sorted.
func (e *ValidationError) Fields() []string {
	names := make([]string, 0, len(e.Errors))
	for field := range e.FieldErrors() {
		names = append(names, field)
	}
	sort.Strings(names)

	return names
}

// StatusError is any other non-2xx response.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
	}

	return fmt.Sprintf("api: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// IsUnauthorized reports whether err, or any error it wraps, is ErrUnauthorized.
func IsUnauthorized(err error) bool {
	return errors.Is(err, ErrUnauthorized)
}

// AsValidation returns the ValidationError wrapped by err, if any.
func AsValidation(err error) (*ValidationError, bool) {
	var v *ValidationError
	if errors.As(err, &v) {
		return v, true
	}

	return nil, false
}

// ServerMessage returns the message the API attached to a failure, or an
// empty string.
func ServerMessage(err error) string {
	if v, ok := AsValidation(err); ok {
		return v.Message
	}
	var s *StatusError
	if errors.As(err, &s) {
		return s.Message
	}

	return ""
}
