package sdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
)

// Kind classifies errors produced at the API boundary.
type Kind int

const (
	// KindValidation marks input rejected client-side, before any network
	// call was made.
	KindValidation Kind = iota
	// KindUnauthorized marks a 401 response: the credential is invalid or
	// expired. The dispatcher has already run the global expiry reaction
	// by the time the caller sees this.
	KindUnauthorized
	// KindAPI marks any other non-2xx response, with the message
	// normalized from the body.
	KindAPI
)

// Error is the single normalized form of the server's divergent error
// shapes: a flat {"error": ...}, a {"detail": ...}, or a per-field map.
// Field is set when the server attributed the problem to one input field.
type Error struct {
	Kind    Kind
	Status  int // HTTP status, 0 for validation errors
	Field   string
	Message string
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// IsUnauthorized reports whether err is a credential rejection (401).
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnauthorized
}

func validationError(field, message string) *Error {
	return &Error{Kind: KindValidation, Field: field, Message: message}
}

// decodeError normalizes a non-2xx response body into an Error. The most
// specific message wins: a flat message, then the first field-level entry,
// then a generic fallback.
func decodeError(status int, body []byte) *Error {
	kind := KindAPI
	if status == http.StatusUnauthorized {
		kind = KindUnauthorized
	}
	e := &Error{Kind: kind, Status: status, Message: fmt.Sprintf("request failed with status %d", status)}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}

	// Flat shapes.
	for _, key := range []string{"error", "detail"} {
		raw, ok := payload[key]
		if !ok {
			continue
		}
		var msg string
		if json.Unmarshal(raw, &msg) == nil && msg != "" {
			e.Message = msg
			return e
		}
	}

	// Per-field map, e.g. {"username": ["A user with that username already
	// exists."]}. Keys are sorted so the reported field is deterministic.
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		raw := payload[key]
		var msgs []string
		if json.Unmarshal(raw, &msgs) == nil && len(msgs) > 0 {
			e.Field, e.Message = key, msgs[0]
			return e
		}
		var msg string
		if json.Unmarshal(raw, &msg) == nil && msg != "" {
			e.Field, e.Message = key, msg
			return e
		}
	}
	return e
}
