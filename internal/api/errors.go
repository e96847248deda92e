package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Error is a non-2xx backend response. Message holds the errors.body field of
// the response and is empty when the body is missing or not JSON.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed: %d %s", e.Status, http.StatusText(e.Status))
}

// Message extracts the text to show for a failed call: the backend's
// errors.body for API errors, the error text for anything else.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}

func decodeError(status int, body []byte) *Error {
	out := &Error{Status: status}
	var payload struct {
		Errors struct {
			Body string `json:"body"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return out
	}
	out.Message = strings.TrimSpace(payload.Errors.Body)
	return out
}
