package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Payload validation errors, detected before any network call.
var (
	ErrEmptyPayload = errors.New("gateway: payload is empty")

	// ErrPayloadTooLarge means the payload exceeds MaxUploadSize bytes.
	ErrPayloadTooLarge = fmt.Errorf("gateway: payload exceeds %d bytes", MaxUploadSize)
)

// StatusError is a non-2xx gateway response. Body carries the raw response
// text for diagnostics.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("gateway: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("gateway: unexpected status %d: %s", e.Code, e.Body)
}

// IsNotFound reports whether err is a gateway 404. Upload uses this to
// decide whether a missing stamp may simply not have propagated yet.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == http.StatusNotFound
}
