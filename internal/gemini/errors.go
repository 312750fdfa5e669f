package gemini

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// ErrPermissionDenied marks responses where the API rejected the credential.
var ErrPermissionDenied = errors.New("gemini: permission denied")

// StatusError is a non-2xx reply from the generative-language API.
type StatusError struct {
	Code    int
	Status  string
	Message string
}

func (e *StatusError) Error() string {
	status := strings.TrimSpace(e.Status)
	if status == "" {
		status = http.StatusText(e.Code)
	}
	if e.Message == "" {
		return fmt.Sprintf("api returned status %d (%s)", e.Code, status)
	}
	return fmt.Sprintf("api returned status %d (%s): %s", e.Code, status, e.Message)
}

// Unwrap lets errors.Is match ErrPermissionDenied for authorization failures.
func (e *StatusError) Unwrap() error {
	if e.denied() {
		return ErrPermissionDenied
	}
	return nil
}

func (e *StatusError) denied() bool {
	if e.Code == http.StatusUnauthorized || e.Code == http.StatusForbidden {
		return true
	}
	return strings.EqualFold(strings.TrimSpace(e.Status), "PERMISSION_DENIED")
}

// translateError maps SDK errors onto StatusError; other errors pass through.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &StatusError{Code: apiErr.Code, Status: apiErr.Status, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &StatusError{Code: apiErrPtr.Code, Status: apiErrPtr.Status, Message: apiErrPtr.Message}
	}
	return err
}
