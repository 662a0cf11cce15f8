package apierror

import (
	"fmt"
	"net/http"
)

type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Details    string `json:"details,omitempty"`
	HTTPStatus int    `json:"-"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}

	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Details)
	}

	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func New(code string, message string, details string, status int) *APIError {
	return &APIError{Code: code, Message: message, Details: details, HTTPStatus: status}
}

// FromStatus builds an error for an upstream response that carried no
// decodable error body.
func FromStatus(status int) *APIError {
	code := "UPSTREAM_ERROR"
	switch {
	case status == http.StatusUnauthorized:
		code = "UNAUTHORIZED"
	case status == http.StatusForbidden:
		code = "FORBIDDEN"
	case status == http.StatusNotFound:
		code = "NOT_FOUND"
	case status == http.StatusConflict:
		code = "CONFLICT"
	case status >= 500:
		code = "UPSTREAM_UNAVAILABLE"
	}

	return &APIError{Code: code, Message: http.StatusText(status), HTTPStatus: status}
}

// IsConflict reports whether the error is a 409-class upstream response.
func (e *APIError) IsConflict() bool {
	return e != nil && e.HTTPStatus == http.StatusConflict
}

// IsAuth reports whether the upstream rejected the caller's credentials.
func (e *APIError) IsAuth() bool {
	return e != nil && (e.HTTPStatus == http.StatusUnauthorized || e.HTTPStatus == http.StatusForbidden)
}
