package gramkit

import (
	"errors"
	"fmt"
)

// Error type classifications carried by APIError.Type.
const (
	ErrorTypeParsing      = "Parsing"
	ErrorTypeBadRequest   = "BadRequest"
	ErrorTypeUnauthorized = "Unauthorized"
	ErrorTypeForbidden    = "Forbidden"
	ErrorTypeNotFound     = "NotFound"
	ErrorTypeRateLimited  = "RateLimited"
	ErrorTypeClient       = "Client"
	ErrorTypeServer       = "Server"
	ErrorTypeHTTP         = "HTTP"
	ErrorTypeNetwork      = "Network"
	ErrorTypeValidation   = "Validation"
)

// APIError is the error surfaced by the pipeline for status-code failures,
// parse failures and transport failures. Body holds whatever the pipeline
// last set on the response (parsed structure when parsing succeeded, raw
// bytes otherwise) so error payloads stay inspectable.
type APIError struct {
	Type       string
	StatusCode int
	Message    string
	Body       any
	Method     string
	URL        string
	RequestID  string
	Cause      error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %s", e.Type, e.Message)
	if e.StatusCode > 0 {
		msg = fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Cause)
	}
	if e.RequestID != "" {
		msg = fmt.Sprintf("[%s] %s", e.RequestID, msg)
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *APIError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is compares error types for errors.Is.
func (e *APIError) Is(target error) bool {
	if e == nil {
		return false
	}
	if targetErr, ok := target.(*APIError); ok {
		return e.Type == targetErr.Type
	}
	return false
}

// DebugInfo renders a multi-line string with diagnostic context.
func (e *APIError) DebugInfo() string {
	if e == nil {
		return "Error: <nil>"
	}
	info := fmt.Sprintf("Error Type: %s\n", e.Type)
	info += fmt.Sprintf("Message: %s\n", e.Message)
	if e.RequestID != "" {
		info += fmt.Sprintf("Request ID: %s\n", e.RequestID)
	}
	if e.Method != "" {
		info += fmt.Sprintf("Method: %s\n", e.Method)
	}
	if e.URL != "" {
		info += fmt.Sprintf("URL: %s\n", e.URL)
	}
	if e.StatusCode > 0 {
		info += fmt.Sprintf("Status Code: %d\n", e.StatusCode)
	}
	if e.Cause != nil {
		info += fmt.Sprintf("Cause: %v\n", e.Cause)
	}
	return info
}

// IsNotFound reports whether err is a 404-class API error.
func IsNotFound(err error) bool { return isErrorType(err, ErrorTypeNotFound) }

// IsUnauthorized reports whether err is a 401-class API error.
func IsUnauthorized(err error) bool { return isErrorType(err, ErrorTypeUnauthorized) }

// IsRateLimited reports whether err is a 429-class API error.
func IsRateLimited(err error) bool { return isErrorType(err, ErrorTypeRateLimited) }

// IsParsing reports whether err is a body-parse failure.
func IsParsing(err error) bool { return isErrorType(err, ErrorTypeParsing) }

// IsClientError reports whether err carries any 4xx status.
func IsClientError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500
	}
	return false
}

// IsServerError reports whether err carries any 5xx status.
func IsServerError(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}
	return false
}

// IsTransient determines if an error represents a failure that might succeed
// on a later attempt: network errors, 5xx responses, and rate limiting (429).
// Retrying is the caller's responsibility; this only classifies.
func IsTransient(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Type {
		case ErrorTypeNetwork, ErrorTypeServer, ErrorTypeRateLimited:
			return true
		case ErrorTypeClient:
			return apiErr.StatusCode == 429
		default:
			return false
		}
	}
	return false
}

func isErrorType(err error, errorType string) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Type == errorType
	}
	return false
}
