package gramkit

import (
	"context"
	"fmt"
	"net/http"
)

// DefaultStatusErrorTypes maps well-known status codes to error types. The
// mapping is a starting point, not an exhaustive list; override or extend it
// with WithStatusErrorTypes. Codes outside the map fall back to the 4xx/5xx
// class types.
func DefaultStatusErrorTypes() map[int]string {
	return map[int]string{
		http.StatusBadRequest:          ErrorTypeBadRequest,
		http.StatusUnauthorized:        ErrorTypeUnauthorized,
		http.StatusForbidden:           ErrorTypeForbidden,
		http.StatusNotFound:            ErrorTypeNotFound,
		http.StatusTooManyRequests:     ErrorTypeRateLimited,
		http.StatusInternalServerError: ErrorTypeServer,
		http.StatusBadGateway:          ErrorTypeServer,
		http.StatusServiceUnavailable:  ErrorTypeServer,
		http.StatusGatewayTimeout:      ErrorTypeServer,
	}
}

// raiseMiddleware inspects the final status code once the inner parsing
// stages have completed and turns failure ranges into typed APIErrors. The
// error carries whatever body the pipeline last produced, so structured
// error payloads stay inspectable. Success responses pass through untouched.
func raiseMiddleware(statusTypes map[int]string) Middleware {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		resp, err := next.Handle(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		code := resp.StatusCode
		if code >= 200 && code < 300 {
			return resp, nil
		}
		if noBodyStatuses[code] {
			return resp, nil
		}
		errType, ok := statusTypes[code]
		if !ok {
			switch {
			case code >= 400 && code < 500:
				errType = ErrorTypeClient
			case code >= 500 && code < 600:
				errType = ErrorTypeServer
			default:
				errType = ErrorTypeHTTP
			}
		}
		return nil, &APIError{
			Type:       errType,
			StatusCode: code,
			Message:    errorMessage(resp, code),
			Body:       resp.Body,
			Method:     req.Method,
			URL:        req.URL,
		}
	}
}

// errorMessage pulls the API's own error description out of the standard
// {"meta": {"error_message": ...}} envelope when the body was parsed, and
// falls back to the HTTP status text.
func errorMessage(resp *Response, code int) string {
	switch body := resp.Body.(type) {
	case *Mash:
		if msg := body.Sub("meta").String("error_message"); msg != "" {
			return msg
		}
	case map[string]any:
		if meta, ok := body["meta"].(map[string]any); ok {
			if msg, ok := meta["error_message"].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := http.StatusText(code); text != "" {
		return text
	}
	return fmt.Sprintf("request failed with status %d", code)
}
