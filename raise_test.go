package gramkit

import (
	"context"
	"errors"
	"testing"
)

func TestRaiseSuccessCodes(t *testing.T) {
	for _, code := range []int{200, 201, 202, 204, 301, 302, 304} {
		resp, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{
			StatusCode: code,
			Body:       []byte("anything"),
		})
		if err != nil {
			t.Errorf("status %d: unexpected error %v", code, err)
		}
		if resp == nil {
			t.Errorf("status %d: response dropped", code)
		}
	}
}

func TestRaiseKnownStatusCodes(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{400, ErrorTypeBadRequest},
		{401, ErrorTypeUnauthorized},
		{403, ErrorTypeForbidden},
		{404, ErrorTypeNotFound},
		{429, ErrorTypeRateLimited},
		{500, ErrorTypeServer},
		{502, ErrorTypeServer},
		{503, ErrorTypeServer},
		{504, ErrorTypeServer},
	}
	for _, tt := range tests {
		_, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{StatusCode: tt.code})
		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("status %d: expected APIError, got %v", tt.code, err)
		}
		if apiErr.Type != tt.expected {
			t.Errorf("status %d: type %q, want %q", tt.code, apiErr.Type, tt.expected)
		}
		if apiErr.StatusCode != tt.code {
			t.Errorf("status %d: error carries status %d", tt.code, apiErr.StatusCode)
		}
	}
}

func TestRaiseFallbackClasses(t *testing.T) {
	tests := []struct {
		code     int
		expected string
	}{
		{418, ErrorTypeClient},
		{511, ErrorTypeServer},
		{307, ErrorTypeHTTP},
	}
	for _, tt := range tests {
		_, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{StatusCode: tt.code})
		if !isErrorType(err, tt.expected) {
			t.Errorf("status %d: got %v, want type %s", tt.code, err, tt.expected)
		}
	}
}

func TestRaiseConfigurableMapping(t *testing.T) {
	custom := DefaultStatusErrorTypes()
	custom[418] = ErrorTypeRateLimited
	_, err := runStage(t, raiseMiddleware(custom), &Response{StatusCode: 418})
	if !IsRateLimited(err) {
		t.Errorf("custom mapping ignored: %v", err)
	}
}

func TestRaiseCarriesParsedBody(t *testing.T) {
	body := NewMash(map[string]any{
		"meta": map[string]any{"error_message": "invalid access token", "code": float64(400)},
	})
	_, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{
		StatusCode: 400,
		Body:       body,
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Body != body {
		t.Error("error must carry the parsed body")
	}
	if apiErr.Message != "invalid access token" {
		t.Errorf("message = %q, want API error envelope message", apiErr.Message)
	}
}

func TestRaiseMessageFromPlainMap(t *testing.T) {
	_, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{
		StatusCode: 429,
		Body:       map[string]any{"meta": map[string]any{"error_message": "rate limit exceeded"}},
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "rate limit exceeded" {
		t.Errorf("message = %q", apiErr.Message)
	}
}

func TestRaiseStatusTextFallback(t *testing.T) {
	_, err := runStage(t, raiseMiddleware(DefaultStatusErrorTypes()), &Response{
		StatusCode: 404,
		Body:       []byte("raw"),
	})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Message != "Not Found" {
		t.Errorf("message = %q, want status text fallback", apiErr.Message)
	}
}

func TestRaisePassesInnerErrorsThrough(t *testing.T) {
	inner := &APIError{Type: ErrorTypeParsing, Message: "boom"}
	m := raiseMiddleware(DefaultStatusErrorTypes())
	_, err := m(context.Background(), &Request{Method: "GET", URL: "test"}, HandlerFunc(
		func(ctx context.Context, req *Request) (*Response, error) { return nil, inner },
	))
	if err != inner {
		t.Errorf("inner error must pass through unchanged, got %v", err)
	}
}
