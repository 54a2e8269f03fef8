package gramkit

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
)

// Status codes whose responses carry no parseable body; the parsing stage
// skips them and the error-raising stage treats them as success.
var noBodyStatuses = map[int]bool{
	204: true,
	301: true,
	302: true,
	304: true,
}

// DefaultParseFunc decodes JSON into generic Go values (map[string]any,
// []any, scalars).
func DefaultParseFunc(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// contentTypeFixupMiddleware rewrites the declared content type to
// application/json when the body's first non-whitespace byte is '{' or '[',
// compensating for servers that mislabel JSON as text/plain or
// text/javascript. Any charset suffix on the original header is preserved.
func contentTypeFixupMiddleware() Middleware {
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		resp, err := next.Handle(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		body := bytes.TrimLeft(resp.Bytes(), " \t\r\n")
		if len(body) == 0 || (body[0] != '{' && body[0] != '[') {
			return resp, nil
		}
		declared := resp.headerValue("Content-Type")
		fixed := "application/json"
		if i := strings.Index(declared, ";"); i >= 0 {
			fixed += declared[i:]
		}
		resp.setHeader("Content-Type", fixed)
		return resp, nil
	}
}

// parseMiddleware replaces the raw body with the value produced by parse.
// An empty or all-whitespace body becomes nil, never an error. Responses
// whose content type is not in accepted (when accepted is non-empty) and
// responses with no-body status codes pass through untouched. A parse
// failure aborts the pipeline with an ErrorTypeParsing APIError wrapping
// the decoder's error.
func parseMiddleware(parse ParseFunc, accepted []string, preserveRaw bool) Middleware {
	acceptedSet := make(map[string]bool, len(accepted))
	for _, ct := range accepted {
		acceptedSet[strings.ToLower(strings.TrimSpace(ct))] = true
	}
	return func(ctx context.Context, req *Request, next Handler) (*Response, error) {
		resp, err := next.Handle(ctx, req)
		if err != nil || resp == nil {
			return resp, err
		}
		if noBodyStatuses[resp.StatusCode] {
			return resp, nil
		}
		if len(acceptedSet) > 0 && !acceptedSet[resp.ContentType()] {
			return resp, nil
		}
		raw := resp.Bytes()
		if preserveRaw {
			resp.RawBody = raw
		}
		if len(bytes.TrimSpace(raw)) == 0 {
			resp.Body = nil
			return resp, nil
		}
		parsed, perr := parse(raw)
		if perr != nil {
			return nil, &APIError{
				Type:       ErrorTypeParsing,
				StatusCode: resp.StatusCode,
				Message:    "unable to parse response body",
				Body:       raw,
				Method:     req.Method,
				URL:        req.URL,
				Cause:      perr,
			}
		}
		resp.Body = parsed
		return resp, nil
	}
}
