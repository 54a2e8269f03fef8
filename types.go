package gramkit

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Request describes one outgoing API call before it reaches the transport.
// Middleware may mutate it until it is handed to the adapter; after dispatch
// it is treated as immutable.
type Request struct {
	Method string
	// URL is either an endpoint path relative to the client base URL
	// ("users/self/feed") or an absolute URL.
	URL    string
	Header map[string]string
	Params url.Values
	Body   []byte
}

// Response carries the result of one exchange back through the pipeline.
// Body starts as the raw bytes returned by the transport and is replaced in
// place by the parsing and object-mapping stages.
type Response struct {
	StatusCode int
	Header     map[string]string
	Body       any
	// RawBody preserves the unparsed body when the client is configured
	// with WithRawBodyPreserved.
	RawBody []byte
}

// Middleware wraps the next stage of the pipeline. A stage must call next
// exactly once (or short-circuit deliberately) and may only run its
// completion logic after next returns.
type Middleware func(ctx context.Context, req *Request, next Handler) (*Response, error)

// Handler is one link of the assembled pipeline chain.
type Handler interface {
	Handle(ctx context.Context, req *Request) (*Response, error)
}

// HandlerFunc is a helper type for middleware composition.
type HandlerFunc func(ctx context.Context, req *Request) (*Response, error)

func (f HandlerFunc) Handle(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// Transport performs the actual network I/O for a request. Timeouts and
// proxying are the adapter's responsibility, not the pipeline's.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// ParseFunc converts a raw body into a structured value. The JSON stage is
// configured with one explicitly; there is no package-level parser registry.
type ParseFunc func(data []byte) (any, error)

// Format selects what the caller gets back from a request.
type Format string

const (
	// FormatJSON parses the body and wraps mappings for key/field access.
	FormatJSON Format = "json"
	// FormatRaw returns the body exactly as received from the transport.
	FormatRaw Format = "raw"
)

// CredentialPlacement controls where the auth stage attaches credentials.
type CredentialPlacement int

const (
	// PlaceParam attaches client_id / access_token as query or form
	// parameters.
	PlaceParam CredentialPlacement = iota
	// PlaceHeader attaches a bearer Authorization header.
	PlaceHeader
	// PlaceBoth attaches both.
	PlaceBoth
)

// Adapter names the built-in transport implementations.
type Adapter string

const (
	AdapterNetHTTP Adapter = "nethttp"
	AdapterResty   Adapter = "resty"
)

// Option represents a configuration option.
type Option func(*Client)

// ContentType returns the response's declared media type without parameters,
// lowercased, or "" when absent.
func (r *Response) ContentType() string {
	ct := r.headerValue("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}

func (r *Response) headerValue(name string) string {
	if r.Header == nil {
		return ""
	}
	if v, ok := r.Header[name]; ok {
		return v
	}
	canonical := http.CanonicalHeaderKey(name)
	for k, v := range r.Header {
		if http.CanonicalHeaderKey(k) == canonical {
			return v
		}
	}
	return ""
}

func (r *Response) setHeader(name, value string) {
	if r.Header == nil {
		r.Header = map[string]string{}
	}
	canonical := http.CanonicalHeaderKey(name)
	for k := range r.Header {
		if http.CanonicalHeaderKey(k) == canonical {
			r.Header[k] = value
			return
		}
	}
	r.Header[canonical] = value
}

// Bytes returns the body as raw bytes when it still is one, or nil after a
// parsing stage replaced it.
func (r *Response) Bytes() []byte {
	if b, ok := r.Body.([]byte); ok {
		return b
	}
	return nil
}

// Text returns the body as text when it is still raw bytes or a string.
func (r *Response) Text() string {
	switch b := r.Body.(type) {
	case []byte:
		return string(b)
	case string:
		return b
	}
	return ""
}

// Mash returns the object-mapped body, or nil when the body is not a mapping
// (raw mode, scalar payloads, mapping disabled).
func (r *Response) Mash() *Mash {
	if m, ok := r.Body.(*Mash); ok {
		return m
	}
	return nil
}

// Data returns the "data" member of the standard API envelope as a Mash.
func (r *Response) Data() *Mash {
	return r.Mash().Sub("data")
}
