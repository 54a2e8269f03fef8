package gramkit

import (
	"context"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the API root endpoint requests are resolved against.
const DefaultBaseURL = "https://api.instagram.com/v1/"

// DefaultOAuthBaseURL is the root for the token-exchange endpoints.
const DefaultOAuthBaseURL = "https://api.instagram.com/oauth/"

// DefaultAcceptedContentTypes lists the media types the JSON stage parses.
// The fix-up stage rewrites mislabeled JSON to application/json before the
// parser sees it, so the accepted set can stay narrow.
var DefaultAcceptedContentTypes = []string{"application/json"}

// Client is a thin API client assembling auth, encoding, parsing,
// object-mapping and error-raising middleware around a transport adapter.
// All configuration is fixed at construction; a single Client is safe for
// concurrent use. There is no retry, caching or rate limiting in this layer;
// retry policy belongs to the caller and timeouts to the transport.
type Client struct {
	baseURL       string
	oauthBaseURL  string
	format        Format
	objectMapping bool
	preserveRaw   bool
	acceptedTypes []string
	parseFn       ParseFunc
	statusTypes   map[int]string

	clientID     string
	clientSecret string
	accessToken  string
	redirectURI  string
	placement    CredentialPlacement
	signRequests bool

	adapter   Adapter
	timeout   time.Duration
	proxyURL  string
	userAgent string
	transport Transport

	middleware []Middleware
	pipeline   Handler

	metrics *MetricsCollector
	debug   *DebugConfig
	logger  Logger

	validationError error
}

// New constructs a Client from the provided functional options and assembles
// its middleware pipeline in a fixed order. A best effort validation is
// performed; call IsValid / ValidationError for errors.
func New(options ...Option) *Client {
	client := &Client{
		baseURL:       DefaultBaseURL,
		oauthBaseURL:  DefaultOAuthBaseURL,
		format:        FormatJSON,
		objectMapping: true,
		preserveRaw:   false,
		acceptedTypes: DefaultAcceptedContentTypes,
		parseFn:       DefaultParseFunc,
		statusTypes:   DefaultStatusErrorTypes(),
		placement:     PlaceParam,
		adapter:       AdapterNetHTTP,
		timeout:       defaultTransportTimeout,
		userAgent:     "gramkit/" + Version,
		middleware:    []Middleware{},
		debug:         DefaultDebugConfig(),
	}

	for _, option := range options {
		option(client)
	}

	if err := client.ValidateConfiguration(); err != nil {
		client.validationError = err
	}

	if client.transport == nil {
		transport, err := client.buildTransport()
		if err != nil && client.validationError == nil {
			client.validationError = &APIError{
				Type:    ErrorTypeValidation,
				Message: "transport construction failed",
				Cause:   err,
			}
		}
		client.transport = transport
	}

	client.pipeline = client.buildPipeline()

	return client
}

func (c *Client) buildTransport() (Transport, error) {
	cfg := TransportConfig{
		Timeout:   c.timeout,
		ProxyURL:  c.proxyURL,
		UserAgent: c.userAgent,
	}
	switch c.adapter {
	case AdapterResty:
		return NewRestyTransport(cfg)
	default:
		return NewNetTransport(cfg)
	}
}

// buildPipeline assembles the stages outermost first. The response unwinds
// through fix-up, parse, object-map and error-raise in that order, so status
// errors observe the normalized content type and carry the parsed body.
// Raw format skips object-map, parse and fix-up entirely.
func (c *Client) buildPipeline() Handler {
	stages := []Middleware{
		authMiddleware(authConfig{
			clientID:     c.clientID,
			clientSecret: c.clientSecret,
			accessToken:  c.accessToken,
			placement:    c.placement,
			signRequests: c.signRequests,
		}),
	}
	stages = append(stages, c.middleware...)
	stages = append(stages, encodeMiddleware(c.baseURL))
	stages = append(stages, raiseMiddleware(c.statusTypes))
	if c.format == FormatJSON {
		if c.objectMapping {
			stages = append(stages, mashifyMiddleware())
		}
		stages = append(stages, parseMiddleware(c.parseFn, c.acceptedTypes, c.preserveRaw))
		stages = append(stages, contentTypeFixupMiddleware())
	}

	var current Handler = HandlerFunc(func(ctx context.Context, req *Request) (*Response, error) {
		return c.transport.Do(ctx, req)
	})

	for i := len(stages) - 1; i >= 0; i-- {
		middleware := stages[i]
		next := current
		current = HandlerFunc(func(ctx context.Context, req *Request) (*Response, error) {
			return middleware(ctx, req, next)
		})
	}

	return current
}

// Get performs a GET against an endpoint path with optional parameters.
func (c *Client) Get(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: "GET", URL: path, Params: cloneValues(params)})
}

// Post performs a POST; parameters are form-encoded by the pipeline.
func (c *Client) Post(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: "POST", URL: path, Params: cloneValues(params)})
}

// Delete performs a DELETE; parameters are query-encoded by the pipeline.
func (c *Client) Delete(ctx context.Context, path string, params url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: "DELETE", URL: path, Params: cloneValues(params)})
}

// Do executes one request through the full middleware pipeline.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if c.validationError != nil {
		return nil, c.validationError
	}

	start := time.Now()
	endpoint := endpointFromRequest(req)

	var requestID string
	if c.debug != nil && c.debug.Enabled && c.debug.RequestIDGen != nil {
		requestID = c.debug.RequestIDGen()
	}

	if c.debug != nil && c.debug.Enabled && c.debug.LogRequests && c.logger != nil {
		c.logger.Debug("Starting request", "requestID", requestID, "method", req.Method, "endpoint", endpoint)
	}

	if c.metrics != nil {
		c.metrics.RecordRequestStart(req.Method, endpoint)
	}

	resp, err := c.pipeline.Handle(ctx, req)

	if c.metrics != nil {
		c.metrics.RecordRequestEnd(req.Method, endpoint)
	}

	duration := time.Since(start)
	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	if err != nil {
		err = c.annotate(err, requestID)
		if c.metrics != nil {
			if apiErr, ok := err.(*APIError); ok {
				if apiErr.StatusCode > 0 {
					statusCode = apiErr.StatusCode
				}
				if apiErr.Type == ErrorTypeParsing {
					c.metrics.RecordParseFailure(req.Method, endpoint)
				}
				c.metrics.RecordError(apiErr.Type, req.Method, endpoint)
			} else {
				c.metrics.RecordError(ErrorTypeNetwork, req.Method, endpoint)
			}
		}
		if c.debug != nil && c.debug.Enabled && c.debug.LogErrors && c.logger != nil {
			c.logger.Warn("Request failed", "requestID", requestID, "endpoint", endpoint, "error", err.Error())
		}
	} else if c.debug != nil && c.debug.Enabled && c.debug.LogResponses && c.logger != nil {
		c.logger.Debug("Request completed", "requestID", requestID, "endpoint", endpoint, "statusCode", statusCode, "duration", duration)
	}

	if c.metrics != nil {
		c.metrics.RecordRequest(req.Method, endpoint, statusCode, duration)
	}

	return resp, err
}

// annotate stamps the request ID on API errors and wraps transport failures
// so callers always see an *APIError.
func (c *Client) annotate(err error, requestID string) error {
	if apiErr, ok := err.(*APIError); ok {
		if apiErr.RequestID == "" {
			apiErr.RequestID = requestID
		}
		return apiErr
	}
	return &APIError{
		Type:      ErrorTypeNetwork,
		Message:   "request failed",
		RequestID: requestID,
		Cause:     err,
	}
}

// IsValid reports whether configuration validation passed at construction.
func (c *Client) IsValid() bool {
	return c.validationError == nil
}

// ValidationError returns the configuration validation error, if any.
func (c *Client) ValidationError() error {
	return c.validationError
}

func cloneValues(params url.Values) url.Values {
	out := url.Values{}
	for k, vs := range params {
		for _, v := range vs {
			out.Add(k, v)
		}
	}
	return out
}

func endpointFromRequest(req *Request) string {
	raw := req.URL
	if raw == "" {
		return "unknown"
	}
	if isAbsoluteURL(raw) {
		if u, err := url.Parse(raw); err == nil {
			return u.Host + u.Path
		}
	}
	if i := strings.Index(raw, "?"); i >= 0 {
		raw = raw[:i]
	}
	return strings.TrimLeft(raw, "/")
}
