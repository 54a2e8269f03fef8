package gramkit

import (
	"fmt"
	"time"
)

// WithClientID sets the application's client identifier.
func WithClientID(id string) Option {
	return func(c *Client) {
		c.clientID = id
	}
}

// WithClientSecret sets the application's client secret, used for the OAuth
// code exchange and for request signing.
func WithClientSecret(secret string) Option {
	return func(c *Client) {
		c.clientSecret = secret
	}
}

// WithAccessToken sets the user access token attached to every request.
func WithAccessToken(token string) Option {
	return func(c *Client) {
		c.accessToken = token
	}
}

// WithRedirectURI sets the OAuth redirect URI used by the token exchange.
func WithRedirectURI(uri string) Option {
	return func(c *Client) {
		c.redirectURI = uri
	}
}

// WithCredentialPlacement controls whether credentials travel as parameters,
// as an Authorization header, or both. The default is parameters.
func WithCredentialPlacement(p CredentialPlacement) Option {
	return func(c *Client) {
		c.placement = p
	}
}

// WithSignedRequests enables the sig request parameter, computed from the
// endpoint path and the final parameter set with the client secret.
func WithSignedRequests() Option {
	return func(c *Client) {
		c.signRequests = true
	}
}

// WithBaseURL overrides the API root URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithOAuthBaseURL overrides the OAuth endpoint root URL.
func WithOAuthBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.oauthBaseURL = baseURL
	}
}

// WithFormat selects the output format. FormatRaw bypasses the fix-up,
// parsing and object-mapping stages entirely.
func WithFormat(f Format) Option {
	return func(c *Client) {
		c.format = f
	}
}

// WithoutObjectMapping keeps JSON parsing but skips the Mash wrapping stage,
// returning plain map/slice/scalar values.
func WithoutObjectMapping() Option {
	return func(c *Client) {
		c.objectMapping = false
	}
}

// WithRawBodyPreserved keeps the unparsed body bytes on Response.RawBody
// alongside the parsed value.
func WithRawBodyPreserved() Option {
	return func(c *Client) {
		c.preserveRaw = true
	}
}

// WithAcceptedContentTypes sets the media types the JSON stage parses. An
// empty set means the stage always applies regardless of content type.
func WithAcceptedContentTypes(types ...string) Option {
	return func(c *Client) {
		c.acceptedTypes = types
	}
}

// WithParseFunc overrides the body parser used by the JSON stage.
func WithParseFunc(fn ParseFunc) Option {
	return func(c *Client) {
		c.parseFn = fn
	}
}

// WithStatusErrorTypes merges overrides into the status-code to error-type
// mapping used by the error-raising stage.
func WithStatusErrorTypes(overrides map[int]string) Option {
	return func(c *Client) {
		for code, errType := range overrides {
			c.statusTypes[code] = errType
		}
	}
}

// WithAdapter selects a built-in transport adapter.
func WithAdapter(a Adapter) Option {
	return func(c *Client) {
		c.adapter = a
	}
}

// WithTransport sets a custom transport adapter, overriding the adapter
// choice, timeout and proxy settings.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// WithTimeout sets the transport-level request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithProxy routes requests through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(c *Client) {
		c.proxyURL = proxyURL
	}
}

// WithUserAgent sets the User-Agent header attached by the transport.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithMiddleware adds user middleware, run after auth injection and before
// parameter encoding.
func WithMiddleware(middleware ...Middleware) Option {
	return func(c *Client) {
		c.middleware = append(c.middleware, middleware...)
	}
}

// WithMetrics enables Prometheus metrics collection.
func WithMetrics() Option {
	return func(c *Client) {
		c.metrics = NewMetricsCollector()
	}
}

// WithMetricsCollector sets a custom metrics collector.
func WithMetricsCollector(collector *MetricsCollector) Option {
	return func(c *Client) {
		c.metrics = collector
	}
}

// WithDebug enables debug logging with default configuration.
func WithDebug() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
	}
}

// WithDebugConfig sets custom debug configuration.
func WithDebugConfig(config *DebugConfig) Option {
	return func(c *Client) {
		c.debug = config
	}
}

// WithLogger sets a custom logger for debug output.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithSimpleLogger enables debug logging with a simple console logger.
func WithSimpleLogger() Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.Enabled = true
		c.logger = NewSimpleLogger()
	}
}

// WithRequestIDGenerator sets a custom function for generating request IDs.
func WithRequestIDGenerator(gen func() string) Option {
	return func(c *Client) {
		if c.debug == nil {
			c.debug = DefaultDebugConfig()
		}
		c.debug.RequestIDGen = gen
	}
}

// ValidateConfiguration validates the client configuration and returns an
// error if invalid.
func (c *Client) ValidateConfiguration() error {
	var errs []string

	errs = append(errs, c.validateURLs()...)
	errs = append(errs, c.validateFormat()...)
	errs = append(errs, c.validateCredentials()...)
	errs = append(errs, c.validateTransportConfig()...)
	errs = append(errs, c.validateStatusTypes()...)
	errs = append(errs, c.validateMiddlewareConfig()...)
	errs = append(errs, c.validateDebugConfig()...)

	if len(errs) > 0 {
		return &APIError{
			Type:    ErrorTypeValidation,
			Message: "configuration validation failed",
			Cause:   fmt.Errorf("validation errors: %v", errs),
		}
	}

	return nil
}

func (c *Client) validateURLs() []string {
	var errs []string

	if c.baseURL == "" {
		errs = append(errs, "baseURL must not be empty")
	}
	if c.oauthBaseURL == "" {
		errs = append(errs, "oauthBaseURL must not be empty")
	}

	return errs
}

func (c *Client) validateFormat() []string {
	var errs []string

	switch c.format {
	case FormatJSON, FormatRaw:
	default:
		errs = append(errs, fmt.Sprintf("unknown format %q", c.format))
	}

	if c.format == FormatJSON && c.parseFn == nil {
		errs = append(errs, "parse function must be set for json format")
	}

	return errs
}

func (c *Client) validateCredentials() []string {
	var errs []string

	if c.signRequests && c.clientSecret == "" {
		errs = append(errs, "clientSecret must be set when request signing is enabled")
	}
	switch c.placement {
	case PlaceParam, PlaceHeader, PlaceBoth:
	default:
		errs = append(errs, "unknown credential placement")
	}

	return errs
}

func (c *Client) validateTransportConfig() []string {
	var errs []string

	if c.timeout < 0 {
		errs = append(errs, "timeout must be non-negative")
	}
	if c.transport == nil {
		switch c.adapter {
		case AdapterNetHTTP, AdapterResty:
		default:
			errs = append(errs, fmt.Sprintf("unknown adapter %q", c.adapter))
		}
	}

	return errs
}

func (c *Client) validateStatusTypes() []string {
	var errs []string

	for code := range c.statusTypes {
		if code < 100 || code > 599 {
			errs = append(errs, fmt.Sprintf("status code %d out of range in error type mapping", code))
		}
	}

	return errs
}

func (c *Client) validateMiddlewareConfig() []string {
	var errs []string

	for i, middleware := range c.middleware {
		if middleware == nil {
			errs = append(errs, fmt.Sprintf("middleware[%d] cannot be nil", i))
		}
	}

	return errs
}

func (c *Client) validateDebugConfig() []string {
	var errs []string

	if c.debug != nil && c.debug.Enabled {
		if c.debug.RequestIDGen == nil {
			errs = append(errs, "debug RequestIDGen must be set when debug is enabled")
		}
		if c.logger == nil {
			errs = append(errs, "logger must be set when debug is enabled")
		}
	}

	return errs
}
