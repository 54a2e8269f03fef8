package gramkit

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const defaultTransportTimeout = 30 * time.Second

// TransportConfig carries the adapter-level settings the connection builder
// hands down: the pipeline itself implements no timeout or proxy logic.
type TransportConfig struct {
	Timeout   time.Duration
	ProxyURL  string
	UserAgent string
}

// netTransport is the default adapter, backed by net/http.
type netTransport struct {
	client    *http.Client
	userAgent string
}

// NewNetTransport builds the default net/http adapter.
func NewNetTransport(cfg TransportConfig) (Transport, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTransportTimeout
	}
	httpTransport := http.DefaultTransport
	if cfg.ProxyURL != "" {
		proxy, err := url.Parse(cfg.ProxyURL)
		if err != nil {
			return nil, fmt.Errorf("invalid proxy URL %q: %w", cfg.ProxyURL, err)
		}
		httpTransport = &http.Transport{Proxy: http.ProxyURL(proxy)}
	}
	return &netTransport{
		client: &http.Client{
			Timeout:   timeout,
			Transport: httpTransport,
		},
		userAgent: cfg.UserAgent,
	}, nil
}

func (t *netTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header.Set(k, v)
	}
	if t.userAgent != "" && httpReq.Header.Get("User-Agent") == "" {
		httpReq.Header.Set("User-Agent", t.userAgent)
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     flattenHeader(httpResp.Header),
		Body:       raw,
	}, nil
}

// flattenHeader keeps the first value of each header, matching the
// pipeline's string-to-string header model.
func flattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}
