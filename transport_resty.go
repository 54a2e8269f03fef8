package gramkit

import (
	"context"

	"github.com/go-resty/resty/v2"
)

// restyTransport adapts a resty.Client to the Transport interface. Response
// parsing stays with the pipeline, so automatic unmarshalling is disabled by
// never passing a result object.
type restyTransport struct {
	client *resty.Client
}

// NewRestyTransport builds a resty-backed adapter.
func NewRestyTransport(cfg TransportConfig) (Transport, error) {
	c := resty.New()
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTransportTimeout
	}
	c.SetTimeout(timeout)
	if cfg.ProxyURL != "" {
		c.SetProxy(cfg.ProxyURL)
	}
	if cfg.UserAgent != "" {
		c.SetHeader("User-Agent", cfg.UserAgent)
	}
	return &restyTransport{client: c}, nil
}

// NewRestyTransportFromClient wraps a caller-configured resty.Client.
func NewRestyTransportFromClient(client *resty.Client) Transport {
	return &restyTransport{client: client}
}

func (t *restyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().SetContext(ctx)
	if len(req.Header) > 0 {
		r.SetHeaders(req.Header)
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}
	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Header:     flattenHeader(resp.Header()),
		Body:       resp.Body(),
	}, nil
}
