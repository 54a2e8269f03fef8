package gramkit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNetTransportRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "test-agent/1.0" {
			t.Errorf("User-Agent = %q", got)
		}
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("X-Custom = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport, err := NewNetTransport(TransportConfig{UserAgent: "test-agent/1.0"})
	if err != nil {
		t.Fatal(err)
	}

	resp, err := transport.Do(context.Background(), &Request{
		Method: "GET",
		URL:    server.URL,
		Header: map[string]string{"X-Custom": "yes"},
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if string(resp.Bytes()) != `{"ok":true}` {
		t.Errorf("body = %q", resp.Bytes())
	}
	if resp.ContentType() != "application/json" {
		t.Errorf("content type = %q", resp.ContentType())
	}
}

func TestNetTransportCallerHeaderBeatsDefaultAgent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "mine/2.0" {
			t.Errorf("User-Agent = %q", got)
		}
	}))
	defer server.Close()

	transport, err := NewNetTransport(TransportConfig{UserAgent: "default/1.0"})
	if err != nil {
		t.Fatal(err)
	}
	_, err = transport.Do(context.Background(), &Request{
		Method: "GET",
		URL:    server.URL,
		Header: map[string]string{"User-Agent": "mine/2.0"},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNetTransportPostBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Fatal(err)
		}
		if got := r.PostForm.Get("text"); got != "hello" {
			t.Errorf("text = %q", got)
		}
	}))
	defer server.Close()

	transport, err := NewNetTransport(TransportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	_, err = transport.Do(context.Background(), &Request{
		Method: "POST",
		URL:    server.URL,
		Header: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
		Body:   []byte("text=hello"),
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestNetTransportRejectsInvalidProxy(t *testing.T) {
	if _, err := NewNetTransport(TransportConfig{ProxyURL: "://bad"}); err == nil {
		t.Error("invalid proxy URL must fail construction")
	}
}

func TestNetTransportContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	transport, err := NewNetTransport(TransportConfig{})
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := transport.Do(ctx, &Request{Method: "GET", URL: server.URL}); err == nil {
		t.Error("cancelled context must abort the request")
	}
}

func TestRestyTransportRoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("X-Custom = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer server.Close()

	transport, err := NewRestyTransport(TransportConfig{UserAgent: "resty-agent/1.0"})
	if err != nil {
		t.Fatal(err)
	}
	resp, err := transport.Do(context.Background(), &Request{
		Method: "GET",
		URL:    server.URL,
		Header: map[string]string{"X-Custom": "yes"},
	})
	if err != nil {
		t.Fatalf("Do returned error: %v", err)
	}
	if resp.StatusCode != 200 {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if string(resp.Bytes()) != `{"ok":true}` {
		t.Errorf("body = %q", resp.Bytes())
	}
}

func TestClientWithRestyAdapterEndToEnd(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"name":"golang"}}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithAdapter(AdapterResty))
	resp, err := client.Tag(context.Background(), "golang")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if got := resp.Data().String("name"); got != "golang" {
		t.Errorf("data.name = %q", got)
	}
}
