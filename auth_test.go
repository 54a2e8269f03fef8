package gramkit

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/ambiyansyah-risyal/gramkit/internal/signature"
)

// captureHandler records the request exactly as the innermost stage sees it.
func captureHandler(captured **Request) Handler {
	return HandlerFunc(func(ctx context.Context, req *Request) (*Response, error) {
		*captured = req
		return &Response{StatusCode: 200}, nil
	})
}

func runAuth(t *testing.T, cfg authConfig, req *Request) *Request {
	t.Helper()
	var captured *Request
	if _, err := authMiddleware(cfg)(context.Background(), req, captureHandler(&captured)); err != nil {
		t.Fatalf("auth middleware returned error: %v", err)
	}
	return captured
}

func TestAuthParamToken(t *testing.T) {
	req := runAuth(t, authConfig{clientID: "cid", accessToken: "tok", placement: PlaceParam},
		&Request{Method: "GET", URL: "users/self"})
	if got := req.Params.Get("access_token"); got != "tok" {
		t.Errorf("access_token = %q", got)
	}
	if req.Params.Get("client_id") != "" {
		t.Error("client_id must not be attached when a token is present")
	}
}

func TestAuthParamClientIDOnly(t *testing.T) {
	req := runAuth(t, authConfig{clientID: "cid", placement: PlaceParam},
		&Request{Method: "GET", URL: "users/self"})
	if got := req.Params.Get("client_id"); got != "cid" {
		t.Errorf("client_id = %q", got)
	}
	if req.Params.Get("access_token") != "" {
		t.Error("access_token must not be attached without a token")
	}
}

func TestAuthLiftsQueryFromAbsoluteURL(t *testing.T) {
	req := runAuth(t, authConfig{accessToken: "tok", placement: PlaceParam},
		&Request{Method: "GET", URL: "https://api.example.com/v1/tags/go/media/recent?access_token=tok&max_tag_id=99"})
	if req.URL != "https://api.example.com/v1/tags/go/media/recent" {
		t.Errorf("URL query not lifted: %q", req.URL)
	}
	if got := req.Params["access_token"]; len(got) != 1 || got[0] != "tok" {
		t.Errorf("access_token params = %v, want exactly one", got)
	}
	if got := req.Params.Get("max_tag_id"); got != "99" {
		t.Errorf("max_tag_id = %q", got)
	}
}

func TestAuthLiftsQueryClientIDFromAbsoluteURL(t *testing.T) {
	req := runAuth(t, authConfig{clientID: "cid", placement: PlaceParam},
		&Request{Method: "GET", URL: "https://api.example.com/v1/media/popular?client_id=cid"})
	if got := req.Params["client_id"]; len(got) != 1 || got[0] != "cid" {
		t.Errorf("client_id params = %v, want exactly one", got)
	}
}

func TestAuthCallerParamsWinOverEmbeddedQuery(t *testing.T) {
	params := url.Values{}
	params.Set("count", "5")
	req := runAuth(t, authConfig{placement: PlaceParam},
		&Request{Method: "GET", URL: "https://api.example.com/v1/users/self/feed?count=10", Params: params})
	if got := req.Params["count"]; len(got) != 1 || got[0] != "5" {
		t.Errorf("count params = %v, want caller value only", got)
	}
}

func TestAuthDoesNotOverwriteCallerValues(t *testing.T) {
	params := url.Values{}
	params.Set("access_token", "caller-token")
	req := runAuth(t, authConfig{accessToken: "tok", placement: PlaceParam},
		&Request{Method: "GET", URL: "users/self", Params: params})
	if got := req.Params.Get("access_token"); got != "caller-token" {
		t.Errorf("caller param overwritten: %q", got)
	}

	req = runAuth(t, authConfig{accessToken: "tok", placement: PlaceHeader},
		&Request{Method: "GET", URL: "users/self", Header: map[string]string{"Authorization": "Bearer mine"}})
	if got := req.Header["Authorization"]; got != "Bearer mine" {
		t.Errorf("caller header overwritten: %q", got)
	}
}

func TestAuthHeaderPlacement(t *testing.T) {
	req := runAuth(t, authConfig{accessToken: "tok", placement: PlaceHeader},
		&Request{Method: "GET", URL: "users/self"})
	if got := req.Header["Authorization"]; got != "Bearer tok" {
		t.Errorf("Authorization = %q", got)
	}
	if req.Params.Get("access_token") != "" {
		t.Error("header placement must not add params")
	}

	req = runAuth(t, authConfig{clientID: "cid", placement: PlaceHeader},
		&Request{Method: "GET", URL: "users/self"})
	if got := req.Header["Authorization"]; got != "Client-ID cid" {
		t.Errorf("Authorization = %q", got)
	}
}

func TestAuthBothPlacement(t *testing.T) {
	req := runAuth(t, authConfig{accessToken: "tok", placement: PlaceBoth},
		&Request{Method: "GET", URL: "users/self"})
	if req.Params.Get("access_token") != "tok" || req.Header["Authorization"] != "Bearer tok" {
		t.Error("both placement must attach param and header")
	}
}

func TestAuthSignedRequests(t *testing.T) {
	req := runAuth(t, authConfig{
		accessToken:  "tok",
		clientSecret: "secret",
		placement:    PlaceParam,
		signRequests: true,
	}, &Request{Method: "GET", URL: "users/self"})

	sig := req.Params.Get("sig")
	if sig == "" {
		t.Fatal("sig parameter missing")
	}
	expectedParams := url.Values{}
	expectedParams.Set("access_token", "tok")
	if want := signature.Request("secret", "/users/self", expectedParams); sig != want {
		t.Errorf("sig = %q, want %q", sig, want)
	}
}

func runEncode(t *testing.T, baseURL string, req *Request) *Request {
	t.Helper()
	var captured *Request
	if _, err := encodeMiddleware(baseURL)(context.Background(), req, captureHandler(&captured)); err != nil {
		t.Fatalf("encode middleware returned error: %v", err)
	}
	return captured
}

func TestEncodeGETQuery(t *testing.T) {
	params := url.Values{}
	params.Set("count", "3")
	req := runEncode(t, "https://api.example.com/v1/", &Request{Method: "GET", URL: "users/search", Params: params})
	if req.URL != "https://api.example.com/v1/users/search?count=3" {
		t.Errorf("URL = %q", req.URL)
	}
	if req.Body != nil {
		t.Error("GET must not grow a body")
	}
}

func TestEncodePOSTForm(t *testing.T) {
	params := url.Values{}
	params.Set("text", "nice shot")
	req := runEncode(t, "https://api.example.com/v1", &Request{Method: "POST", URL: "media/1/comments", Params: params})
	if req.URL != "https://api.example.com/v1/media/1/comments" {
		t.Errorf("URL = %q", req.URL)
	}
	if string(req.Body) != "text=nice+shot" {
		t.Errorf("Body = %q", req.Body)
	}
	if req.Header["Content-Type"] != "application/x-www-form-urlencoded" {
		t.Errorf("Content-Type = %q", req.Header["Content-Type"])
	}
}

func TestEncodePOSTWithExplicitBodyUsesQuery(t *testing.T) {
	params := url.Values{}
	params.Set("access_token", "tok")
	req := runEncode(t, "https://api.example.com/v1", &Request{
		Method: "POST",
		URL:    "media/1/comments",
		Params: params,
		Body:   []byte(`{"text":"hi"}`),
	})
	if !strings.Contains(req.URL, "access_token=tok") {
		t.Errorf("params must move to the query when a body exists: %q", req.URL)
	}
	if string(req.Body) != `{"text":"hi"}` {
		t.Error("explicit body must be preserved")
	}
}

func TestEncodeAbsoluteURLPassesThrough(t *testing.T) {
	req := runEncode(t, "https://api.example.com/v1", &Request{
		Method: "GET",
		URL:    "https://other.example.com/page?cursor=9",
	})
	if req.URL != "https://other.example.com/page?cursor=9" {
		t.Errorf("URL = %q", req.URL)
	}
}

func TestEncodeAppendsToExistingQuery(t *testing.T) {
	params := url.Values{}
	params.Set("access_token", "tok")
	req := runEncode(t, "https://api.example.com/v1", &Request{
		Method: "GET",
		URL:    "https://api.example.com/v1/next?cursor=9",
		Params: params,
	})
	if req.URL != "https://api.example.com/v1/next?cursor=9&access_token=tok" {
		t.Errorf("URL = %q", req.URL)
	}
}
