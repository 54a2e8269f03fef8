// Package signature implements the request-signing and update-verification
// primitives used by the client: the sig request parameter (HMAC-SHA256 over
// the endpoint path and its sorted parameters) and X-Hub-Signature payload
// validation (HMAC-SHA1 over the raw update body).
package signature

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// Request computes the sig parameter value for an endpoint path and its
// request parameters: parameters are appended to the path in sorted key
// order as "|key=value" segments and the result is signed with HMAC-SHA256.
// Multi-valued parameters contribute their first value.
func Request(secret, endpoint string, params url.Values) string {
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(endpoint)
	for _, k := range keys {
		b.WriteString("|")
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(params.Get(k))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(b.String()))
	return hex.EncodeToString(mac.Sum(nil))
}

// Payload computes the hex HMAC-SHA1 digest of a raw update payload.
func Payload(secret string, body []byte) string {
	mac := hmac.New(sha1.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// ValidPayload reports whether provided matches the expected digest of body.
// Comparison is constant time.
func ValidPayload(secret string, body []byte, provided string) bool {
	expected := Payload(secret, body)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(provided)))
}
