package gramkit

import (
	"context"
	"net/url"
	"strings"
)

// AuthorizationURL builds the URL to send a user to for the OAuth
// authorization step. scopes may be empty; state is included when non-empty
// and echoed back on the redirect.
func (c *Client) AuthorizationURL(scopes []string, state string) string {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("redirect_uri", c.redirectURI)
	params.Set("response_type", "code")
	if len(scopes) > 0 {
		params.Set("scope", strings.Join(scopes, " "))
	}
	if state != "" {
		params.Set("state", state)
	}
	return strings.TrimRight(c.oauthBaseURL, "/") + "/authorize?" + params.Encode()
}

// RequestAccessToken exchanges an authorization code for an access token.
// The response body carries access_token and the user object; with the
// default format it is object-mapped like any other response.
func (c *Client) RequestAccessToken(ctx context.Context, code string) (*Response, error) {
	params := url.Values{}
	params.Set("client_id", c.clientID)
	params.Set("client_secret", c.clientSecret)
	params.Set("grant_type", "authorization_code")
	params.Set("redirect_uri", c.redirectURI)
	params.Set("code", code)
	return c.Post(ctx, strings.TrimRight(c.oauthBaseURL, "/")+"/access_token", params)
}
