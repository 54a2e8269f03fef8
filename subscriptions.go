package gramkit

import (
	"context"
	"net/url"

	"github.com/ambiyansyah-risyal/gramkit/internal/signature"
)

// CreateSubscription registers a real-time subscription. object is the kind
// of update to subscribe to (user, tag, location, geography); callbackURL
// receives updates; verifyToken is echoed on the verification GET.
// Additional params (aspect defaults to "media", object_id for tag and
// location subscriptions) may be supplied.
func (c *Client) CreateSubscription(ctx context.Context, object, callbackURL, verifyToken string, params url.Values) (*Response, error) {
	params = cloneValues(params)
	params.Set("object", object)
	params.Set("callback_url", callbackURL)
	params.Set("verify_token", verifyToken)
	if params.Get("aspect") == "" {
		params.Set("aspect", "media")
	}
	params.Set("client_secret", c.clientSecret)
	return c.Post(ctx, "subscriptions", params)
}

// ListSubscriptions lists the application's active subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context) (*Response, error) {
	params := url.Values{}
	params.Set("client_secret", c.clientSecret)
	return c.Get(ctx, "subscriptions", params)
}

// DeleteSubscription removes subscriptions. Pass an "id" param to remove a
// single subscription or an "object" param (for example "all") to remove by
// kind.
func (c *Client) DeleteSubscription(ctx context.Context, params url.Values) (*Response, error) {
	params = cloneValues(params)
	params.Set("client_secret", c.clientSecret)
	return c.Delete(ctx, "subscriptions", params)
}

// MeetChallenge answers the subscription verification GET: it returns the
// hub.challenge value to echo back when the verify token matches, and false
// otherwise.
func (c *Client) MeetChallenge(query url.Values, verifyToken string) (string, bool) {
	if query.Get("hub.mode") != "subscribe" {
		return "", false
	}
	if verifyToken != "" && query.Get("hub.verify_token") != verifyToken {
		return "", false
	}
	challenge := query.Get("hub.challenge")
	return challenge, challenge != ""
}

// ValidateUpdate verifies a real-time update payload against its
// X-Hub-Signature header using the client secret.
func (c *Client) ValidateUpdate(body []byte, xHubSignature string) bool {
	if c.clientSecret == "" || xHubSignature == "" {
		return false
	}
	return signature.ValidPayload(c.clientSecret, body, xHubSignature)
}
