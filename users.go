package gramkit

import (
	"context"
	"fmt"
	"net/url"
)

// User fetches basic information about a user. Pass "self" for the
// authenticated user.
func (c *Client) User(ctx context.Context, userID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("users/%s", userID), nil)
}

// UserMediaFeed fetches the authenticated user's home feed. Supported
// params: count, min_id, max_id.
func (c *Client) UserMediaFeed(ctx context.Context, params url.Values) (*Response, error) {
	return c.Get(ctx, "users/self/feed", params)
}

// UserRecentMedia fetches a user's most recent media. Supported params:
// count, min_id, max_id, min_timestamp, max_timestamp.
func (c *Client) UserRecentMedia(ctx context.Context, userID string, params url.Values) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("users/%s/media/recent", userID), params)
}

// UserLikedMedia fetches media liked by the authenticated user.
func (c *Client) UserLikedMedia(ctx context.Context, params url.Values) (*Response, error) {
	return c.Get(ctx, "users/self/media/liked", params)
}

// SearchUsers searches for users by name.
func (c *Client) SearchUsers(ctx context.Context, query string, params url.Values) (*Response, error) {
	params = cloneValues(params)
	params.Set("q", query)
	return c.Get(ctx, "users/search", params)
}

// UserFollows lists the users a user follows.
func (c *Client) UserFollows(ctx context.Context, userID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("users/%s/follows", userID), nil)
}

// UserFollowedBy lists the users following a user.
func (c *Client) UserFollowedBy(ctx context.Context, userID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("users/%s/followed-by", userID), nil)
}

// UserRequestedBy lists users who have requested to follow the
// authenticated user.
func (c *Client) UserRequestedBy(ctx context.Context) (*Response, error) {
	return c.Get(ctx, "users/self/requested-by", nil)
}
