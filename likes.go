package gramkit

import (
	"context"
	"fmt"
)

// MediaLikes lists the users who have liked a media item.
func (c *Client) MediaLikes(ctx context.Context, mediaID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("media/%s/likes", mediaID), nil)
}

// LikeMedia likes a media item on behalf of the authenticated user.
func (c *Client) LikeMedia(ctx context.Context, mediaID string) (*Response, error) {
	return c.Post(ctx, fmt.Sprintf("media/%s/likes", mediaID), nil)
}

// UnlikeMedia removes the authenticated user's like from a media item.
func (c *Client) UnlikeMedia(ctx context.Context, mediaID string) (*Response, error) {
	return c.Delete(ctx, fmt.Sprintf("media/%s/likes", mediaID), nil)
}
