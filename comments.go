package gramkit

import (
	"context"
	"fmt"
	"net/url"
)

// MediaComments fetches the comments on a media item.
func (c *Client) MediaComments(ctx context.Context, mediaID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("media/%s/comments", mediaID), nil)
}

// CreateMediaComment posts a comment on a media item.
func (c *Client) CreateMediaComment(ctx context.Context, mediaID, text string) (*Response, error) {
	params := url.Values{}
	params.Set("text", text)
	return c.Post(ctx, fmt.Sprintf("media/%s/comments", mediaID), params)
}

// DeleteMediaComment removes a comment from a media item.
func (c *Client) DeleteMediaComment(ctx context.Context, mediaID, commentID string) (*Response, error) {
	return c.Delete(ctx, fmt.Sprintf("media/%s/comments/%s", mediaID, commentID), nil)
}
