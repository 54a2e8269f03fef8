package gramkit

import (
	"context"
	"fmt"
	"net/url"
)

// Tag fetches information about a tag.
func (c *Client) Tag(ctx context.Context, name string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("tags/%s", name), nil)
}

// TagRecentMedia fetches recent media carrying a tag. Supported params:
// count, min_tag_id, max_tag_id.
func (c *Client) TagRecentMedia(ctx context.Context, name string, params url.Values) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("tags/%s/media/recent", name), params)
}

// SearchTags searches for tags by name.
func (c *Client) SearchTags(ctx context.Context, query string) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	return c.Get(ctx, "tags/search", params)
}
