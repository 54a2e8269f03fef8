package gramkit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Media fetches a single media item by ID.
func (c *Client) Media(ctx context.Context, mediaID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("media/%s", mediaID), nil)
}

// MediaByShortcode fetches a media item by its URL shortcode.
func (c *Client) MediaByShortcode(ctx context.Context, shortcode string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("media/shortcode/%s", shortcode), nil)
}

// SearchMedia searches for recent media around a geographic point.
// Supported params: distance, min_timestamp, max_timestamp.
func (c *Client) SearchMedia(ctx context.Context, lat, lng float64, params url.Values) (*Response, error) {
	params = cloneValues(params)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	return c.Get(ctx, "media/search", params)
}

// PopularMedia fetches the current most popular media.
func (c *Client) PopularMedia(ctx context.Context) (*Response, error) {
	return c.Get(ctx, "media/popular", nil)
}
