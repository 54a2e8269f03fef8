package gramkit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// Location fetches information about a location.
func (c *Client) Location(ctx context.Context, locationID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("locations/%s", locationID), nil)
}

// LocationRecentMedia fetches recent media from a location. Supported
// params: min_id, max_id.
func (c *Client) LocationRecentMedia(ctx context.Context, locationID string, params url.Values) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("locations/%s/media/recent", locationID), params)
}

// SearchLocations searches for locations around a geographic point.
// Supported params: distance, facebook_places_id.
func (c *Client) SearchLocations(ctx context.Context, lat, lng float64, params url.Values) (*Response, error) {
	params = cloneValues(params)
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	return c.Get(ctx, "locations/search", params)
}
