package gramkit

import "context"

// NextPageURL extracts the pagination.next_url member from a response
// envelope, or "" when there is no further page. Works on mapped and plain
// parsed bodies.
func NextPageURL(resp *Response) string {
	if resp == nil {
		return ""
	}
	switch body := resp.Body.(type) {
	case *Mash:
		return body.Sub("pagination").String("next_url")
	case map[string]any:
		if p, ok := body["pagination"].(map[string]any); ok {
			if next, ok := p["next_url"].(string); ok {
				return next
			}
		}
	}
	return ""
}

// NextPage follows a response's pagination.next_url through the full
// pipeline. Returns (nil, nil) when the response has no next page.
func (c *Client) NextPage(ctx context.Context, resp *Response) (*Response, error) {
	next := NextPageURL(resp)
	if next == "" {
		return nil, nil
	}
	return c.Do(ctx, &Request{Method: "GET", URL: next})
}
