package gramkit

import (
	"context"
	"fmt"
	"net/url"
)

// Relationship actions accepted by UpdateUserRelationship.
const (
	RelationshipFollow   = "follow"
	RelationshipUnfollow = "unfollow"
	RelationshipApprove  = "approve"
	RelationshipIgnore   = "ignore"
	RelationshipBlock    = "block"
	RelationshipUnblock  = "unblock"
)

// UserRelationship fetches the authenticated user's relationship to another
// user (outgoing and incoming status).
func (c *Client) UserRelationship(ctx context.Context, userID string) (*Response, error) {
	return c.Get(ctx, fmt.Sprintf("users/%s/relationship", userID), nil)
}

// UpdateUserRelationship modifies the relationship with a user using one of
// the Relationship* actions.
func (c *Client) UpdateUserRelationship(ctx context.Context, userID, action string) (*Response, error) {
	params := url.Values{}
	params.Set("action", action)
	return c.Post(ctx, fmt.Sprintf("users/%s/relationship", userID), params)
}
