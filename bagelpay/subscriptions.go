package bagelpay

import (
	"context"
	"net/http"
	"net/url"
)

// GetSubscription fetches one subscription by id.
func (c *Client) GetSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodGet, "/api/subscriptions/"+url.PathEscape(subscriptionID), nil, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

// ListSubscriptions returns one page of subscriptions.
func (c *Client) ListSubscriptions(ctx context.Context, params ListParams) (*Page[Subscription], error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	var page Page[Subscription]
	if err := c.do(ctx, http.MethodGet, "/api/subscriptions/list", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// CancelSubscription marks a subscription for cancellation at the end of its
// current billing period. The returned entity keeps its current status; only
// CancelAt is populated. Billing stops once the period ends.
func (c *Client) CancelSubscription(ctx context.Context, subscriptionID string) (*Subscription, error) {
	if subscriptionID == "" {
		return nil, validationError("subscription id is required")
	}
	var sub Subscription
	if err := c.do(ctx, http.MethodPost, "/api/subscriptions/cancel/"+url.PathEscape(subscriptionID), nil, nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}
