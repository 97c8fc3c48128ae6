package bagelpay

import (
	"context"
	"net/http"
)

// ListCustomers returns one page of customers with their aggregate spend and
// subscription counts.
func (c *Client) ListCustomers(ctx context.Context, params ListParams) (*Page[Customer], error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	var page Page[Customer]
	if err := c.do(ctx, http.MethodGet, "/api/customers/list", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
