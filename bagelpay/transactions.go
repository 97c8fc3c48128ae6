package bagelpay

import (
	"context"
	"net/http"
)

// ListTransactions returns one page of settled transactions, newest first
// per server ordering.
func (c *Client) ListTransactions(ctx context.Context, params ListParams) (*Page[Transaction], error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	var page Page[Transaction]
	if err := c.do(ctx, http.MethodGet, "/api/transactions/list", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
