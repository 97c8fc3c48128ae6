package bagelpay

import (
	"context"
	"net/http"
	"net/url"
)

// CreateProduct registers a new product. Subscription products must carry a
// recurring interval; that invariant is checked locally before any round
// trip.
func (c *Client) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	if err := validateBilling(req.BillingType, req.RecurringInterval); err != nil {
		return nil, err
	}
	var product Product
	if err := c.do(ctx, http.MethodPost, "/api/products/create", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// GetProduct fetches one product by id.
func (c *Client) GetProduct(ctx context.Context, productID string) (*Product, error) {
	if productID == "" {
		return nil, validationError("product id is required")
	}
	var product Product
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(productID), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProducts returns one page of products.
func (c *Client) ListProducts(ctx context.Context, params ListParams) (*Page[Product], error) {
	q, err := params.query()
	if err != nil {
		return nil, err
	}
	var page Page[Product]
	if err := c.do(ctx, http.MethodGet, "/api/products/list", q, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (c *Client) UpdateProduct(ctx context.Context, req UpdateProductRequest) (*Product, error) {
	if req.ProductID == "" {
		return nil, validationError("product id is required")
	}
	if err := validateBilling(req.BillingType, req.RecurringInterval); err != nil {
		return nil, err
	}
	var product Product
	if err := c.do(ctx, http.MethodPost, "/api/products/update", nil, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ArchiveProduct hides a product from new checkouts. Archival is reversible;
// see UnarchiveProduct.
func (c *Client) ArchiveProduct(ctx context.Context, productID string) (*Product, error) {
	return c.setArchived(ctx, productID, "/api/products/archive/")
}

// UnarchiveProduct makes an archived product sellable again.
func (c *Client) UnarchiveProduct(ctx context.Context, productID string) (*Product, error) {
	return c.setArchived(ctx, productID, "/api/products/unarchive/")
}

func (c *Client) setArchived(ctx context.Context, productID, prefix string) (*Product, error) {
	if productID == "" {
		return nil, validationError("product id is required")
	}
	var product Product
	if err := c.do(ctx, http.MethodPost, prefix+url.PathEscape(productID), nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func validateBilling(billingType BillingType, recurringInterval string) error {
	if billingType == BillingSubscription && recurringInterval == "" {
		return validationError("recurring_interval is required for subscription products")
	}
	return nil
}
