package bagelpay

import (
	"context"
	"net/http"
	"regexp"
	"strconv"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// CreateCheckout opens a hosted checkout session for a product. The product
// id, the units encoding, and the customer email shape are checked locally
// before any round trip.
func (c *Client) CreateCheckout(ctx context.Context, req CheckoutRequest) (*CheckoutResponse, error) {
	if req.ProductID == "" {
		return nil, validationError("product id is required")
	}
	if req.Units != "" {
		n, err := strconv.Atoi(req.Units)
		if err != nil || n < 1 {
			return nil, validationError("units must be a positive integer, got %q", req.Units)
		}
	}
	if req.Customer != nil && !emailPattern.MatchString(req.Customer.Email) {
		return nil, validationError("customer email %q is not a valid address", req.Customer.Email)
	}

	var checkout CheckoutResponse
	if err := c.do(ctx, http.MethodPost, "/api/payments/checkouts", nil, req, &checkout); err != nil {
		return nil, err
	}
	return &checkout, nil
}
