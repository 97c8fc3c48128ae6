package bagelpay

import "time"

// BillingType distinguishes one-off purchases from recurring billing.
type BillingType string

const (
	BillingSinglePayment BillingType = "single_payment"
	BillingSubscription  BillingType = "subscription"
)

// SubscriptionStatus represents the current billing state of a subscription.
type SubscriptionStatus string

const (
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionTrialing SubscriptionStatus = "trialing"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionCanceled SubscriptionStatus = "canceled"
)

// Product is a sellable item. ProductID is server-assigned and immutable.
type Product struct {
	ProductID         string      `json:"product_id"`
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Price             float64     `json:"price"`
	Currency          string      `json:"currency"`
	BillingType       BillingType `json:"billing_type"`
	TaxInclusive      bool        `json:"tax_inclusive"`
	TaxCategory       string      `json:"tax_category,omitempty"`
	RecurringInterval string      `json:"recurring_interval,omitempty"`
	TrialDays         int         `json:"trial_days,omitempty"`
	IsArchive         bool        `json:"is_archive"`
	ProductURL        string      `json:"product_url,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// CreateProductRequest registers a new product. RecurringInterval is required
// when BillingType is BillingSubscription.
type CreateProductRequest struct {
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Price             float64     `json:"price"`
	Currency          string      `json:"currency"`
	BillingType       BillingType `json:"billing_type"`
	TaxInclusive      bool        `json:"tax_inclusive"`
	TaxCategory       string      `json:"tax_category,omitempty"`
	RecurringInterval string      `json:"recurring_interval,omitempty"`
	TrialDays         int         `json:"trial_days,omitempty"`
}

// UpdateProductRequest replaces the mutable fields of an existing product.
type UpdateProductRequest struct {
	ProductID         string      `json:"product_id"`
	Name              string      `json:"name"`
	Description       string      `json:"description,omitempty"`
	Price             float64     `json:"price"`
	Currency          string      `json:"currency"`
	BillingType       BillingType `json:"billing_type"`
	TaxInclusive      bool        `json:"tax_inclusive"`
	TaxCategory       string      `json:"tax_category,omitempty"`
	RecurringInterval string      `json:"recurring_interval,omitempty"`
	TrialDays         int         `json:"trial_days,omitempty"`
}

// Customer identifies a buyer. Only Email is guaranteed to be present; the
// aggregate fields (TotalSpend in minor currency units, Subscriptions count)
// are filled on customer listings.
type Customer struct {
	ID            string `json:"id,omitempty"`
	Email         string `json:"email"`
	Name          string `json:"name,omitempty"`
	TotalSpend    int64  `json:"total_spend,omitempty"`
	Subscriptions int    `json:"subscriptions,omitempty"`
}

// CheckoutRequest opens a hosted checkout session. RequestID is a
// caller-supplied idempotency token: repeating it for a logically identical
// request is safe to retry, deduplication is enforced server-side. Units is
// string-encoded on the wire; when left empty the server default of one unit
// applies.
type CheckoutRequest struct {
	ProductID  string            `json:"product_id"`
	RequestID  string            `json:"request_id"`
	Units      string            `json:"units,omitempty"`
	Customer   *Customer         `json:"customer,omitempty"`
	SuccessURL string            `json:"success_url,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// CheckoutResponse describes the created session, echoing the request fields
// the server accepted.
type CheckoutResponse struct {
	PaymentID   string            `json:"payment_id"`
	Status      string            `json:"status"`
	CheckoutURL string            `json:"checkout_url"`
	ExpiresOn   time.Time         `json:"expires_on"`
	ProductID   string            `json:"product_id,omitempty"`
	RequestID   string            `json:"request_id,omitempty"`
	Units       string            `json:"units,omitempty"`
	SuccessURL  string            `json:"success_url,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Transaction is a settled money movement. Amount is in minor currency units;
// display conversion (divide by 100) is the caller's responsibility.
type Transaction struct {
	TransactionID string    `json:"transaction_id"`
	Amount        int64     `json:"amount"`
	Currency      string    `json:"currency"`
	Type          string    `json:"type"`
	Customer      *Customer `json:"customer,omitempty"`
	Remark        string    `json:"remark,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Subscription is a recurring billing agreement. The provider does not
// strictly enforce the wire schema, so everything beyond the identifying
// fields is optional.
type Subscription struct {
	SubscriptionID     string             `json:"subscription_id"`
	Status             SubscriptionStatus `json:"status"`
	ProductID          string             `json:"product_id,omitempty"`
	ProductName        string             `json:"product_name,omitempty"`
	Customer           *Customer          `json:"customer,omitempty"`
	RecurringInterval  string             `json:"recurring_interval,omitempty"`
	NextBillingAmount  float64            `json:"next_billing_amount,omitempty"`
	PaymentMethod      string             `json:"payment_method,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
	TrialStart         *time.Time         `json:"trial_start,omitempty"`
	TrialEnd           *time.Time         `json:"trial_end,omitempty"`
	BillingPeriodStart *time.Time         `json:"billing_period_start,omitempty"`
	BillingPeriodEnd   *time.Time         `json:"billing_period_end,omitempty"`
	CancelAt           *time.Time         `json:"cancel_at,omitempty"`
	Remark             string             `json:"remark,omitempty"`
}
