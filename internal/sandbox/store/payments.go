package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

// Payment is a checkout session record. Unlike the other entities it never
// leaves the sandbox as-is; handlers project it onto the checkout response.
type Payment struct {
	PaymentID     string
	RequestID     string
	ProductID     string
	Status        string
	CheckoutURL   string
	Units         int
	CustomerEmail string
	SuccessURL    string
	Metadata      map[string]string
	ExpiresOn     time.Time
	CreatedAt     time.Time
}

// InsertPayment persists a checkout session.
func (s *Store) InsertPayment(ctx context.Context, p Payment) error {
	meta, err := json.Marshal(p.Metadata)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO payments (
			payment_id, request_id, product_id, status, checkout_url, units,
			customer_email, success_url, metadata, expires_on, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = s.db.ExecContext(ctx, query,
		p.PaymentID, p.RequestID, p.ProductID, p.Status, p.CheckoutURL, p.Units,
		p.CustomerEmail, p.SuccessURL, string(meta), formatTime(p.ExpiresOn), formatTime(p.CreatedAt),
	)
	return err
}

// GetPaymentByRequestID finds an existing session for an idempotency token,
// or ErrNotFound. Repeated checkout creation with the same request_id is
// deduplicated through this lookup.
func (s *Store) GetPaymentByRequestID(ctx context.Context, requestID string) (*Payment, error) {
	query := `
		SELECT payment_id, request_id, product_id, status, checkout_url, units,
		       customer_email, success_url, metadata, expires_on, created_at
		FROM payments
		WHERE request_id = ?
	`
	var (
		p         Payment
		meta      string
		expiresOn string
		createdAt string
	)
	err := s.db.QueryRowContext(ctx, query, requestID).Scan(
		&p.PaymentID, &p.RequestID, &p.ProductID, &p.Status, &p.CheckoutURL, &p.Units,
		&p.CustomerEmail, &p.SuccessURL, &meta, &expiresOn, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(meta), &p.Metadata); err != nil {
		return nil, err
	}
	p.ExpiresOn = parseTime(expiresOn)
	p.CreatedAt = parseTime(createdAt)
	return &p, nil
}

// InsertTransaction records a settled money movement.
func (s *Store) InsertTransaction(ctx context.Context, t bagelpay.Transaction) error {
	email := ""
	if t.Customer != nil {
		email = t.Customer.Email
	}
	query := `
		INSERT INTO transactions (
			transaction_id, amount, currency, type, customer_email, remark, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		t.TransactionID, t.Amount, t.Currency, t.Type, email, t.Remark, formatTime(t.CreatedAt),
	)
	return err
}

// ListTransactions returns one page of transactions in creation order plus
// the total count.
func (s *Store) ListTransactions(ctx context.Context, pageNum, pageSize int) (int, []bagelpay.Transaction, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&total); err != nil {
		return 0, nil, err
	}

	query := `
		SELECT transaction_id, amount, currency, type, customer_email, remark, created_at
		FROM transactions
		ORDER BY created_at, transaction_id
		LIMIT ? OFFSET ?
	`
	rows, err := s.db.QueryContext(ctx, query, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	items := []bagelpay.Transaction{}
	for rows.Next() {
		var (
			t         bagelpay.Transaction
			email     string
			createdAt string
		)
		if err := rows.Scan(&t.TransactionID, &t.Amount, &t.Currency, &t.Type, &email, &t.Remark, &createdAt); err != nil {
			return 0, nil, err
		}
		if email != "" {
			t.Customer = &bagelpay.Customer{Email: email}
		}
		t.CreatedAt = parseTime(createdAt)
		items = append(items, t)
	}
	return total, items, rows.Err()
}

// UpsertCustomer creates or updates the aggregate customer record, adding
// spendDelta (minor units) and subscriptionsDelta to the running totals.
func (s *Store) UpsertCustomer(ctx context.Context, email, name string, spendDelta int64, subscriptionsDelta int) error {
	query := `
		INSERT INTO customers (email, name, total_spend, subscriptions, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			name = CASE WHEN excluded.name != '' THEN excluded.name ELSE customers.name END,
			total_spend = customers.total_spend + excluded.total_spend,
			subscriptions = customers.subscriptions + excluded.subscriptions
	`
	_, err := s.db.ExecContext(ctx, query, email, name, spendDelta, subscriptionsDelta, formatTime(time.Now()))
	return err
}

// ListCustomers returns one page of customers plus the total count.
func (s *Store) ListCustomers(ctx context.Context, pageNum, pageSize int) (int, []bagelpay.Customer, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM customers`).Scan(&total); err != nil {
		return 0, nil, err
	}

	query := `
		SELECT email, name, total_spend, subscriptions
		FROM customers
		ORDER BY created_at, email
		LIMIT ? OFFSET ?
	`
	rows, err := s.db.QueryContext(ctx, query, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	items := []bagelpay.Customer{}
	for rows.Next() {
		var c bagelpay.Customer
		if err := rows.Scan(&c.Email, &c.Name, &c.TotalSpend, &c.Subscriptions); err != nil {
			return 0, nil, err
		}
		items = append(items, c)
	}
	return total, items, rows.Err()
}
