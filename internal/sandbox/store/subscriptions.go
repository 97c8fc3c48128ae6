package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

// InsertSubscription persists a new subscription.
func (s *Store) InsertSubscription(ctx context.Context, sub bagelpay.Subscription) error {
	email := ""
	if sub.Customer != nil {
		email = sub.Customer.Email
	}
	query := `
		INSERT INTO subscriptions (
			subscription_id, status, product_id, product_name, customer_email,
			recurring_interval, next_billing_amount, payment_method,
			trial_start, trial_end, billing_period_start, billing_period_end,
			cancel_at, remark, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		sub.SubscriptionID, string(sub.Status), sub.ProductID, sub.ProductName, email,
		sub.RecurringInterval, sub.NextBillingAmount, sub.PaymentMethod,
		nullTime(sub.TrialStart), nullTime(sub.TrialEnd),
		nullTime(sub.BillingPeriodStart), nullTime(sub.BillingPeriodEnd),
		nullTime(sub.CancelAt), sub.Remark,
		formatTime(sub.CreatedAt), formatTime(sub.UpdatedAt),
	)
	return err
}

// GetSubscription returns one subscription or ErrNotFound.
func (s *Store) GetSubscription(ctx context.Context, subscriptionID string) (*bagelpay.Subscription, error) {
	row := s.db.QueryRowContext(ctx, selectSubscription+` WHERE subscription_id = ?`, subscriptionID)
	sub, err := scanSubscription(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return sub, nil
}

// ListSubscriptions returns one page of subscriptions in creation order plus
// the total count.
func (s *Store) ListSubscriptions(ctx context.Context, pageNum, pageSize int) (int, []bagelpay.Subscription, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM subscriptions`).Scan(&total); err != nil {
		return 0, nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		selectSubscription+` ORDER BY created_at, subscription_id LIMIT ? OFFSET ?`,
		pageSize, (pageNum-1)*pageSize,
	)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	items := []bagelpay.Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return 0, nil, err
		}
		items = append(items, *sub)
	}
	return total, items, rows.Err()
}

// MarkSubscriptionCanceled schedules end-of-period cancellation: cancel_at is
// set and the status is left untouched.
func (s *Store) MarkSubscriptionCanceled(ctx context.Context, subscriptionID string, cancelAt, updatedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE subscriptions SET cancel_at = ?, updated_at = ? WHERE subscription_id = ?`,
		formatTime(cancelAt), formatTime(updatedAt), subscriptionID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

const selectSubscription = `
	SELECT subscription_id, status, product_id, product_name, customer_email,
	       recurring_interval, next_billing_amount, payment_method,
	       trial_start, trial_end, billing_period_start, billing_period_end,
	       cancel_at, remark, created_at, updated_at
	FROM subscriptions`

func scanSubscription(row rowScanner) (*bagelpay.Subscription, error) {
	var (
		sub                bagelpay.Subscription
		status             string
		email              string
		trialStart         sql.NullString
		trialEnd           sql.NullString
		billingPeriodStart sql.NullString
		billingPeriodEnd   sql.NullString
		cancelAt           sql.NullString
		createdAt          string
		updatedAt          string
	)
	err := row.Scan(
		&sub.SubscriptionID, &status, &sub.ProductID, &sub.ProductName, &email,
		&sub.RecurringInterval, &sub.NextBillingAmount, &sub.PaymentMethod,
		&trialStart, &trialEnd, &billingPeriodStart, &billingPeriodEnd,
		&cancelAt, &sub.Remark, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	sub.Status = bagelpay.SubscriptionStatus(status)
	if email != "" {
		sub.Customer = &bagelpay.Customer{Email: email}
	}
	sub.TrialStart = timePtr(trialStart)
	sub.TrialEnd = timePtr(trialEnd)
	sub.BillingPeriodStart = timePtr(billingPeriodStart)
	sub.BillingPeriodEnd = timePtr(billingPeriodEnd)
	sub.CancelAt = timePtr(cancelAt)
	sub.CreatedAt = parseTime(createdAt)
	sub.UpdatedAt = parseTime(updatedAt)
	return &sub, nil
}
