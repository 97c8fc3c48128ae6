package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagelpay/bagelpay-go/bagelpay"
)

// InsertProduct persists a fully populated product record.
func (s *Store) InsertProduct(ctx context.Context, p bagelpay.Product) error {
	query := `
		INSERT INTO products (
			product_id, name, description, price, currency, billing_type,
			tax_inclusive, tax_category, recurring_interval, trial_days,
			is_archive, product_url, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		p.ProductID, p.Name, p.Description, p.Price, p.Currency, string(p.BillingType),
		boolToInt(p.TaxInclusive), p.TaxCategory, p.RecurringInterval, p.TrialDays,
		boolToInt(p.IsArchive), p.ProductURL, formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	return err
}

// GetProduct returns one product or ErrNotFound.
func (s *Store) GetProduct(ctx context.Context, productID string) (*bagelpay.Product, error) {
	query := `
		SELECT product_id, name, description, price, currency, billing_type,
		       tax_inclusive, tax_category, recurring_interval, trial_days,
		       is_archive, product_url, created_at, updated_at
		FROM products
		WHERE product_id = ?
	`
	row := s.db.QueryRowContext(ctx, query, productID)
	p, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// UpdateProduct replaces the mutable fields of an existing product.
func (s *Store) UpdateProduct(ctx context.Context, p bagelpay.Product) error {
	query := `
		UPDATE products SET
			name = ?, description = ?, price = ?, currency = ?, billing_type = ?,
			tax_inclusive = ?, tax_category = ?, recurring_interval = ?,
			trial_days = ?, updated_at = ?
		WHERE product_id = ?
	`
	res, err := s.db.ExecContext(ctx, query,
		p.Name, p.Description, p.Price, p.Currency, string(p.BillingType),
		boolToInt(p.TaxInclusive), p.TaxCategory, p.RecurringInterval,
		p.TrialDays, formatTime(p.UpdatedAt), p.ProductID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetProductArchived flips the archive flag.
func (s *Store) SetProductArchived(ctx context.Context, productID string, archived bool, updatedAt time.Time) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE products SET is_archive = ?, updated_at = ? WHERE product_id = ?`,
		boolToInt(archived), formatTime(updatedAt), productID,
	)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// ListProducts returns one page of products in creation order plus the total
// count.
func (s *Store) ListProducts(ctx context.Context, pageNum, pageSize int) (int, []bagelpay.Product, error) {
	var total int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&total); err != nil {
		return 0, nil, err
	}

	query := `
		SELECT product_id, name, description, price, currency, billing_type,
		       tax_inclusive, tax_category, recurring_interval, trial_days,
		       is_archive, product_url, created_at, updated_at
		FROM products
		ORDER BY created_at, product_id
		LIMIT ? OFFSET ?
	`
	rows, err := s.db.QueryContext(ctx, query, pageSize, (pageNum-1)*pageSize)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	items := []bagelpay.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return 0, nil, err
		}
		items = append(items, *p)
	}
	return total, items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*bagelpay.Product, error) {
	var (
		p            bagelpay.Product
		billingType  string
		taxInclusive int
		isArchive    int
		createdAt    string
		updatedAt    string
	)
	err := row.Scan(
		&p.ProductID, &p.Name, &p.Description, &p.Price, &p.Currency, &billingType,
		&taxInclusive, &p.TaxCategory, &p.RecurringInterval, &p.TrialDays,
		&isArchive, &p.ProductURL, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.BillingType = bagelpay.BillingType(billingType)
	p.TaxInclusive = taxInclusive != 0
	p.IsArchive = isArchive != 0
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
