package repositories

import (
	"context"
	"errors"
	"fmt"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type StoreRepository interface {
	ListItems(ctx context.Context, branchRIF string) ([]*models.StoreItem, error)
	CreateItem(ctx context.Context, item *models.StoreItem) error
	UpdateItem(ctx context.Context, item *models.StoreItem) error
	ListInvoices(ctx context.Context, branchRIF string) ([]*models.StoreInvoice, error)
	GetInvoice(ctx context.Context, code int) (*models.StoreInvoice, error)
	ListInvoiceItems(ctx context.Context, invoiceCode int) ([]*models.StoreInvoiceItem, error)
	CreateInvoiceWithItems(ctx context.Context, customerCI, branchRIF string, lines []models.CartLine) (int, error)
}

type storeRepo struct {
	db DB
}

func NewStoreRepo(db DB) StoreRepository {
	return &storeRepo{db: db}
}

func (r *storeRepo) ListItems(ctx context.Context, branchRIF string) ([]*models.StoreItem, error) {
	query := `
		SELECT code, name, price, branch_rif
		FROM store_items
		WHERE branch_rif = $1
		ORDER BY code
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.StoreItem
	for rows.Next() {
		item := &models.StoreItem{}
		if err := rows.Scan(&item.Code, &item.Name, &item.Price, &item.BranchRIF); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *storeRepo) CreateItem(ctx context.Context, item *models.StoreItem) error {
	query := `
		INSERT INTO store_items (name, price, branch_rif)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, item.Name, item.Price, item.BranchRIF)
	return err
}

func (r *storeRepo) UpdateItem(ctx context.Context, item *models.StoreItem) error {
	query := `
		UPDATE store_items
		SET name = $1, price = $2
		WHERE code = $3
	`
	_, err := r.db.Exec(ctx, query, item.Name, item.Price, item.Code)
	return err
}

func (r *storeRepo) ListInvoices(ctx context.Context, branchRIF string) ([]*models.StoreInvoice, error) {
	query := `
		SELECT code, issued_at, total, customer_ci, branch_rif
		FROM store_invoices
		WHERE branch_rif = $1
		ORDER BY issued_at DESC
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.StoreInvoice
	for rows.Next() {
		inv := &models.StoreInvoice{}
		if err := rows.Scan(&inv.Code, &inv.IssuedAt, &inv.Total, &inv.CustomerCI, &inv.BranchRIF); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *storeRepo) GetInvoice(ctx context.Context, code int) (*models.StoreInvoice, error) {
	inv := &models.StoreInvoice{}
	query := `
		SELECT code, issued_at, total, customer_ci, branch_rif
		FROM store_invoices
		WHERE code = $1
	`
	err := r.db.QueryRow(ctx, query, code).Scan(&inv.Code, &inv.IssuedAt, &inv.Total, &inv.CustomerCI, &inv.BranchRIF)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if err := common.ValidateStruct(inv); err != nil {
		return nil, err
	}
	return inv, nil
}

func (r *storeRepo) ListInvoiceItems(ctx context.Context, invoiceCode int) ([]*models.StoreInvoiceItem, error) {
	query := `
		SELECT invoice_code, item_code, quantity, price
		FROM store_invoice_items
		WHERE invoice_code = $1
		ORDER BY item_code
	`
	rows, err := r.db.Query(ctx, query, invoiceCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.StoreInvoiceItem
	for rows.Next() {
		item := &models.StoreInvoiceItem{}
		if err := rows.Scan(&item.InvoiceCode, &item.ItemCode, &item.Quantity, &item.Price); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(item); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// CreateInvoiceWithItems creates the invoice header and all its lines inside
// one transaction. Each line's price is read from store_items in the same
// transaction and copied onto the line, so a later price edit never changes
// the historical record. Any failure rolls the whole invoice back.
func (r *storeRepo) CreateInvoiceWithItems(ctx context.Context, customerCI, branchRIF string, lines []models.CartLine) (int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var invoiceCode int
	err = tx.QueryRow(ctx, `
		INSERT INTO store_invoices (issued_at, total, customer_ci, branch_rif)
		VALUES (NOW(), 0, $1, $2)
		RETURNING code
	`, customerCI, branchRIF).Scan(&invoiceCode)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero
	for _, line := range lines {
		var price decimal.Decimal
		err = tx.QueryRow(ctx, `
			SELECT price FROM store_items WHERE code = $1 AND branch_rif = $2
		`, line.ItemCode, branchRIF).Scan(&price)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, fmt.Errorf("item %d: %w", line.ItemCode, common.ErrNotFound)
			}
			return 0, err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO store_invoice_items (invoice_code, item_code, quantity, price)
			VALUES ($1, $2, $3, $4)
		`, invoiceCode, line.ItemCode, line.Quantity, price)
		if err != nil {
			return 0, err
		}

		total = total.Add(price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	// Total is stored at write time; nothing re-derives it later.
	_, err = tx.Exec(ctx, `
		UPDATE store_invoices SET total = $1 WHERE code = $2
	`, total, invoiceCode)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return invoiceCode, nil
}
