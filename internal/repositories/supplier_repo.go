package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type SupplierRepository interface {
	List(ctx context.Context) ([]*models.Supplier, error)
	Create(ctx context.Context, supplier *models.Supplier) error
	Update(ctx context.Context, supplier *models.Supplier) error
	Delete(ctx context.Context, rif string) error
}

type supplierRepo struct {
	db DB
}

func NewSupplierRepo(db DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) List(ctx context.Context) ([]*models.Supplier, error) {
	query := `
		SELECT rif, name, address, phone, contact
		FROM suppliers
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		s := &models.Supplier{}
		if err := rows.Scan(&s.RIF, &s.Name, &s.Address, &s.Phone, &s.Contact); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(s); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, s)
	}
	return suppliers, rows.Err()
}

func (r *supplierRepo) Create(ctx context.Context, supplier *models.Supplier) error {
	query := `
		INSERT INTO suppliers (rif, name, address, phone, contact)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, supplier.RIF, supplier.Name, supplier.Address, supplier.Phone, supplier.Contact)
	return err
}

func (r *supplierRepo) Update(ctx context.Context, supplier *models.Supplier) error {
	query := `
		UPDATE suppliers
		SET name = $1, address = $2, phone = $3, contact = $4
		WHERE rif = $5
	`
	_, err := r.db.Exec(ctx, query, supplier.Name, supplier.Address, supplier.Phone, supplier.Contact, supplier.RIF)
	return err
}

func (r *supplierRepo) Delete(ctx context.Context, rif string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM suppliers WHERE rif = $1`, rif)
	return err
}
