package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type CustomerRepository interface {
	List(ctx context.Context) ([]*models.Customer, error)
	ListIDs(ctx context.Context) ([]string, error)
	Create(ctx context.Context, customer *models.Customer) error
	Update(ctx context.Context, customer *models.Customer) error
	Delete(ctx context.Context, ci string) error
}

type customerRepo struct {
	db DB
}

func NewCustomerRepo(db DB) CustomerRepository {
	return &customerRepo{db: db}
}

func (r *customerRepo) List(ctx context.Context) ([]*models.Customer, error) {
	query := `
		SELECT ci, name, phone1, phone2, email
		FROM customers
		ORDER BY name
		LIMIT 50
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []*models.Customer
	for rows.Next() {
		c := &models.Customer{}
		if err := rows.Scan(&c.CI, &c.Name, &c.Phone1, &c.Phone2, &c.Email); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(c); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepo) ListIDs(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT ci FROM customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var ci string
		if err := rows.Scan(&ci); err != nil {
			return nil, err
		}
		ids = append(ids, ci)
	}
	return ids, rows.Err()
}

func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (ci, name, phone1, phone2, email)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query, customer.CI, customer.Name, customer.Phone1, customer.Phone2, customer.Email)
	return err
}

func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET name = $1, phone1 = $2, phone2 = $3, email = $4
		WHERE ci = $5
	`
	_, err := r.db.Exec(ctx, query, customer.Name, customer.Phone1, customer.Phone2, customer.Email, customer.CI)
	return err
}

func (r *customerRepo) Delete(ctx context.Context, ci string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM customers WHERE ci = $1`, ci)
	return err
}
