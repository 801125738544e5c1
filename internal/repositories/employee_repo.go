package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type EmployeeRepository interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.Employee, error)
	Create(ctx context.Context, employee *models.Employee) error
	Update(ctx context.Context, employee *models.Employee) error
	Delete(ctx context.Context, ci, branchRIF string) error
}

type employeeRepo struct {
	db DB
}

func NewEmployeeRepo(db DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

func (r *employeeRepo) ListByBranch(ctx context.Context, branchRIF string) ([]*models.Employee, error) {
	query := `
		SELECT ci, name, address, phone, salary, branch_rif
		FROM employees
		WHERE branch_rif = $1
		ORDER BY name
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []*models.Employee
	for rows.Next() {
		e := &models.Employee{}
		if err := rows.Scan(&e.CI, &e.Name, &e.Address, &e.Phone, &e.Salary, &e.BranchRIF); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(e); err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	return employees, rows.Err()
}

func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	query := `
		INSERT INTO employees (ci, name, address, phone, salary, branch_rif)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, employee.CI, employee.Name, employee.Address, employee.Phone, employee.Salary, employee.BranchRIF)
	return err
}

func (r *employeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	query := `
		UPDATE employees
		SET name = $1, address = $2, phone = $3, salary = $4
		WHERE ci = $5
	`
	_, err := r.db.Exec(ctx, query, employee.Name, employee.Address, employee.Phone, employee.Salary, employee.CI)
	return err
}

func (r *employeeRepo) Delete(ctx context.Context, ci, branchRIF string) error {
	query := `DELETE FROM employees WHERE ci = $1 AND branch_rif = $2`
	_, err := r.db.Exec(ctx, query, ci, branchRIF)
	return err
}
