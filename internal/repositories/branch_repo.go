package repositories

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/jackc/pgx/v5"
)

type BranchRepository interface {
	ListRefs(ctx context.Context) ([]*models.BranchRef, error)
	GetByRIF(ctx context.Context, rif string) (*models.Branch, error)
	Create(ctx context.Context, branch *models.Branch) error
	AssignManager(ctx context.Context, rif, employeeCI string) error
}

type branchRepo struct {
	db DB
}

func NewBranchRepo(db DB) BranchRepository {
	return &branchRepo{db: db}
}

func (r *branchRepo) ListRefs(ctx context.Context) ([]*models.BranchRef, error) {
	rows, err := r.db.Query(ctx, `SELECT rif, name FROM branches ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var branches []*models.BranchRef
	for rows.Next() {
		b := &models.BranchRef{}
		if err := rows.Scan(&b.RIF, &b.Name); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(b); err != nil {
			return nil, err
		}
		branches = append(branches, b)
	}
	return branches, rows.Err()
}

func (r *branchRepo) GetByRIF(ctx context.Context, rif string) (*models.Branch, error) {
	b := &models.Branch{}
	query := `
		SELECT rif, name, city, manager_ci, manager_since
		FROM branches
		WHERE rif = $1
	`
	err := r.db.QueryRow(ctx, query, rif).Scan(&b.RIF, &b.Name, &b.City, &b.ManagerCI, &b.ManagerSince)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if err := common.ValidateStruct(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (r *branchRepo) Create(ctx context.Context, branch *models.Branch) error {
	query := `
		INSERT INTO branches (rif, name, city)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, branch.RIF, branch.Name, branch.City)
	return err
}

func (r *branchRepo) AssignManager(ctx context.Context, rif, employeeCI string) error {
	query := `
		UPDATE branches
		SET manager_ci = $1, manager_since = NOW()
		WHERE rif = $2
	`
	_, err := r.db.Exec(ctx, query, employeeCI, rif)
	return err
}
