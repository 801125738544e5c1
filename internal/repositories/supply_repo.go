package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type SupplyRepository interface {
	ListSupplies(ctx context.Context) ([]*models.Supply, error)
	CreateSupply(ctx context.Context, supply *models.Supply) error
	UpdateSupply(ctx context.Context, supply *models.Supply) error
	DeleteSupply(ctx context.Context, code int) error
	ListLines(ctx context.Context) ([]*models.SupplyLine, error)
	CreateLine(ctx context.Context, name string) error
	UpdateLine(ctx context.Context, line *models.SupplyLine) error
	DeleteLine(ctx context.Context, code int) error
	ListCounts(ctx context.Context) ([]*models.PhysicalCount, error)
	CreateCount(ctx context.Context, count *models.PhysicalCount) error
	ListLowStock(ctx context.Context) ([]*models.Supply, error)
}

type supplyRepo struct {
	db DB
}

func NewSupplyRepo(db DB) SupplyRepository {
	return &supplyRepo{db: db}
}

func (r *supplyRepo) scanSupplies(ctx context.Context, query string, args ...any) ([]*models.Supply, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var supplies []*models.Supply
	for rows.Next() {
		s := &models.Supply{}
		err := rows.Scan(
			&s.Code, &s.Name, &s.Description, &s.Maker, &s.Eco,
			&s.Price, &s.Stock, &s.MinStock, &s.MaxStock, &s.Unit, &s.LineCode,
		)
		if err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(s); err != nil {
			return nil, err
		}
		supplies = append(supplies, s)
	}
	return supplies, rows.Err()
}

func (r *supplyRepo) ListSupplies(ctx context.Context) ([]*models.Supply, error) {
	query := `
		SELECT code, name, description, maker, eco, price, stock, min_stock, max_stock, unit, line_code
		FROM supplies
		ORDER BY code
	`
	return r.scanSupplies(ctx, query)
}

// ListLowStock feeds the background sweep: supplies at or below their
// configured minimum.
func (r *supplyRepo) ListLowStock(ctx context.Context) ([]*models.Supply, error) {
	query := `
		SELECT code, name, description, maker, eco, price, stock, min_stock, max_stock, unit, line_code
		FROM supplies
		WHERE stock <= min_stock
		ORDER BY code
	`
	return r.scanSupplies(ctx, query)
}

func (r *supplyRepo) CreateSupply(ctx context.Context, supply *models.Supply) error {
	query := `
		INSERT INTO supplies (name, description, maker, eco, price, stock, min_stock, max_stock, unit, line_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		supply.Name, supply.Description, supply.Maker, supply.Eco, supply.Price,
		supply.Stock, supply.MinStock, supply.MaxStock, supply.Unit, supply.LineCode,
	)
	return err
}

func (r *supplyRepo) UpdateSupply(ctx context.Context, supply *models.Supply) error {
	query := `
		UPDATE supplies
		SET name = $1, description = $2, maker = $3, eco = $4, price = $5,
		    stock = $6, min_stock = $7, max_stock = $8, unit = $9, line_code = $10
		WHERE code = $11
	`
	_, err := r.db.Exec(ctx, query,
		supply.Name, supply.Description, supply.Maker, supply.Eco, supply.Price,
		supply.Stock, supply.MinStock, supply.MaxStock, supply.Unit, supply.LineCode, supply.Code,
	)
	return err
}

func (r *supplyRepo) DeleteSupply(ctx context.Context, code int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM supplies WHERE code = $1`, code)
	return err
}

func (r *supplyRepo) ListLines(ctx context.Context) ([]*models.SupplyLine, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM supply_lines ORDER BY code`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*models.SupplyLine
	for rows.Next() {
		l := &models.SupplyLine{}
		if err := rows.Scan(&l.Code, &l.Name); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(l); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *supplyRepo) CreateLine(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO supply_lines (name) VALUES ($1)`, name)
	return err
}

func (r *supplyRepo) UpdateLine(ctx context.Context, line *models.SupplyLine) error {
	_, err := r.db.Exec(ctx, `UPDATE supply_lines SET name = $1 WHERE code = $2`, line.Name, line.Code)
	return err
}

func (r *supplyRepo) DeleteLine(ctx context.Context, code int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM supply_lines WHERE code = $1`, code)
	return err
}

func (r *supplyRepo) ListCounts(ctx context.Context) ([]*models.PhysicalCount, error) {
	query := `
		SELECT id, counted_at, supply_code, quantity
		FROM physical_counts
		ORDER BY counted_at DESC
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []*models.PhysicalCount
	for rows.Next() {
		c := &models.PhysicalCount{}
		if err := rows.Scan(&c.ID, &c.CountedAt, &c.SupplyCode, &c.Quantity); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(c); err != nil {
			return nil, err
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *supplyRepo) CreateCount(ctx context.Context, count *models.PhysicalCount) error {
	query := `
		INSERT INTO physical_counts (counted_at, supply_code, quantity)
		VALUES (NOW(), $1, $2)
	`
	_, err := r.db.Exec(ctx, query, count.SupplyCode, count.Quantity)
	return err
}
