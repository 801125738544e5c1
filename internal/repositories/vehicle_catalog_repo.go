package repositories

import (
	"context"
	"errors"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/jackc/pgx/v5"
)

// VehicleCatalogRepository covers the reference tables behind vehicle
// registration: types, brands and models.
type VehicleCatalogRepository interface {
	ListTypes(ctx context.Context) ([]*models.VehicleType, error)
	CreateType(ctx context.Context, name string) error
	ListBrandModelRows(ctx context.Context) ([]*models.BrandModelRow, error)
	CreateBrand(ctx context.Context, name string) error
	GetModelDetail(ctx context.Context, brandCode, modelCode int) (*models.ModelDetail, error)
	CreateModel(ctx context.Context, model *models.Model) error
}

type vehicleCatalogRepo struct {
	db DB
}

func NewVehicleCatalogRepo(db DB) VehicleCatalogRepository {
	return &vehicleCatalogRepo{db: db}
}

func (r *vehicleCatalogRepo) ListTypes(ctx context.Context) ([]*models.VehicleType, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM vehicle_types ORDER BY code LIMIT 50`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []*models.VehicleType
	for rows.Next() {
		t := &models.VehicleType{}
		if err := rows.Scan(&t.Code, &t.Name); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *vehicleCatalogRepo) CreateType(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO vehicle_types (name) VALUES ($1)`, name)
	return err
}

// ListBrandModelRows left-joins models so brands without models still appear.
func (r *vehicleCatalogRepo) ListBrandModelRows(ctx context.Context) ([]*models.BrandModelRow, error) {
	query := `
		SELECT b.code, b.name, m.code, m.description
		FROM brands b
		LEFT JOIN models m ON m.brand_code = b.code
		ORDER BY b.code, m.code
		LIMIT 50
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.BrandModelRow
	for rows.Next() {
		row := &models.BrandModelRow{}
		if err := rows.Scan(&row.BrandCode, &row.BrandName, &row.ModelCode, &row.ModelDescription); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *vehicleCatalogRepo) CreateBrand(ctx context.Context, name string) error {
	_, err := r.db.Exec(ctx, `INSERT INTO brands (name) VALUES ($1)`, name)
	return err
}

func (r *vehicleCatalogRepo) GetModelDetail(ctx context.Context, brandCode, modelCode int) (*models.ModelDetail, error) {
	d := &models.ModelDetail{}
	query := `
		SELECT m.description, m.seats, m.weight, m.engine_oil, m.gearbox_oil, m.octane, m.coolant, t.name
		FROM models m
		JOIN vehicle_types t ON t.code = m.type_code
		WHERE m.brand_code = $1 AND m.code = $2
	`
	err := r.db.QueryRow(ctx, query, brandCode, modelCode).Scan(
		&d.Description, &d.Seats, &d.Weight, &d.EngineOil, &d.GearboxOil, &d.Octane, &d.Coolant, &d.TypeName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if err := common.ValidateStruct(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (r *vehicleCatalogRepo) CreateModel(ctx context.Context, model *models.Model) error {
	query := `
		INSERT INTO models (brand_code, description, seats, weight, engine_oil, gearbox_oil, octane, coolant, type_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query,
		model.BrandCode, model.Description, model.Seats, model.Weight,
		model.EngineOil, model.GearboxOil, model.Octane, model.Coolant, model.TypeCode,
	)
	return err
}
