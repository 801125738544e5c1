package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

type VehicleRepository interface {
	ListRows(ctx context.Context) ([]*models.VehicleRow, error)
	ListRefsByBranch(ctx context.Context, branchRIF string) ([]*models.VehicleRef, error)
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, code int) error
}

type vehicleRepo struct {
	db DB
}

func NewVehicleRepo(db DB) VehicleRepository {
	return &vehicleRepo{db: db}
}

func (r *vehicleRepo) ListRows(ctx context.Context) ([]*models.VehicleRow, error) {
	query := `
		SELECT v.code, v.plate, v.acquired_at, v.oil_type, v.brand_code, v.model_code, v.owner_ci,
		       b.name, m.description, c.name
		FROM vehicles v
		JOIN brands b ON b.code = v.brand_code
		JOIN models m ON m.brand_code = v.brand_code AND m.code = v.model_code
		JOIN customers c ON c.ci = v.owner_ci
		ORDER BY v.code
		LIMIT 50
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vehicles []*models.VehicleRow
	for rows.Next() {
		v := &models.VehicleRow{}
		err := rows.Scan(
			&v.Code, &v.Plate, &v.AcquiredAt, &v.OilType, &v.BrandCode, &v.ModelCode, &v.OwnerCI,
			&v.BrandName, &v.ModelDescription, &v.OwnerName,
		)
		if err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(v); err != nil {
			return nil, err
		}
		vehicles = append(vehicles, v)
	}
	return vehicles, rows.Err()
}

// ListRefsByBranch returns vehicles whose type is serviced at the branch,
// for work-order intake.
func (r *vehicleRepo) ListRefsByBranch(ctx context.Context, branchRIF string) ([]*models.VehicleRef, error) {
	query := `
		SELECT v.code, v.plate
		FROM vehicles v
		JOIN models m ON m.brand_code = v.brand_code AND m.code = v.model_code
		WHERE m.type_code IN (
			SELECT type_code FROM branch_vehicle_types WHERE branch_rif = $1
		)
		ORDER BY v.plate
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.VehicleRef
	for rows.Next() {
		ref := &models.VehicleRef{}
		if err := rows.Scan(&ref.Code, &ref.Plate); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

func (r *vehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		INSERT INTO vehicles (plate, acquired_at, oil_type, brand_code, model_code, owner_ci)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query,
		vehicle.Plate, vehicle.AcquiredAt, vehicle.OilType, vehicle.BrandCode, vehicle.ModelCode, vehicle.OwnerCI,
	)
	return err
}

func (r *vehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	query := `
		UPDATE vehicles
		SET plate = $1, acquired_at = $2, oil_type = $3, brand_code = $4, model_code = $5, owner_ci = $6
		WHERE code = $7
	`
	_, err := r.db.Exec(ctx, query,
		vehicle.Plate, vehicle.AcquiredAt, vehicle.OilType, vehicle.BrandCode, vehicle.ModelCode, vehicle.OwnerCI, vehicle.Code,
	)
	return err
}

func (r *vehicleRepo) Delete(ctx context.Context, code int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE code = $1`, code)
	return err
}
