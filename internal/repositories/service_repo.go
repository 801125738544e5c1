package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/shopspring/decimal"
)

// ServiceActivityRow is one flat row of the branch offering listing; the
// service layer groups these into nested view models.
type ServiceActivityRow struct {
	Code               int
	Name               string
	Charge             decimal.Decimal
	SupervisorCI       string
	CoordinatorCI      string
	ActivityCode       *int
	ActivityDesc       *string
	ActivityHourlyRate *decimal.Decimal
}

type ServiceRepository interface {
	ListByBranchWithActivities(ctx context.Context, branchRIF string) ([]ServiceActivityRow, error)
	ListRefs(ctx context.Context) ([]*models.ServiceRef, error)
	Create(ctx context.Context, service *models.Service) (int, error)
	Update(ctx context.Context, service *models.Service) error
	Delete(ctx context.Context, code int) error
	Offer(ctx context.Context, offering *models.BranchService) error
	CreateActivity(ctx context.Context, activity *models.Activity) error
	UpdateActivity(ctx context.Context, activity *models.Activity) error
	DeleteActivity(ctx context.Context, serviceCode, activityCode int) error
}

type serviceRepo struct {
	db DB
}

func NewServiceRepo(db DB) ServiceRepository {
	return &serviceRepo{db: db}
}

func (r *serviceRepo) ListByBranchWithActivities(ctx context.Context, branchRIF string) ([]ServiceActivityRow, error) {
	query := `
		SELECT s.code, s.name, s.charge, s.supervisor_ci, s.coordinator_ci,
		       a.code, a.description, a.hourly_rate
		FROM branch_services bs
		JOIN services s ON s.code = bs.service_code
		LEFT JOIN activities a ON a.service_code = s.code
		WHERE bs.branch_rif = $1
		ORDER BY s.code, a.code
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceActivityRow
	for rows.Next() {
		var row ServiceActivityRow
		err := rows.Scan(
			&row.Code, &row.Name, &row.Charge, &row.SupervisorCI, &row.CoordinatorCI,
			&row.ActivityCode, &row.ActivityDesc, &row.ActivityHourlyRate,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *serviceRepo) ListRefs(ctx context.Context) ([]*models.ServiceRef, error) {
	rows, err := r.db.Query(ctx, `SELECT code, name FROM services ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var refs []*models.ServiceRef
	for rows.Next() {
		ref := &models.ServiceRef{}
		if err := rows.Scan(&ref.Code, &ref.Name); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(ref); err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, rows.Err()
}

// Create inserts the catalog row and returns the generated code so the
// caller can register the branch offering.
func (r *serviceRepo) Create(ctx context.Context, service *models.Service) (int, error) {
	var code int
	query := `
		INSERT INTO services (name, charge, supervisor_ci, coordinator_ci)
		VALUES ($1, 0, $2, $3)
		RETURNING code
	`
	err := r.db.QueryRow(ctx, query, service.Name, service.SupervisorCI, service.CoordinatorCI).Scan(&code)
	if err != nil {
		return 0, err
	}
	return code, nil
}

func (r *serviceRepo) Update(ctx context.Context, service *models.Service) error {
	query := `
		UPDATE services
		SET name = $1, supervisor_ci = $2, coordinator_ci = $3
		WHERE code = $4
	`
	_, err := r.db.Exec(ctx, query, service.Name, service.SupervisorCI, service.CoordinatorCI, service.Code)
	return err
}

func (r *serviceRepo) Delete(ctx context.Context, code int) error {
	_, err := r.db.Exec(ctx, `DELETE FROM services WHERE code = $1`, code)
	return err
}

func (r *serviceRepo) Offer(ctx context.Context, offering *models.BranchService) error {
	query := `
		INSERT INTO branch_services (branch_rif, service_code, capacity, booking_window)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, offering.BranchRIF, offering.ServiceCode, offering.Capacity, offering.BookingWindow)
	return err
}

func (r *serviceRepo) CreateActivity(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (service_code, description, hourly_rate)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.Exec(ctx, query, activity.ServiceCode, activity.Description, activity.HourlyRate)
	return err
}

func (r *serviceRepo) UpdateActivity(ctx context.Context, activity *models.Activity) error {
	query := `
		UPDATE activities
		SET description = $1, hourly_rate = $2
		WHERE service_code = $3 AND code = $4
	`
	_, err := r.db.Exec(ctx, query, activity.Description, activity.HourlyRate, activity.ServiceCode, activity.Code)
	return err
}

func (r *serviceRepo) DeleteActivity(ctx context.Context, serviceCode, activityCode int) error {
	query := `DELETE FROM activities WHERE service_code = $1 AND code = $2`
	_, err := r.db.Exec(ctx, query, serviceCode, activityCode)
	return err
}
