package repositories

import (
	"context"
	"errors"
	"time"

	"tallerix/internal/common"
	"tallerix/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ServiceInvoiceDetailRow is one flat row of the invoice detail join; the
// service layer groups labor and supply lines out of it.
type ServiceInvoiceDetailRow struct {
	Code          int
	IssuedAt      time.Time
	Amount        decimal.Decimal
	DiscountPct   decimal.Decimal
	CustomerCI    string
	CustomerName  string
	VehicleCode   int
	Plate         string
	Sequence      int
	ActivityDesc  string
	HourlyRate    decimal.Decimal
	Hours         decimal.Decimal
	ActivityTotal decimal.Decimal
	SupplyName    string
	SupplyQty     int
	SupplyPrice   decimal.Decimal
	SupplyTotal   decimal.Decimal
}

// WorkOrderActivityRow is one flat row of the work-order detail join. The
// consumption columns are nullable: a performed activity that consumed
// nothing still yields one row.
type WorkOrderActivityRow struct {
	ServiceCode  int
	ActivityCode int
	Description  string
	Sequence     int
	HourlyRate   decimal.Decimal
	Hours        decimal.Decimal
	SupplyCode   *int
	SupplyName   *string
	EmployeeCI   *string
	Quantity     *int
	Price        *decimal.Decimal
}

type WorkOrderRepository interface {
	ListByBranch(ctx context.Context, branchRIF string) ([]*models.WorkOrderRow, error)
	GetRowByCode(ctx context.Context, workOrderCode int) (*models.WorkOrderRow, error)
	Create(ctx context.Context, order *models.WorkOrder) error
	HasInvoice(ctx context.Context, workOrderCode int) (bool, error)
	CloseOut(ctx context.Context, workOrderCode int, realOut string) error
	CreatePerformedActivity(ctx context.Context, activity *models.PerformedActivity) error
	CreateConsumption(ctx context.Context, consumption *models.SupplyConsumption) error
	GetActivityRows(ctx context.Context, workOrderCode int) ([]WorkOrderActivityRow, error)
	ListInvoicesByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceInvoice, error)
	GetInvoiceDetailRows(ctx context.Context, invoiceCode int) ([]ServiceInvoiceDetailRow, error)
}

type workOrderRepo struct {
	db DB
}

func NewWorkOrderRepo(db DB) WorkOrderRepository {
	return &workOrderRepo{db: db}
}

func (r *workOrderRepo) ListByBranch(ctx context.Context, branchRIF string) ([]*models.WorkOrderRow, error) {
	query := `
		SELECT w.code, w.vehicle_code, w.authorized_by, w.time_in, w.est_out, w.real_out, w.branch_rif, v.owner_ci
		FROM work_orders w
		JOIN vehicles v ON v.code = w.vehicle_code
		WHERE w.branch_rif = $1
		ORDER BY w.time_in DESC
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []*models.WorkOrderRow
	for rows.Next() {
		o := &models.WorkOrderRow{}
		err := rows.Scan(
			&o.Code, &o.VehicleCode, &o.AuthorizedBy, &o.TimeIn, &o.EstOut, &o.RealOut, &o.BranchRIF, &o.OwnerCI,
		)
		if err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(o); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *workOrderRepo) GetRowByCode(ctx context.Context, workOrderCode int) (*models.WorkOrderRow, error) {
	query := `
		SELECT w.code, w.vehicle_code, w.authorized_by, w.time_in, w.est_out, w.real_out, w.branch_rif, v.owner_ci
		FROM work_orders w
		JOIN vehicles v ON v.code = w.vehicle_code
		WHERE w.code = $1
	`
	o := &models.WorkOrderRow{}
	err := r.db.QueryRow(ctx, query, workOrderCode).Scan(
		&o.Code, &o.VehicleCode, &o.AuthorizedBy, &o.TimeIn, &o.EstOut, &o.RealOut, &o.BranchRIF, &o.OwnerCI,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, err
	}
	if err := common.ValidateStruct(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *workOrderRepo) Create(ctx context.Context, order *models.WorkOrder) error {
	query := `
		INSERT INTO work_orders (vehicle_code, authorized_by, time_in, est_out, branch_rif)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		order.VehicleCode, order.AuthorizedBy, order.TimeIn, order.EstOut, order.BranchRIF,
	)
	return err
}

func (r *workOrderRepo) HasInvoice(ctx context.Context, workOrderCode int) (bool, error) {
	rows, err := r.db.Query(ctx, `SELECT code FROM service_invoices WHERE work_order_code = $1`, workOrderCode)
	if err != nil {
		return false, err
	}
	defer rows.Close()

	found := rows.Next()
	return found, rows.Err()
}

// CloseOut stamps the real departure time and opens the zero-amount invoice
// row the billing screen fills in afterwards.
func (r *workOrderRepo) CloseOut(ctx context.Context, workOrderCode int, realOut string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE work_orders SET real_out = $1 WHERE code = $2
	`, realOut, workOrderCode)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO service_invoices (issued_at, amount, discount_pct, work_order_code)
		VALUES ($1, 0, 0, $2)
	`, realOut, workOrderCode)
	return err
}

// CreatePerformedActivity logs one execution of a catalog activity against
// the work order. The sequence number is database-assigned so the same
// activity can be performed repeatedly.
func (r *workOrderRepo) CreatePerformedActivity(ctx context.Context, activity *models.PerformedActivity) error {
	query := `
		INSERT INTO performed_activities (work_order_code, service_code, activity_code, hourly_rate, hours)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.Exec(ctx, query,
		activity.WorkOrderCode, activity.ServiceCode, activity.ActivityCode, activity.HourlyRate, activity.Hours,
	)
	return err
}

func (r *workOrderRepo) CreateConsumption(ctx context.Context, consumption *models.SupplyConsumption) error {
	query := `
		INSERT INTO performed_consumptions (work_order_code, service_code, activity_code, sequence, supply_code, employee_ci, quantity, price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		consumption.WorkOrderCode, consumption.ServiceCode, consumption.ActivityCode, consumption.Sequence,
		consumption.SupplyCode, consumption.EmployeeCI, consumption.Quantity, consumption.Price,
	)
	return err
}

func (r *workOrderRepo) GetActivityRows(ctx context.Context, workOrderCode int) ([]WorkOrderActivityRow, error) {
	query := `
		SELECT pa.service_code, pa.activity_code, a.description, pa.sequence, pa.hourly_rate, pa.hours,
		       pc.supply_code, s.name, pc.employee_ci, pc.quantity, pc.price
		FROM performed_activities pa
		JOIN activities a ON a.service_code = pa.service_code AND a.code = pa.activity_code
		LEFT JOIN performed_consumptions pc ON pc.work_order_code = pa.work_order_code
			AND pc.service_code = pa.service_code
			AND pc.activity_code = pa.activity_code
			AND pc.sequence = pa.sequence
		LEFT JOIN supplies s ON s.code = pc.supply_code
		WHERE pa.work_order_code = $1
		ORDER BY pa.sequence
	`
	rows, err := r.db.Query(ctx, query, workOrderCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []WorkOrderActivityRow
	for rows.Next() {
		var row WorkOrderActivityRow
		err := rows.Scan(
			&row.ServiceCode, &row.ActivityCode, &row.Description, &row.Sequence, &row.HourlyRate, &row.Hours,
			&row.SupplyCode, &row.SupplyName, &row.EmployeeCI, &row.Quantity, &row.Price,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *workOrderRepo) ListInvoicesByBranch(ctx context.Context, branchRIF string) ([]*models.ServiceInvoice, error) {
	query := `
		SELECT si.code, si.issued_at, si.amount, si.discount_pct, si.work_order_code
		FROM service_invoices si
		JOIN work_orders w ON w.code = si.work_order_code
		WHERE w.branch_rif = $1
		ORDER BY si.issued_at DESC
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var invoices []*models.ServiceInvoice
	for rows.Next() {
		inv := &models.ServiceInvoice{}
		if err := rows.Scan(&inv.Code, &inv.IssuedAt, &inv.Amount, &inv.DiscountPct, &inv.WorkOrderCode); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(inv); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *workOrderRepo) GetInvoiceDetailRows(ctx context.Context, invoiceCode int) ([]ServiceInvoiceDetailRow, error) {
	query := `
		SELECT si.code, si.issued_at, si.amount, si.discount_pct,
		       c.ci, c.name, v.code, v.plate,
		       pa.sequence, a.description, pa.hourly_rate, pa.hours, pa.hourly_rate * pa.hours,
		       s.name, pc.quantity, pc.price, pc.quantity * pc.price
		FROM service_invoices si
		JOIN work_orders w ON w.code = si.work_order_code
		JOIN vehicles v ON v.code = w.vehicle_code
		JOIN customers c ON c.ci = v.owner_ci
		JOIN performed_activities pa ON pa.work_order_code = w.code
		JOIN activities a ON a.service_code = pa.service_code AND a.code = pa.activity_code
		JOIN performed_consumptions pc ON pc.work_order_code = pa.work_order_code
			AND pc.service_code = pa.service_code
			AND pc.activity_code = pa.activity_code
			AND pc.sequence = pa.sequence
		JOIN supplies s ON s.code = pc.supply_code
		WHERE si.code = $1
	`
	rows, err := r.db.Query(ctx, query, invoiceCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []ServiceInvoiceDetailRow
	for rows.Next() {
		var row ServiceInvoiceDetailRow
		err := rows.Scan(
			&row.Code, &row.IssuedAt, &row.Amount, &row.DiscountPct,
			&row.CustomerCI, &row.CustomerName, &row.VehicleCode, &row.Plate,
			&row.Sequence, &row.ActivityDesc, &row.HourlyRate, &row.Hours, &row.ActivityTotal,
			&row.SupplyName, &row.SupplyQty, &row.SupplyPrice, &row.SupplyTotal,
		)
		if err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
