package repositories

import (
	"context"

	"tallerix/internal/common"
	"tallerix/internal/models"
)

// StatsRepository reads the reporting views. The SQL behind the views lives
// in the database; the application only projects and validates rows.
type StatsRepository interface {
	BrandsByService(ctx context.Context) ([]*models.BrandServiceCount, error)
	StaffMonthlyServices(ctx context.Context, branchRIF string) ([]*models.StaffMonthlyServices, error)
	FrequentCustomers(ctx context.Context, branchRIF string) ([]*models.FrequentCustomer, error)
	ItemsBySales(ctx context.Context, branchRIF string) ([]*models.ItemSales, error)
	MostRequestedServices(ctx context.Context) ([]*models.ServiceDemand, error)
	VehicleHistory(ctx context.Context, vehicleCode int) ([]*models.VehicleHistoryEntry, error)
	ServiceInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error)
	StoreInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error)
	CancellingCustomers(ctx context.Context) ([]*models.CancellingCustomer, error)
	SuppliersByVolume(ctx context.Context) ([]*models.SupplierVolume, error)
	StockAdjustments(ctx context.Context) ([]*models.StockAdjustment, error)
}

type statsRepo struct {
	db DB
}

func NewStatsRepo(db DB) StatsRepository {
	return &statsRepo{db: db}
}

func (r *statsRepo) BrandsByService(ctx context.Context) ([]*models.BrandServiceCount, error) {
	rows, err := r.db.Query(ctx, `SELECT service_name, brand_name, total_services FROM brands_by_service`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.BrandServiceCount
	for rows.Next() {
		row := &models.BrandServiceCount{}
		if err := rows.Scan(&row.ServiceName, &row.BrandName, &row.TotalServices); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) StaffMonthlyServices(ctx context.Context, branchRIF string) ([]*models.StaffMonthlyServices, error) {
	query := `
		SELECT employee_ci, employee_name, month, year, total_services
		FROM staff_services_by_month
		WHERE branch_rif = $1
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.StaffMonthlyServices
	for rows.Next() {
		row := &models.StaffMonthlyServices{}
		if err := rows.Scan(&row.EmployeeCI, &row.EmployeeName, &row.Month, &row.Year, &row.TotalServices); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) FrequentCustomers(ctx context.Context, branchRIF string) ([]*models.FrequentCustomer, error) {
	query := `
		SELECT customer_ci, customer_name, total_services
		FROM frequent_customers
		WHERE branch_rif = $1
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.FrequentCustomer
	for rows.Next() {
		row := &models.FrequentCustomer{}
		if err := rows.Scan(&row.CustomerCI, &row.CustomerName, &row.TotalServices); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) ItemsBySales(ctx context.Context, branchRIF string) ([]*models.ItemSales, error) {
	query := `
		SELECT item_code, item_name, total_sales
		FROM items_by_sales
		WHERE branch_rif = $1
	`
	rows, err := r.db.Query(ctx, query, branchRIF)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.ItemSales
	for rows.Next() {
		row := &models.ItemSales{}
		if err := rows.Scan(&row.ItemCode, &row.ItemName, &row.TotalSales); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) MostRequestedServices(ctx context.Context) ([]*models.ServiceDemand, error) {
	rows, err := r.db.Query(ctx, `SELECT service_code, service_name, total_requests FROM most_requested_services`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.ServiceDemand
	for rows.Next() {
		row := &models.ServiceDemand{}
		if err := rows.Scan(&row.ServiceCode, &row.ServiceName, &row.TotalRequests); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) VehicleHistory(ctx context.Context, vehicleCode int) ([]*models.VehicleHistoryEntry, error) {
	query := `
		SELECT work_order_code, time_in, service_name, activity
		FROM vehicle_service_history
		WHERE vehicle_code = $1
	`
	rows, err := r.db.Query(ctx, query, vehicleCode)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.VehicleHistoryEntry
	for rows.Next() {
		row := &models.VehicleHistoryEntry{}
		if err := rows.Scan(&row.WorkOrderCode, &row.TimeIn, &row.ServiceName, &row.Activity); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) scanBranchInvoiceTotals(ctx context.Context, view string) ([]*models.BranchInvoiceTotals, error) {
	rows, err := r.db.Query(ctx, `SELECT branch_rif, branch_name, total_invoices, total_billed FROM `+view)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.BranchInvoiceTotals
	for rows.Next() {
		row := &models.BranchInvoiceTotals{}
		if err := rows.Scan(&row.BranchRIF, &row.BranchName, &row.TotalInvoices, &row.TotalBilled); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) ServiceInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error) {
	return r.scanBranchInvoiceTotals(ctx, "branch_service_invoice_totals")
}

func (r *statsRepo) StoreInvoiceTotalsByBranch(ctx context.Context) ([]*models.BranchInvoiceTotals, error) {
	return r.scanBranchInvoiceTotals(ctx, "branch_store_invoice_totals")
}

func (r *statsRepo) CancellingCustomers(ctx context.Context) ([]*models.CancellingCustomer, error) {
	rows, err := r.db.Query(ctx, `SELECT customer_ci, customer_name, cancelled_reservations FROM cancelling_customers`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.CancellingCustomer
	for rows.Next() {
		row := &models.CancellingCustomer{}
		if err := rows.Scan(&row.CustomerCI, &row.CustomerName, &row.CancelledReservations); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) SuppliersByVolume(ctx context.Context) ([]*models.SupplierVolume, error) {
	rows, err := r.db.Query(ctx, `SELECT supplier_rif, supplier_name, total_supplied FROM suppliers_by_volume`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.SupplierVolume
	for rows.Next() {
		row := &models.SupplierVolume{}
		if err := rows.Scan(&row.SupplierRIF, &row.SupplierName, &row.TotalSupplied); err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *statsRepo) StockAdjustments(ctx context.Context) ([]*models.StockAdjustment, error) {
	query := `
		SELECT supply_code, supply_name, adjustment_code, adjusted_at, kind, comment, difference
		FROM stock_adjustments
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*models.StockAdjustment
	for rows.Next() {
		row := &models.StockAdjustment{}
		err := rows.Scan(
			&row.SupplyCode, &row.SupplyName, &row.AdjustmentCode, &row.AdjustedAt,
			&row.Kind, &row.Comment, &row.Difference,
		)
		if err != nil {
			return nil, err
		}
		if err := common.ValidateStruct(row); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
