package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read-only projections over reporting views. Rows are validated outbound
// like every other read, but nothing here is ever written by the application.

type BrandServiceCount struct {
	ServiceName   string `json:"service_name" db:"service_name" validate:"required"`
	BrandName     string `json:"brand_name" db:"brand_name" validate:"required"`
	TotalServices int    `json:"total_services" db:"total_services" validate:"min=0"`
}

type StaffMonthlyServices struct {
	EmployeeCI    string `json:"employee_ci" db:"employee_ci" validate:"required"`
	EmployeeName  string `json:"employee_name" db:"employee_name" validate:"required"`
	Month         int    `json:"month" db:"month" validate:"min=1,max=12"`
	Year          int    `json:"year" db:"year" validate:"required"`
	TotalServices int    `json:"total_services" db:"total_services" validate:"min=0"`
}

type FrequentCustomer struct {
	CustomerCI    string `json:"customer_ci" db:"customer_ci" validate:"required"`
	CustomerName  string `json:"customer_name" db:"customer_name" validate:"required"`
	TotalServices int    `json:"total_services" db:"total_services" validate:"min=0"`
}

type ItemSales struct {
	ItemCode   int    `json:"item_code" db:"item_code" validate:"required"`
	ItemName   string `json:"item_name" db:"item_name" validate:"required"`
	TotalSales int    `json:"total_sales" db:"total_sales" validate:"min=0"`
}

type ServiceDemand struct {
	ServiceCode   int    `json:"service_code" db:"service_code" validate:"required"`
	ServiceName   string `json:"service_name" db:"service_name" validate:"required"`
	TotalRequests int    `json:"total_requests" db:"total_requests" validate:"min=0"`
}

// BranchInvoiceTotals compares branches by invoice count and amount billed,
// over either service invoices or store invoices.
type BranchInvoiceTotals struct {
	BranchRIF     string          `json:"branch_rif" db:"branch_rif" validate:"required"`
	BranchName    string          `json:"branch_name" db:"branch_name" validate:"required"`
	TotalInvoices int             `json:"total_invoices" db:"total_invoices" validate:"min=0"`
	TotalBilled   decimal.Decimal `json:"total_billed" db:"total_billed"`
}

type CancellingCustomer struct {
	CustomerCI            string `json:"customer_ci" db:"customer_ci" validate:"required"`
	CustomerName          string `json:"customer_name" db:"customer_name" validate:"required"`
	CancelledReservations int    `json:"cancelled_reservations" db:"cancelled_reservations" validate:"min=0"`
}

type SupplierVolume struct {
	SupplierRIF   string `json:"supplier_rif" db:"supplier_rif" validate:"required"`
	SupplierName  string `json:"supplier_name" db:"supplier_name" validate:"required"`
	TotalSupplied int    `json:"total_supplied" db:"total_supplied" validate:"min=0"`
}

// StockAdjustment is one manual correction of a supply's stock after a
// physical count diverged from the books.
type StockAdjustment struct {
	SupplyCode     int       `json:"supply_code" db:"supply_code" validate:"required"`
	SupplyName     string    `json:"supply_name" db:"supply_name" validate:"required"`
	AdjustmentCode int       `json:"adjustment_code" db:"adjustment_code" validate:"required"`
	AdjustedAt     time.Time `json:"adjusted_at" db:"adjusted_at"`
	Kind           string    `json:"kind" db:"kind" validate:"required"`
	Comment        string    `json:"comment" db:"comment" validate:"required"`
	Difference     int       `json:"difference" db:"difference"`
}

type VehicleHistoryEntry struct {
	WorkOrderCode int    `json:"work_order_code" db:"work_order_code" validate:"required"`
	TimeIn        string `json:"time_in" db:"time_in" validate:"required"`
	ServiceName   string `json:"service_name" db:"service_name" validate:"required"`
	Activity      string `json:"activity" db:"activity" validate:"required"`
}
