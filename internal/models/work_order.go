package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// WorkOrder is the intake record for one vehicle visit.
type WorkOrder struct {
	Code         int        `json:"code" db:"code"`
	VehicleCode  int        `json:"vehicle_code" db:"vehicle_code" validate:"required"`
	AuthorizedBy *string    `json:"authorized_by" db:"authorized_by" validate:"omitempty,max=10"`
	TimeIn       time.Time  `json:"time_in" db:"time_in"`
	EstOut       time.Time  `json:"est_out" db:"est_out"`
	RealOut      *time.Time `json:"real_out" db:"real_out"`
	BranchRIF    string     `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
}

// WorkOrderRow is the listing shape joined with the vehicle owner.
type WorkOrderRow struct {
	WorkOrder
	OwnerCI string `json:"owner_ci" db:"owner_ci" validate:"required,max=10"`
}

// PerformedActivity records one execution of a catalog activity on a work
// order. Sequence is assigned by the database; the same activity can run
// more than once on one order.
type PerformedActivity struct {
	WorkOrderCode int             `json:"work_order_code" db:"work_order_code" validate:"required"`
	ServiceCode   int             `json:"service_code" db:"service_code" validate:"required"`
	ActivityCode  int             `json:"activity_code" db:"activity_code" validate:"required"`
	Sequence      int             `json:"sequence" db:"sequence"`
	HourlyRate    decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
	Hours         decimal.Decimal `json:"hours" db:"hours"`
}

// SupplyConsumption charges a supply against one performed activity. Price
// is what the supply cost at consumption time, entered by the mechanic.
type SupplyConsumption struct {
	WorkOrderCode int             `json:"work_order_code" db:"work_order_code" validate:"required"`
	ServiceCode   int             `json:"service_code" db:"service_code" validate:"required"`
	ActivityCode  int             `json:"activity_code" db:"activity_code" validate:"required"`
	Sequence      int             `json:"sequence" db:"sequence" validate:"required"`
	SupplyCode    int             `json:"supply_code" db:"supply_code" validate:"required"`
	EmployeeCI    string          `json:"employee_ci" db:"employee_ci" validate:"required,max=10"`
	Quantity      int             `json:"quantity" db:"quantity" validate:"required,min=1"`
	Price         decimal.Decimal `json:"price" db:"price"`
}

// ResourceUse is one supply charged against a performed activity, as the
// work-order detail screen renders it.
type ResourceUse struct {
	SupplyCode int             `json:"supply_code"`
	SupplyName string          `json:"supply_name"`
	EmployeeCI string          `json:"employee_ci"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
}

// PerformedActivityDetail is one performed activity with its consumed
// supplies nested.
type PerformedActivityDetail struct {
	ServiceCode  int             `json:"service_code"`
	ActivityCode int             `json:"activity_code"`
	Description  string          `json:"description"`
	Sequence     int             `json:"sequence"`
	HourlyRate   decimal.Decimal `json:"hourly_rate"`
	Hours        decimal.Decimal `json:"hours"`
	Resources    []ResourceUse   `json:"resources"`
}

// WorkOrderDetail is the full work-order screen: intake header plus every
// performed activity and what it consumed.
type WorkOrderDetail struct {
	WorkOrderRow
	PerformedActivities []PerformedActivityDetail `json:"performed_activities"`
}

type ServiceInvoice struct {
	Code          int             `json:"code" db:"code"`
	IssuedAt      time.Time       `json:"issued_at" db:"issued_at"`
	Amount        decimal.Decimal `json:"amount" db:"amount"`
	DiscountPct   decimal.Decimal `json:"discount_pct" db:"discount_pct"`
	WorkOrderCode int             `json:"work_order_code" db:"work_order_code" validate:"required"`
}

// LaborLine is one performed activity on a service invoice.
type LaborLine struct {
	Sequence    int             `json:"sequence"`
	Description string          `json:"description" validate:"required,max=30"`
	HourlyRate  decimal.Decimal `json:"hourly_rate"`
	Hours       decimal.Decimal `json:"hours"`
	Total       decimal.Decimal `json:"total"`
}

// ConsumedSupply is one supply charged on a service invoice.
type ConsumedSupply struct {
	Name     string          `json:"name" validate:"required,max=15"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Total    decimal.Decimal `json:"total"`
}

// ServiceInvoiceDetail is the nested view model the invoice screen renders:
// header data plus grouped labor and supply lines.
type ServiceInvoiceDetail struct {
	Code         int              `json:"code"`
	IssuedAt     time.Time        `json:"issued_at"`
	Amount       decimal.Decimal  `json:"amount"`
	DiscountPct  decimal.Decimal  `json:"discount_pct"`
	CustomerCI   string           `json:"customer_ci"`
	CustomerName string           `json:"customer_name"`
	VehicleCode  int              `json:"vehicle_code"`
	Plate        string           `json:"plate"`
	Labor        []LaborLine      `json:"labor"`
	Supplies     []ConsumedSupply `json:"supplies"`
}
