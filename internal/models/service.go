package models

import "github.com/shopspring/decimal"

type Service struct {
	Code          int             `json:"code" db:"code"`
	Name          string          `json:"name" db:"name" validate:"required,max=30"`
	Charge        decimal.Decimal `json:"charge" db:"charge"`
	SupervisorCI  string          `json:"supervisor_ci" db:"supervisor_ci" validate:"required,max=10"`
	CoordinatorCI string          `json:"coordinator_ci" db:"coordinator_ci" validate:"required,max=10"`
}

type Activity struct {
	ServiceCode int             `json:"service_code" db:"service_code" validate:"required"`
	Code        int             `json:"code" db:"code"`
	Description string          `json:"description" db:"description" validate:"required,max=30"`
	HourlyRate  decimal.Decimal `json:"hourly_rate" db:"hourly_rate"`
}

// ActivitySummary carries nullable activity columns from the left join in the
// branch service listing.
type ActivitySummary struct {
	Code        *int             `json:"code"`
	Description *string          `json:"description" validate:"omitempty,max=30"`
	HourlyRate  *decimal.Decimal `json:"hourly_rate"`
}

// ServiceWithActivities is the nested view model for a branch's offering.
type ServiceWithActivities struct {
	Code          int               `json:"code"`
	Name          string            `json:"name"`
	Charge        decimal.Decimal   `json:"charge"`
	SupervisorCI  string            `json:"supervisor_ci"`
	CoordinatorCI string            `json:"coordinator_ci"`
	Activities    []ActivitySummary `json:"activities"`
}

// ServiceRef is the reduced shape reservation forms load.
type ServiceRef struct {
	Code int    `json:"code" db:"code"`
	Name string `json:"name" db:"name" validate:"required,max=30"`
}

// BranchService records that a branch offers a catalog service.
type BranchService struct {
	BranchRIF     string `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
	ServiceCode   int    `json:"service_code" db:"service_code" validate:"required"`
	Capacity      int    `json:"capacity" db:"capacity" validate:"required,min=1"`
	BookingWindow int    `json:"booking_window" db:"booking_window" validate:"required,min=1"`
}
