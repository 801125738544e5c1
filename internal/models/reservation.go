package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Reservation struct {
	Number      int             `json:"number" db:"number"`
	ReservedAt  time.Time       `json:"reserved_at" db:"reserved_at"`
	ServiceAt   time.Time       `json:"service_at" db:"service_at"`
	Deposit     decimal.Decimal `json:"deposit" db:"deposit"`
	VehicleCode int             `json:"vehicle_code" db:"vehicle_code" validate:"required"`
	ServiceCode int             `json:"service_code" db:"service_code" validate:"required"`
	BranchRIF   string          `json:"branch_rif" db:"branch_rif" validate:"required,max=12"`
}

// ReservationRow is the listing shape joined with the service name.
type ReservationRow struct {
	Reservation
	ServiceName string `json:"service_name" db:"service_name" validate:"required,max=30"`
}
